package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"staycalc/internal/obs"
	"staycalc/internal/quote"
)

func (s *Server) handleHotelingAPI(w http.ResponseWriter, r *http.Request) {
	const op = "web.api.hoteling"

	var in quote.HotelingInput
	if !s.decode(w, r, op, &in) {
		return
	}
	res, err := s.calc.Hoteling(in)
	s.respond(w, r, op, res, err)
}

func (s *Server) handleDaycareAPI(w http.ResponseWriter, r *http.Request) {
	const op = "web.api.daycare"

	var in quote.DaycareInput
	if !s.decode(w, r, op, &in) {
		return
	}
	res, err := s.calc.Daycare(in)
	s.respond(w, r, op, res, err)
}

// maxBodyBytes caps quote request bodies; a quote is a handful of fields.
const maxBodyBytes = 1 << 16

func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := render.DecodeJSON(r.Body, v); err != nil {
		s.log.Error("failed to decode request body",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			obs.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("invalid request body"))
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, op string, res quote.Result, err error) {
	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	switch {
	case err != nil && quote.IsValidation(err):
		log.Info("validation failed", obs.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error(quote.Describe(err)))
	case err != nil:
		log.Error("failed to evaluate quote", obs.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, Error("could not evaluate quote"))
	case !res.OK:
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ErrorWithData(res.Notice, res))
	default:
		render.JSON(w, r, OK(res))
	}
}
