// Package web serves the booking-desk form and a JSON API over the same quote
// calculator the CLI uses.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staycalc/internal/obs"
	"staycalc/internal/quote"
	"staycalc/internal/tariff"
)

var pageTemplate = template.Must(template.New("page").
	Funcs(template.FuncMap{"won": tariff.FormatWon}).
	Parse(pageHTML))

// Options configures a Server.
type Options struct {
	Log      *slog.Logger
	Calc     *quote.Calculator
	Defaults Defaults
	Location *time.Location
	Version  string
	Gatherer prometheus.Gatherer
	Now      func() time.Time
}

// Server holds the handlers. It keeps no per-request state.
type Server struct {
	log      *slog.Logger
	calc     *quote.Calculator
	defaults Defaults
	loc      *time.Location
	version  string
	gatherer prometheus.Gatherer
	now      func() time.Time
	tpl      *template.Template
}

// New builds a Server. Location defaults to time.Local and Now to time.Now.
func New(opts Options) *Server {
	s := &Server{
		log:      opts.Log,
		calc:     opts.Calc,
		defaults: opts.Defaults,
		loc:      opts.Location,
		version:  opts.Version,
		gatherer: opts.Gatherer,
		now:      opts.Now,
		tpl:      pageTemplate,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Get("/", s.handleIndex)
	r.Post("/calc", s.handleCalc)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, OK(map[string]string{"version": s.version}))
	})

	r.Route("/api/v1/quotes", func(r chi.Router) {
		r.Post("/hoteling", s.handleHotelingAPI)
		r.Post("/daycare", s.handleDaycareAPI)
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Run listens on srv.Addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

type pageData struct {
	formValues

	MaxAnimals int
	Version    string

	Error  string
	Result *quote.Result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	def := defaultForm(s.now().In(s.loc), s.defaults)
	q := r.URL.Query()

	data := s.newPage(def)

	// A shared URL carries the inputs; show the result right away.
	if q.Has("service") {
		data.formValues = readForm(q, def)
		res, err := s.evaluate(data.formValues)
		if err != nil {
			data.Error = describe(err)
		} else {
			data.Result = &res
		}
	}

	s.renderPage(w, r, http.StatusOK, data)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	def := defaultForm(s.now().In(s.loc), s.defaults)
	f := readForm(r.PostForm, def)

	if _, err := s.evaluate(f); err != nil {
		data := s.newPage(f)
		data.Error = describe(err)
		s.renderPage(w, r, http.StatusBadRequest, data)
		return
	}

	http.Redirect(w, r, calcURL(f, def), http.StatusFound)
}

func (s *Server) evaluate(f formValues) (quote.Result, error) {
	switch quote.Service(f.Service) {
	case quote.Hoteling:
		in, err := f.hoteling(s.loc)
		if err != nil {
			return quote.Result{}, err
		}
		return s.calc.Hoteling(in)
	case quote.Daycare:
		in, err := f.daycare(s.loc)
		if err != nil {
			return quote.Result{}, err
		}
		return s.calc.Daycare(in)
	default:
		return quote.Result{}, fmt.Errorf("unknown service %q", f.Service)
	}
}

func (s *Server) newPage(f formValues) pageData {
	return pageData{
		formValues: f,
		MaxAnimals: quote.MaxAnimals,
		Version:    s.version,
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tpl.Execute(w, data); err != nil {
		s.log.Error("failed to render page",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			obs.Err(err))
	}
}

func describe(err error) string {
	if quote.IsValidation(err) {
		return quote.Describe(err)
	}
	return err.Error()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Debug("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("took", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
