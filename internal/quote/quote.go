// Package quote is the single entry point the CLI and web form call to turn
// form input into a stay summary and a fee.
//
// Each call validates its input, formats the stay and prices it independently,
// and returns a Result that either carries a fee or a notice for the customer.
// A range that ends at or before its start is not an error here: it becomes a
// Result with OK == false.
package quote

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"staycalc/internal/obs"
	"staycalc/internal/stay"
	"staycalc/internal/tariff"
)

// Service identifies a tariff.
type Service string

const (
	Hoteling Service = "hoteling"
	Daycare  Service = "daycare"
)

// Notices shown instead of a number.
const (
	NoticeStay     = "퇴실 시간이 입실 시간과 같거나 더 이릅니다."
	NoticeHoteling = "퇴실 시간이 입실 시간보다 같거나 빠릅니다."
	NoticeDaycare  = "종료 시간이 시작 시간보다 같거나 빠릅니다."
)

// Result is either a priced quote (OK) or a notice.
type Result struct {
	ID        string            `json:"quote_id"`
	Service   Service           `json:"service"`
	OK        bool              `json:"ok"`
	Summary   string            `json:"summary"`
	Duration  *stay.Summary     `json:"duration,omitempty"`
	Breakdown *tariff.Breakdown `json:"breakdown,omitempty"`
	Fee       int64             `json:"fee"`
	FeeText   string            `json:"fee_text,omitempty"`
	Notice    string            `json:"notice,omitempty"`
}

// Banner is the one-line outcome: the final fee or the notice.
func (r Result) Banner() string {
	if !r.OK {
		return r.Notice
	}
	return "최종 요금: " + r.FeeText
}

// Recorder observes every evaluated quote.
type Recorder interface {
	Observe(service Service, ok bool)
}

// Calculator evaluates quotes. It holds no per-quote state and is safe for
// concurrent use.
type Calculator struct {
	log      *slog.Logger
	validate *validator.Validate
	recorder Recorder
	newID    func() string
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithRecorder reports every quote to r.
func WithRecorder(r Recorder) Option {
	return func(c *Calculator) { c.recorder = r }
}

// New creates a Calculator.
func New(log *slog.Logger, opts ...Option) *Calculator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	c := &Calculator{
		log:      log,
		validate: v,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Hoteling quotes an overnight stay.
func (c *Calculator) Hoteling(in HotelingInput) (Result, error) {
	const op = "quote.Hoteling"

	if err := c.validate.Struct(in); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	r := stay.Range{Start: in.CheckIn, End: in.CheckOut}
	res := c.newResult(Hoteling, r)

	b, err := tariff.HotelingBreakdown(tariff.HotelingRequest{
		Range:       r,
		AnimalCount: in.AnimalCount,
		Diaper:      in.Diaper,
		Bath:        in.Bath,
	})
	return c.finish(op, res, b, err, NoticeHoteling, slog.Int("animals", in.AnimalCount),
		slog.Bool("diaper", in.Diaper), slog.Bool("bath", in.Bath))
}

// Daycare quotes a same-day stay.
func (c *Calculator) Daycare(in DaycareInput) (Result, error) {
	const op = "quote.Daycare"

	if err := c.validate.Struct(in); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	r := stay.Range{Start: in.Start, End: in.End}
	res := c.newResult(Daycare, r)

	b, err := tariff.DaycareBreakdown(tariff.DaycareRequest{
		Range:       r,
		AnimalCount: in.AnimalCount,
		Diaper:      in.Diaper,
	})
	return c.finish(op, res, b, err, NoticeDaycare, slog.Int("animals", in.AnimalCount),
		slog.Bool("diaper", in.Diaper))
}

func (c *Calculator) newResult(svc Service, r stay.Range) Result {
	res := Result{ID: c.newID(), Service: svc}

	s, err := stay.Summarize(r)
	if err != nil {
		res.Summary = NoticeStay
		return res
	}
	res.Summary = s.String()
	res.Duration = &s
	return res
}

func (c *Calculator) finish(op string, res Result, b tariff.Breakdown, err error, notice string, attrs ...any) (Result, error) {
	log := c.log.With(
		slog.String("op", op),
		slog.String("quote_id", res.ID),
	)

	switch {
	case err == nil:
		res.OK = true
		res.Breakdown = &b
		res.Fee = b.Total
		res.FeeText = tariff.FormatWon(b.Total)
		log.Info("quote computed", append(attrs, slog.Int64("fee", b.Total))...)
	case stay.IsInvalidRange(err):
		res.Notice = notice
		log.Warn("quote rejected", append(attrs, obs.Err(err))...)
	default:
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	if c.recorder != nil {
		c.recorder.Observe(res.Service, res.OK)
	}
	return res, nil
}

// IsValidation reports whether err came from input validation.
func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// Describe turns a validation error into a message fit for the form.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be between %d and %d", fe.Field(), MinAnimals, MaxAnimals))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
