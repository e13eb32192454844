package web

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"staycalc/internal/quote"
)

// Metrics counts evaluated quotes by service and outcome.
type Metrics struct {
	quotes *prometheus.CounterVec
}

// NewMetrics registers the quote counter on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "staycalc",
			Name:      "quotes_total",
			Help:      "Evaluated quotes by service and whether a fee was produced.",
		}, []string{"service", "ok"}),
	}
	reg.MustRegister(m.quotes)
	return m
}

// Observe implements quote.Recorder.
func (m *Metrics) Observe(service quote.Service, ok bool) {
	m.quotes.WithLabelValues(string(service), strconv.FormatBool(ok)).Inc()
}
