// Package metrics exposes prometheus instruments for primer design runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"qpcr/core/design"
)

// Request outcomes used as the "outcome" label.
const (
	OutcomePairs      = "pairs"
	OutcomeNoPairs    = "no_pairs"
	OutcomeBadRequest = "bad_request"
	OutcomeCached     = "cached"
)

var candidateBuckets = []float64{0, 10, 100, 500, 1000, 2000, 4000, 8000, 16000, 32000, 64000, 128000}

// Metrics tracks design requests, their cost and what they returned.
type Metrics struct {
	Requests         *prometheus.CounterVec
	DesignDuration   prometheus.Histogram
	Candidates       *prometheus.HistogramVec
	PairsScored      prometheus.Histogram
	PairsReturned    prometheus.Counter
	TruncatedInputs  prometheus.Counter
	SequenceBasePair prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers every instrument on reg. Pass prometheus.NewRegistry() in
// tests so instances do not collide.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qpcr_design_requests_total",
			Help: "Design requests by outcome",
		}, []string{"outcome"}),
		DesignDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "qpcr_design_duration_seconds",
			Help:    "Wall time of one design run (cache misses only)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Candidates: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qpcr_design_candidates",
			Help:    "Primer candidates enumerated per run, before pruning",
			Buckets: candidateBuckets,
		}, []string{"role"}),
		PairsScored: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "qpcr_design_pairs_scored",
			Help:    "Pairs inside the amplicon bounds per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		PairsReturned: f.NewCounter(prometheus.CounterOpts{
			Name: "qpcr_design_pairs_returned_total",
			Help: "Ranked pairs returned to clients",
		}),
		TruncatedInputs: f.NewCounter(prometheus.CounterOpts{
			Name: "qpcr_design_truncated_inputs_total",
			Help: "Templates clipped to the maximum sequence length",
		}),
		SequenceBasePair: f.NewCounter(prometheus.CounterOpts{
			Name: "qpcr_design_sequence_bases_total",
			Help: "Template bases analysed, after sanitizing and truncation",
		}),
		gatherer: reg,
	}
}

// ObserveRun records one computed design. Call with time.Now() taken
// before design.Run.
func (m *Metrics) ObserveRun(start time.Time, res design.Result) {
	m.DesignDuration.Observe(time.Since(start).Seconds())
	m.Candidates.WithLabelValues("forward").Observe(float64(res.Stats.ForwardCandidates))
	m.Candidates.WithLabelValues("reverse").Observe(float64(res.Stats.ReverseCandidates))
	m.PairsScored.Observe(float64(res.Stats.PairsScored))
	m.SequenceBasePair.Add(float64(res.Stats.SequenceLen))
	if res.Stats.Truncated {
		m.TruncatedInputs.Inc()
	}
}

// ObserveResponse records the outcome of a request that produced a result.
func (m *Metrics) ObserveResponse(pairs int, cached bool) {
	switch {
	case cached:
		m.Requests.WithLabelValues(OutcomeCached).Inc()
	case pairs == 0:
		m.Requests.WithLabelValues(OutcomeNoPairs).Inc()
	default:
		m.Requests.WithLabelValues(OutcomePairs).Inc()
	}
	m.PairsReturned.Add(float64(pairs))
}

// IncBadRequest records a rejected request.
func (m *Metrics) IncBadRequest() {
	m.Requests.WithLabelValues(OutcomeBadRequest).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
