package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ReasonDecode     = "decode"
	ReasonValidation = "validation"

	OutcomeSuccess  = "success"
	OutcomeCacheHit = "cache_hit"
	OutcomeNoData   = "no_data"
	OutcomeError    = "error"
)

var (
	TicketsRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickets_read_total",
		Help: "The total number of ticket elements read from input documents",
	})
	TicketsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tickets_rejected_total",
		Help: "The total number of ticket elements dropped, by reason",
	}, []string{"reason"})
	Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticket_analyses_total",
		Help: "The total number of analysis runs, by outcome",
	}, []string{"outcome"})
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ticket_analysis_duration_seconds",
		Help:    "Time spent on one analysis run",
		Buckets: prometheus.DefBuckets,
	})
)
