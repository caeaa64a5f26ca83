package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reductionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datareduce_reductions_total",
		Help: "Reductions served, by strategy and outcome (ok, noop, error)",
	}, []string{"strategy", "outcome"})
	reductionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "datareduce_reduction_duration_seconds",
		Help:    "Time spent reducing, by strategy",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
	reductionInputPoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "datareduce_input_points",
		Help:    "Number of points in each reduction request",
		Buckets: prometheus.ExponentialBuckets(8, 4, 10),
	})
)
