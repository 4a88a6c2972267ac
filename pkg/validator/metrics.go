package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "artifactcheck_validation_duration_seconds",
			Help:    "Duration of a single artifact root validation in seconds",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 30, 120},
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifactcheck_validation_total",
			Help: "Total number of artifact root validations",
		},
		[]string{"status"}, // passed or failed
	)
)
