// Package metrics defines the Prometheus instrumentation for the fetch pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch pipeline metrics
var (
	// FetchCyclesTotal counts completed fetch cycles by outcome.
	FetchCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_cycles_total",
			Help: "Total fetch cycles by outcome (ok/error)",
		},
		[]string{"outcome"},
	)

	// FetchCycleDuration tracks full fetch cycle duration in seconds.
	FetchCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fetch_cycle_duration_seconds",
			Help:    "Fetch cycle duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	// PostsFetchedTotal counts raw posts returned by the source per subreddit.
	PostsFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_fetched_total",
			Help: "Total posts fetched from the source by subreddit",
		},
		[]string{"subreddit"},
	)

	// PostsSkippedTotal counts posts dropped before annotation (non-self posts).
	PostsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_skipped_total",
			Help: "Total posts skipped before annotation",
		},
	)

	// PostsStoredTotal counts posts actually written to the store.
	PostsStoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_stored_total",
			Help: "Total new posts written to the store",
		},
	)

	// PostsDuplicateTotal counts posts suppressed by duplicate-ID detection.
	PostsDuplicateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_duplicate_total",
			Help: "Total posts suppressed as already stored",
		},
	)

	// FetchErrorsTotal counts source fetch failures by subreddit.
	FetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_errors_total",
			Help: "Total source fetch failures by subreddit",
		},
		[]string{"subreddit"},
	)
)
