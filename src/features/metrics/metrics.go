// Package metrics exposes Prometheus counters for the play and search
// paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlaysRecorded counts recorded playback events, partitioned by
	// whether the play bumped the unique-listener counter.
	PlaysRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundwell_plays_recorded_total",
		Help: "Number of playback events recorded.",
	}, []string{"unique"})

	// SearchRequests counts completed searches by scope and the tier that
	// produced the result.
	SearchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundwell_search_requests_total",
		Help: "Number of search requests served.",
	}, []string{"scope", "tier"})
)
