package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache reads answered without a store round trip.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatekeeper_cache_hits_total",
			Help: "Cache reads answered without touching the store",
		},
		[]string{"entity"},
	)

	// CacheMisses counts cache reads that fell through to the store.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatekeeper_cache_misses_total",
			Help: "Cache reads that fell through to the store",
		},
		[]string{"entity"},
	)

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatekeeper_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// TokensPurged counts expired tokens removed by the maintenance sweep.
	TokensPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gatekeeper_tokens_purged_total",
			Help: "Expired tokens removed by the maintenance sweep",
		},
	)
)
