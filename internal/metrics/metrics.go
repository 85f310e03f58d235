package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parlay"

// Metrics groups the service's Prometheus collectors
type Metrics struct {
	Recommendations   *prometheus.CounterVec
	RecommendErrors   *prometheus.CounterVec
	SelectionLegs     prometheus.Histogram
	CatalogSize       prometheus.Histogram
	CacheLookups      *prometheus.CounterVec
	OddsFetches       *prometheus.CounterVec
	Explanations      *prometheus.CounterVec
	SnapshotsConsumed prometheus.Counter
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Recommendations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Parlay recommendations produced, by whether a window matched the target.",
		}, []string{"outcome"}),
		RecommendErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_errors_total",
			Help:      "Failed recommendation requests by reason.",
		}, []string{"reason"}),
		SelectionLegs: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "selection_legs",
			Help:      "Number of legs in recommended parlays.",
			Buckets:   []float64{2, 3, 4},
		}),
		CatalogSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_size",
			Help:      "Number of bets in the catalog offered to the selector.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 8),
		}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_cache_lookups_total",
			Help:      "Odds snapshot cache lookups by result (hit, stale, miss).",
		}, []string{"result"}),
		OddsFetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_fetches_total",
			Help:      "Calls to the live-odds provider by sport and status.",
		}, []string{"sport", "status"}),
		Explanations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explanations_total",
			Help:      "Explanation generator calls by status.",
		}, []string{"status"}),
		SnapshotsConsumed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_snapshots_consumed_total",
			Help:      "Odds snapshots ingested from Kafka.",
		}),
	}
}
