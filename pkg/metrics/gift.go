package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeCatalogError = "catalog_error"

	SourceCache = "cache"
	SourceStore = "store"
)

var (
	// Latency of a gift recommendation, catalog fetch included
	GiftRecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gift_recommend_latency_seconds",
		Help:    "Latency of gift recommendations",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of gift recommendations by outcome
	GiftRecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gift_recommend_requests_total",
		Help: "Total number of gift recommend requests",
	}, []string{"outcome"})

	GiftRecommendResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gift_recommend_results",
		Help:    "Number of gifts returned per recommendation",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	// Where catalog snapshots were served from
	CatalogSnapshotFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_snapshot_fetches_total",
		Help: "Catalog snapshot fetches by source",
	}, []string{"source"})
)

func Init() {
	prometheus.MustRegister(
		GiftRecommendLatency,
		GiftRecommendRequests,
		GiftRecommendResults,
		CatalogSnapshotFetches,
	)
}
