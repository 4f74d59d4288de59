// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent building a recommendation, store reads included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"}, // ok, empty, error
	)

	RecommendResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_result_size",
			Help:    "Number of listings returned per recommendation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_catalog_size",
			Help: "Listings in the catalog at the last recommendation",
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_read_errors_total",
			Help: "Failed reads against the data store",
		},
		[]string{"operation"},
	)

	NodeTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_node_tasks_total",
			Help: "Tasks handled by the scoring node",
		},
		[]string{"status"},
	)
)
