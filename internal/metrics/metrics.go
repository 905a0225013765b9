// Package metrics provides Prometheus metrics for the note backends.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// NotesCreatedTotal counts notes created through the service.
	NotesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_created_total",
			Help: "Total number of notes created",
		},
	)

	// NotesDeletedTotal counts notes deleted through the service.
	NotesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_deleted_total",
			Help: "Total number of notes deleted",
		},
	)

	// CacheHitsTotal counts view-counter cache hits.
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMissesTotal counts view-counter cache misses.
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// StoreQueryDuration measures store query latency by operation.
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Store query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// RecordNoteCreated increments the created-notes counter.
func RecordNoteCreated() {
	NotesCreatedTotal.Inc()
}

// RecordNoteDeleted increments the deleted-notes counter.
func RecordNoteDeleted() {
	NotesDeletedTotal.Inc()
}

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordStoreQuery records the duration of a store operation.
func RecordStoreQuery(operation string, d time.Duration) {
	StoreQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
