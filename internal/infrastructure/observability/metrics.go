package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "masjid",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "masjid",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	QiblaComputations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "masjid",
			Name:      "qibla_computations_total",
			Help:      "Total number of Qibla bearings computed",
		},
	)

	// ScheduleLookups counts schedule reads by where they were served from:
	// published, cache or calculated.
	ScheduleLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "masjid",
			Name:      "schedule_lookups_total",
			Help:      "Total number of daily schedule lookups by source",
		},
		[]string{"source"},
	)

	AnnouncementsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "masjid",
			Name:      "announcements_published_total",
			Help:      "Total number of prayer announcements published by type",
		},
		[]string{"type"},
	)

	once sync.Once
)

// InitMetrics registers all collectors with the default registry. Safe to call
// more than once.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(HTTPRequests)
		prometheus.DefaultRegisterer.Register(HTTPDuration)
		prometheus.DefaultRegisterer.Register(QiblaComputations)
		prometheus.DefaultRegisterer.Register(ScheduleLookups)
		prometheus.DefaultRegisterer.Register(AnnouncementsPublished)
	})
}
