// Package metrics exposes Prometheus instrumentation for the journey service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Picks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journey_picks_total",
			Help: "Total number of navigation picks by mode",
		},
		[]string{"mode"}, // guide, choose, surprise
	)

	VisitsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journey_visits_recorded_total",
			Help: "Total number of problem page visits recorded",
		},
		[]string{"first"},
	)

	MemoryDecodeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journey_memory_decode_failures_total",
			Help: "Total number of visitor memory records that could not be parsed",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journey_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// RecordPick counts a navigation pick.
func RecordPick(mode string) {
	Picks.WithLabelValues(mode).Inc()
}

// RecordVisit counts a recorded page view.
func RecordVisit(first bool) {
	VisitsRecorded.WithLabelValues(strconv.FormatBool(first)).Inc()
}

// ObserveRequest records an HTTP request duration.
func ObserveRequest(route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}
