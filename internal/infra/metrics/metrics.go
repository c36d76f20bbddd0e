// Package metrics registers the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tablestay_bookings_created_total",
		Help: "Number of bookings admitted and persisted.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tablestay_bookings_cancelled_total",
		Help: "Number of bookings cancelled by their guest.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tablestay_booking_conflicts_total",
		Help: "Number of admissions rejected by the overlap exclusion constraint at write time.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tablestay_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
