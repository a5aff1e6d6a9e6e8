package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_processed_total",
			Help:      "Total number of successfully processed payment notifications",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_failed_total",
			Help:      "Total number of failed payment notification processing attempts",
		},
	)

	notificationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_dlq_total",
			Help:      "Total number of payment notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	notificationProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notification_processing_duration_seconds",
			Help:      "Histogram of payment notification processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	notificationsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_in_progress",
			Help:      "Number of payment notifications currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order API requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	orderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order API request durations by operation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order API requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		notificationsProcessed,
		notificationsFailed,
		notificationsDLQ,
		commitErrors,
		notificationProcessingDuration,
		notificationsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
