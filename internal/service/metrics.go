package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders stored, by payment method",
		},
		[]string{"method"},
	)

	paymentsConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "payments_confirmed_total",
			Help:      "Total number of orders transitioned to paid, by confirmation source",
		},
		[]string{"source"},
	)

	ordersAbandoned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "abandoned_total",
			Help:      "Total number of unpaid orders removed, by source",
		},
		[]string{"source"},
	)

	signatureFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "signature_failures_total",
			Help:      "Total number of rejected payment signatures, by gateway",
		},
		[]string{"gateway"},
	)

	notificationsIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "payments",
			Name:      "notifications_ignored_total",
			Help:      "Total number of acknowledged notifications that changed nothing, by reason",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		paymentsConfirmed,
		ordersAbandoned,
		signatureFailures,
		notificationsIgnored,
	)
}
