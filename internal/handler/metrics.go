package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	confirmationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "confirmations_processed_total",
			Help:      "Total number of successfully processed payment confirmations",
		},
	)

	confirmationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "confirmations_failed_total",
			Help:      "Total number of failed payment confirmation handling attempts",
		},
	)

	confirmationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "confirmations_dlq_total",
			Help:      "Total number of payment confirmations written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	confirmationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment_service",
			Subsystem: "kafka_consumer",
			Name:      "confirmation_duration_seconds",
			Help:      "Histogram of payment confirmation handling durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		confirmationsProcessed,
		confirmationsFailed,
		confirmationsDLQ,
		commitErrors,
		confirmationDuration,
	)
}
