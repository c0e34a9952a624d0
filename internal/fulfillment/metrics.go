package fulfillment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersQueued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "orders_queued_total",
		Help:      "Total number of orders queued for fulfillment.",
	})

	ordersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "orders_completed_total",
		Help:      "Total number of orders with every deliverable item delivered.",
	})

	itemsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "items_claimed_total",
		Help:      "Total number of items claimed for submission.",
	}, []string{"provider"})

	itemsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "items_submitted_total",
		Help:      "Total number of items accepted by a reseller.",
	}, []string{"provider"})

	itemsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "items_delivered_total",
		Help:      "Total number of items confirmed delivered, by reconciliation path.",
	}, []string{"path"})

	itemsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "items_failed_total",
		Help:      "Total number of item submission or delivery failures.",
	}, []string{"provider"})

	webhooksApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "webhook",
		Name:      "updates_total",
		Help:      "Total number of webhook updates, by result.",
	}, []string{"result"})

	ticksSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "ticks_skipped_total",
		Help:      "Total number of ticks skipped because the previous one was still running.",
	})

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fulfillment_service",
		Subsystem: "dispatcher",
		Name:      "tick_duration_seconds",
		Help:      "Histogram of dispatcher tick durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
