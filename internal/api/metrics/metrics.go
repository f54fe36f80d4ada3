// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - checkout: "guest" or "account"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by checkout kind.",
	},
	[]string{"checkout"},
)

// OrderStatusChangesTotal counts admin status updates.
// Label:
//   - status: the status written (e.g. "enviado")
var OrderStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_changes_total",
		Help:      "Total number of order status updates, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationTasksTotal counts notification tasks by outcome.
// Label:
//   - result: "processed", "failed" or "dropped" (queue full)
var NotificationTasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_tasks_total",
		Help:      "Total number of notification tasks, labelled by result.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks tasks waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notification tasks pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationTaskDuration measures how long a task takes from dequeue to the
// last delivery record being written.
var NotificationTaskDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_task_duration_seconds",
		Help:      "Duration of notification task handling.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SessionExchangesTotal counts identity exchanges.
// Label:
//   - result: "ok", "rejected", "invalid" or "error"
var SessionExchangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_exchanges_total",
		Help:      "Total number of identity exchanges, labelled by result.",
	},
	[]string{"result"},
)

// ImagesUploadedBytes observes accepted upload sizes.
var ImagesUploadedBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "images_uploaded_bytes",
		Help:      "Size of accepted image uploads in bytes.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 6), // 16KiB … 16MiB
	},
)
