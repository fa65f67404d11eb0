// Package metrics defines and registers the custom Prometheus metrics of the
// palette API. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import; request
// level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tv_palette"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests turned away by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_scheme", "invalid_signature", "expired", "malformed"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by token verification.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "unknown_email", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Palette metrics ───────────────────────────────────────────────────────────

// PaletteOperationsTotal counts palette operations.
// Labels:
//   - op: "fetch", "create", "add_program", "edit_program", "delete_program",
//     "prepend_program", "insert_category", "delete_category"
//   - result: "ok" or "error"
var PaletteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "palette_operations_total",
		Help:      "Total number of palette operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// PaletteOperationDuration measures how long a palette operation takes,
// store round trips included.
var PaletteOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "palette_operation_duration_seconds",
		Help:      "Duration of palette operations from request to store acknowledgement.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// Result maps an operation error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
