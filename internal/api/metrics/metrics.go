// Package metrics defines and registers all custom Prometheus metrics for the
// auth dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics together with echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "authdash"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "error"
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
//   - result: "success", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token checks performed by the auth
// middleware.
// Label:
//   - result: "ok", "expired", "invalid", or "stale_user"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
