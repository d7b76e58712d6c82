// Package metrics defines and registers all custom Prometheus metrics for the
// bistro API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// /metrics route is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// AuthFailuresTotal counts requests rejected by the credential or role gates.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", "not_admin", "unknown_user"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth or admin gates.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts access credentials minted by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// PaymentIntentsTotal counts payment-intent requests to the gateway.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested from the gateway, by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts checkout submissions.
// Label:
//   - result: "ok", "duplicate", or "error"
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payment submissions, by result.",
	},
	[]string{"result"},
)
