// Package metrics defines the custom Prometheus metrics for the QuickBasket
// commerce API. It is the single source of truth for metric names, labels,
// and help strings; collectors register themselves with the default registry
// at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// LoginsTotal counts authentication attempts.
// Labels:
//   - method: "password" or "biometric"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// TokenRefreshTotal counts refresh-token rotations.
// Label:
//   - result: "success" or "invalid"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh-token rotation attempts, by result.",
	},
	[]string{"result"},
)

// BiometricEnrollmentsTotal counts biometric credential changes.
// Label:
//   - action: "added" or "removed"
var BiometricEnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "biometric_enrollments_total",
		Help:      "Total number of biometric credential enrollments and removals.",
	},
	[]string{"action"},
)
