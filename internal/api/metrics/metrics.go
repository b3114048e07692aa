// Package metrics defines all custom Prometheus metrics for the fitness
// tracker API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry at init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fittrack"

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// EntriesCreatedTotal counts logged workout entries.
// Label:
//   - activity: the activity name (e.g. "Running")
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of workout entries created, by activity.",
	},
	[]string{"activity"},
)
