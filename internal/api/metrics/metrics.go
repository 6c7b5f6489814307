// Package metrics defines and registers all custom Prometheus metrics for
// the daily diet API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dailydiet"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)

// MealsCreatedTotal counts meals created.
// Label:
//   - in_diet: "true" or "false", the flag the meal was created with
var MealsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_created_total",
		Help:      "Total number of meals created, by in-diet flag.",
	},
	[]string{"in_diet"},
)

// MealsDeletedTotal counts delete requests that completed, whether or not
// a row actually matched (zero-row deletes are indistinguishable).
var MealsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_deleted_total",
		Help:      "Total number of meal delete operations completed.",
	},
)
