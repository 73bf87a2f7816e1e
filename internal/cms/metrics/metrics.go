// Package metrics exposes the service's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HardDeletesFinalized counts evidence rows permanently removed through
	// the deletion workflow.
	HardDeletesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casetrack_hard_deletes_finalized_total",
		Help: "Number of evidence hard deletions finalized.",
	})

	// DeletionsCanceled counts deletion workflows canceled at the
	// confirmation step.
	DeletionsCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casetrack_deletions_canceled_total",
		Help: "Number of evidence deletion requests canceled at confirmation.",
	})

	// AuthzDenials counts requests rejected by the role guard.
	AuthzDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casetrack_authz_denials_total",
		Help: "Number of requests denied by role-based authorization.",
	})
)
