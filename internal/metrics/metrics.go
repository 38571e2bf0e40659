// Package metrics registers the Prometheus instruments exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecordsReconciled.
const (
	OutcomeInserted = "inserted"
	OutcomeUpdated  = "updated"
	OutcomeFailed   = "failed"
)

// Result labels for BatchesProcessed.
const (
	ResultComplete = "complete"
	ResultPartial  = "partial"
)

var (
	// RecordsReconciled counts individual master-record upserts by entity
	// kind and outcome.
	RecordsReconciled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tally_mirror",
		Name:      "records_reconciled_total",
		Help:      "Master records reconciled, labelled by entity kind and outcome.",
	}, []string{"kind", "outcome"})

	// BatchesProcessed counts sync batches by entity kind and whether every
	// record in the batch succeeded.
	BatchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tally_mirror",
		Name:      "sync_batches_total",
		Help:      "Sync batches processed, labelled by entity kind and result.",
	}, []string{"kind", "result"})

	// Acknowledgements counts sync-cursor acknowledgements recorded.
	Acknowledgements = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tally_mirror",
		Name:      "acknowledgements_total",
		Help:      "Sync cursor acknowledgements recorded.",
	})
)
