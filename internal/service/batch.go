package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/metrics"
	"github.com/hraghav/tally-mirror/models"
)

// SyncBatch reconciles a batch of candidates for one tenant. The batch is
// not transactional: records already processed stay committed when a later
// record fails, and resending the whole batch is safe because every upsert
// is idempotent.
//
// Per-record failures do not abort the batch. The summary reports how many
// candidates were received and processed, plus the first failure message.
// An empty batch is rejected with [ErrValidationEmptyBatch] before any
// record is touched.
func (r *Reconciler[T]) SyncBatch(ctx context.Context, tenantID int64, candidates []T) (models.BatchSummary, error) {
	log := logger.FromContext(ctx)

	if tenantID == 0 {
		return models.BatchSummary{}, ErrValidationMissingTenantID
	}
	if len(candidates) == 0 {
		return models.BatchSummary{}, ErrValidationEmptyBatch
	}

	summary := models.BatchSummary{TotalReceived: len(candidates)}

	for _, candidate := range candidates {
		// A literal null element in the JSON array decodes to a nil record.
		// It has no identity to reconcile, so it fails individually like any
		// other bad record instead of aborting the batch.
		if isNilRecord(candidate) {
			r.recordFailure(&summary, 0, ErrValidationNilRecord)
			metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
			continue
		}

		core := candidate.Core()

		// Records may omit the tenant and inherit it from the route, but a
		// record claiming a different tenant is never silently re-homed.
		if core.TenantID != 0 && core.TenantID != tenantID {
			r.recordFailure(&summary, core.ExternalID, ErrValidationTenantMismatch)
			metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
			continue
		}
		core.TenantID = tenantID

		if _, err := r.Upsert(ctx, candidate); err != nil {
			log.Err(err).
				Str("kind", r.kind.String()).
				Int64("tenant_id", tenantID).
				Int64("external_id", core.ExternalID).
				Msg("record reconciliation failed")
			r.recordFailure(&summary, core.ExternalID, err)
			continue
		}

		summary.TotalProcessed++
	}

	result := metrics.ResultComplete
	if summary.TotalProcessed != summary.TotalReceived {
		result = metrics.ResultPartial
	}
	metrics.BatchesProcessed.WithLabelValues(r.kind.String(), result).Inc()

	log.Info().
		Str("kind", r.kind.String()).
		Int64("tenant_id", tenantID).
		Int("received", summary.TotalReceived).
		Int("processed", summary.TotalProcessed).
		Msg("batch reconciled")

	return summary, nil
}

// recordFailure captures the first per-record error into the summary.
func (r *Reconciler[T]) recordFailure(summary *models.BatchSummary, externalID int64, err error) {
	if summary.FirstError == "" {
		summary.FirstError = fmt.Sprintf("external_id %d: %v", externalID, err)
	}
}

// isNilRecord reports whether a candidate is a nil pointer. The record types
// are pointers, so calling Core on a nil candidate would panic.
func isNilRecord[T models.Master](candidate T) bool {
	v := reflect.ValueOf(candidate)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
