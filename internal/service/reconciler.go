package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/metrics"
	"github.com/hraghav/tally-mirror/internal/store"
	"github.com/hraghav/tally-mirror/models"
)

// Reconciler applies incoming master-record candidates for one entity kind
// using an idempotent upsert keyed on (tenant, external id). One generic
// implementation serves all kinds; see [Reconcilers] for the wired set.
//
// Reconciliation semantics:
//   - An unseen key inserts the candidate with IsActive derived from the
//     soft-delete flag.
//   - A known key overwrites the stored record wholesale: revision, guid,
//     name, and the kind-specific attribute block all take the candidate's
//     values, with no comparison against the stored revision. The external
//     system is the source of truth and replaying an old batch is harmless
//     because upstream delivers changes in ascending revision order.
//   - Lifecycle flags (IsActive, IsDeleted) are server-managed after the
//     first insert and are never overwritten from a candidate.
type Reconciler[T models.Master] struct {
	store  store.MasterRepository[T]
	kind   models.EntityKind
	now    func() time.Time
	logger *logger.Logger
}

// NewReconciler constructs a [Reconciler] for one entity kind over the given
// repository.
func NewReconciler[T models.Master](repository store.MasterRepository[T], kind models.EntityKind, log *logger.Logger) *Reconciler[T] {
	return &Reconciler[T]{
		store:  repository,
		kind:   kind,
		now:    time.Now,
		logger: log,
	}
}

// Kind returns the entity kind this reconciler serves.
func (r *Reconciler[T]) Kind() models.EntityKind {
	return r.kind
}

// Upsert reconciles one candidate record. Calling it twice with the same
// candidate yields the same stored state and never creates a second row.
//
// An insert that loses a uniqueness race against a concurrent writer is
// re-read and retried once as an update, so concurrent upserts of the same
// key both succeed.
func (r *Reconciler[T]) Upsert(ctx context.Context, candidate T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	core := candidate.Core()
	if core.TenantID == 0 {
		return zero, ErrValidationMissingTenantID
	}
	if core.ExternalID == 0 {
		return zero, ErrValidationMissingExternalID
	}

	existing, err := r.store.FindByTenantAndExternalID(ctx, core.TenantID, core.ExternalID)
	switch {
	case err == nil:
		return r.overwrite(ctx, existing, candidate)

	case errors.Is(err, store.ErrRecordNotFound):
		saved, insertErr := r.insert(ctx, candidate)
		if errors.Is(insertErr, store.ErrDuplicateRecord) {
			// Lost the insert race; the row exists now.
			log.Info().
				Str("kind", r.kind.String()).
				Int64("tenant_id", core.TenantID).
				Int64("external_id", core.ExternalID).
				Msg("insert lost uniqueness race, retrying as update")

			existing, findErr := r.store.FindByTenantAndExternalID(ctx, core.TenantID, core.ExternalID)
			if findErr != nil {
				metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
				return zero, fmt.Errorf("re-reading record after duplicate insert: %w", findErr)
			}
			return r.overwrite(ctx, existing, candidate)
		}
		return saved, insertErr

	default:
		metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
		return zero, fmt.Errorf("looking up record: %w", err)
	}
}

// insert persists a first-time record. IsActive defaults to true unless the
// candidate arrives already soft-deleted.
func (r *Reconciler[T]) insert(ctx context.Context, candidate T) (T, error) {
	var zero T

	core := candidate.Core()
	core.ID = 0
	core.IsActive = !core.IsDeleted
	now := r.now()
	core.LastSyncTime = &now

	saved, err := r.store.Save(ctx, candidate)
	if err != nil {
		if !errors.Is(err, store.ErrDuplicateRecord) {
			metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
		}
		return zero, err
	}

	metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeInserted).Inc()
	return saved, nil
}

// overwrite replaces the stored record's content with the candidate's while
// preserving the server-managed fields: the surrogate key, both lifecycle
// flags, and the creation timestamp.
func (r *Reconciler[T]) overwrite(ctx context.Context, existing, candidate T) (T, error) {
	var zero T

	core := candidate.Core()
	stored := existing.Core()

	core.ID = stored.ID
	core.IsActive = stored.IsActive
	core.IsDeleted = stored.IsDeleted
	core.CreatedAt = stored.CreatedAt
	now := r.now()
	core.LastSyncTime = &now

	saved, err := r.store.Save(ctx, candidate)
	if err != nil {
		metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeFailed).Inc()
		return zero, fmt.Errorf("updating record: %w", err)
	}

	metrics.RecordsReconciled.WithLabelValues(r.kind.String(), metrics.OutcomeUpdated).Inc()
	return saved, nil
}
