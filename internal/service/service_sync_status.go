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

// syncStatusService is the concrete implementation of [SyncStatusService].
//
// It keeps two views of sync progress deliberately separate: the
// acknowledgement cursor records what the client CLAIMS was delivered, while
// the maximum revision is re-derived from the entity stores on every read
// and reflects what is ACTUALLY stored. The two drift when deliveries fail
// after acknowledgement or succeed without one; comparing them is how
// operators detect that drift.
type syncStatusService struct {
	cursors store.SyncCursorRepository
	sources map[models.EntityKind]store.RevisionSource
	now     func() time.Time
	logger  *logger.Logger
}

// NewSyncStatusService constructs a [SyncStatusService] over the cursor
// repository and the per-kind revision sources from [store.Storages.Registry].
func NewSyncStatusService(cursors store.SyncCursorRepository, sources map[models.EntityKind]store.RevisionSource, log *logger.Logger) SyncStatusService {
	return &syncStatusService{
		cursors: cursors,
		sources: sources,
		now:     time.Now,
		logger:  log,
	}
}

// GetLastAcknowledgedRevision returns the tenant's acknowledged cursor.
// A tenant that never acknowledged anything reads as zero, not as an error.
func (s *syncStatusService) GetLastAcknowledgedRevision(ctx context.Context, tenantID int64) (int64, error) {
	if tenantID == 0 {
		return 0, ErrValidationMissingTenantID
	}

	cursor, err := s.cursors.GetByTenant(ctx, tenantID)
	if errors.Is(err, store.ErrCursorNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading sync cursor: %w", err)
	}

	return cursor.LastAcknowledgedRevision, nil
}

// GetCurrentMaxRevision derives the highest revision stored for the tenant
// across every entity kind. A tenant with no records reads as zero.
func (s *syncStatusService) GetCurrentMaxRevision(ctx context.Context, tenantID int64) (int64, error) {
	maxima, err := s.GetAllEntityKindMaxima(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	var max int64
	for _, revision := range maxima {
		if revision > max {
			max = revision
		}
	}

	return max, nil
}

// GetAllEntityKindMaxima derives the highest stored revision per entity kind
// for the tenant. Kinds with no records report zero.
func (s *syncStatusService) GetAllEntityKindMaxima(ctx context.Context, tenantID int64) (map[models.EntityKind]int64, error) {
	log := logger.FromContext(ctx)

	if tenantID == 0 {
		return nil, ErrValidationMissingTenantID
	}

	maxima := make(map[models.EntityKind]int64, len(s.sources))
	for _, kind := range models.AllEntityKinds() {
		source, ok := s.sources[kind]
		if !ok {
			continue
		}

		revision, err := source.MaxRevision(ctx, tenantID)
		if err != nil {
			log.Err(err).
				Str("kind", kind.String()).
				Int64("tenant_id", tenantID).
				Msg("error deriving max revision")
			return nil, fmt.Errorf("deriving max revision for %s: %w", kind, err)
		}

		maxima[kind] = revision
	}

	return maxima, nil
}

// RecordAcknowledgement overwrites the tenant's cursor with the
// client-reported revision. The reported value is stored as-is, even when it
// moves the cursor backwards or past what the stores actually hold; the
// cursor is client-reported truth, never validated against store contents.
func (s *syncStatusService) RecordAcknowledgement(ctx context.Context, tenantID int64, req models.AcknowledgementRequest) (models.SyncCursor, error) {
	log := logger.FromContext(ctx)

	if tenantID == 0 {
		return models.SyncCursor{}, ErrValidationMissingTenantID
	}
	if req.Revision < 0 {
		return models.SyncCursor{}, ErrValidationNegativeRevision
	}
	if req.EntityKind != "" && !req.EntityKind.Valid() {
		return models.SyncCursor{}, ErrValidationUnknownEntityKind
	}

	now := s.now()
	cursor := models.SyncCursor{
		TenantID:                 tenantID,
		LastAcknowledgedRevision: req.Revision,
		EntityKind:               req.EntityKind,
		LastSyncTime:             &now,
	}

	saved, err := s.cursors.Upsert(ctx, cursor)
	if err != nil {
		log.Err(err).
			Int64("tenant_id", tenantID).
			Int64("revision", req.Revision).
			Msg("error recording acknowledgement")
		return models.SyncCursor{}, fmt.Errorf("recording acknowledgement: %w", err)
	}

	metrics.Acknowledgements.Inc()

	return saved, nil
}
