package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/store"
	"github.com/hraghav/tally-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCursorRepo struct {
	cursors map[int64]models.SyncCursor
	nextID  int64
	err     error
}

func newFakeCursorRepo() *fakeCursorRepo {
	return &fakeCursorRepo{cursors: make(map[int64]models.SyncCursor), nextID: 1}
}

func (f *fakeCursorRepo) GetByTenant(_ context.Context, tenantID int64) (models.SyncCursor, error) {
	if f.err != nil {
		return models.SyncCursor{}, f.err
	}

	cursor, ok := f.cursors[tenantID]
	if !ok {
		return models.SyncCursor{}, store.ErrCursorNotFound
	}
	return cursor, nil
}

func (f *fakeCursorRepo) Upsert(_ context.Context, cursor models.SyncCursor) (models.SyncCursor, error) {
	if f.err != nil {
		return models.SyncCursor{}, f.err
	}

	if existing, ok := f.cursors[cursor.TenantID]; ok {
		cursor.ID = existing.ID
	} else {
		cursor.ID = f.nextID
		f.nextID++
	}
	f.cursors[cursor.TenantID] = cursor
	return cursor, nil
}

type fakeRevisionSource struct {
	revisions map[int64]int64
	err       error
}

func (f *fakeRevisionSource) MaxRevision(_ context.Context, tenantID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.revisions[tenantID], nil
}

func newTestSyncStatusService(cursors store.SyncCursorRepository, sources map[models.EntityKind]store.RevisionSource) *syncStatusService {
	s := NewSyncStatusService(cursors, sources, logger.Nop()).(*syncStatusService)
	s.now = func() time.Time { return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestGetLastAcknowledgedRevision_DefaultsToZero(t *testing.T) {
	s := newTestSyncStatusService(newFakeCursorRepo(), nil)

	revision, err := s.GetLastAcknowledgedRevision(context.Background(), 1)
	require.NoError(t, err, "a tenant that never acknowledged is not an error")
	assert.Zero(t, revision)
}

func TestRecordAcknowledgement_ThenRead(t *testing.T) {
	s := newTestSyncStatusService(newFakeCursorRepo(), nil)

	saved, err := s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{
		Revision:   120,
		EntityKind: models.KindLedger,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), saved.LastAcknowledgedRevision)
	assert.Equal(t, models.KindLedger, saved.EntityKind)
	require.NotNil(t, saved.LastSyncTime)

	revision, err := s.GetLastAcknowledgedRevision(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(120), revision)
}

func TestRecordAcknowledgement_OverwritesPrevious(t *testing.T) {
	repo := newFakeCursorRepo()
	s := newTestSyncStatusService(repo, nil)

	_, err := s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{Revision: 120})
	require.NoError(t, err)

	// A lower revision is stored as-is: the cursor is client-reported truth.
	saved, err := s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{Revision: 80})
	require.NoError(t, err)
	assert.Equal(t, int64(80), saved.LastAcknowledgedRevision)
	assert.Len(t, repo.cursors, 1, "one cursor row per tenant")
}

func TestRecordAcknowledgement_Validation(t *testing.T) {
	s := newTestSyncStatusService(newFakeCursorRepo(), nil)

	_, err := s.RecordAcknowledgement(context.Background(), 0, models.AcknowledgementRequest{Revision: 1})
	assert.ErrorIs(t, err, ErrValidationMissingTenantID)

	_, err = s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{Revision: -1})
	assert.ErrorIs(t, err, ErrValidationNegativeRevision)

	_, err = s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{Revision: 1, EntityKind: "voucher"})
	assert.ErrorIs(t, err, ErrValidationUnknownEntityKind)
}

func TestGetCurrentMaxRevision_AcrossKinds(t *testing.T) {
	sources := map[models.EntityKind]store.RevisionSource{
		models.KindGroup:     &fakeRevisionSource{revisions: map[int64]int64{1: 10}},
		models.KindLedger:    &fakeRevisionSource{revisions: map[int64]int64{1: 25}},
		models.KindStockItem: &fakeRevisionSource{revisions: map[int64]int64{1: 7}},
	}
	s := newTestSyncStatusService(newFakeCursorRepo(), sources)

	revision, err := s.GetCurrentMaxRevision(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(25), revision)
}

func TestGetCurrentMaxRevision_NoRecords(t *testing.T) {
	sources := map[models.EntityKind]store.RevisionSource{
		models.KindGroup: &fakeRevisionSource{revisions: map[int64]int64{}},
	}
	s := newTestSyncStatusService(newFakeCursorRepo(), sources)

	revision, err := s.GetCurrentMaxRevision(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, revision)
}

func TestGetAllEntityKindMaxima(t *testing.T) {
	sources := map[models.EntityKind]store.RevisionSource{
		models.KindGroup:  &fakeRevisionSource{revisions: map[int64]int64{1: 10}},
		models.KindLedger: &fakeRevisionSource{revisions: map[int64]int64{1: 25}},
	}
	s := newTestSyncStatusService(newFakeCursorRepo(), sources)

	maxima, err := s.GetAllEntityKindMaxima(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(10), maxima[models.KindGroup])
	assert.Equal(t, int64(25), maxima[models.KindLedger])
	assert.Len(t, maxima, 2, "only wired kinds are reported")
}

func TestGetAllEntityKindMaxima_SourceErrorPropagates(t *testing.T) {
	sources := map[models.EntityKind]store.RevisionSource{
		models.KindGroup: &fakeRevisionSource{err: errors.New("db down")},
	}
	s := newTestSyncStatusService(newFakeCursorRepo(), sources)

	_, err := s.GetAllEntityKindMaxima(context.Background(), 1)
	require.Error(t, err)
}

// The acknowledged cursor and the store-derived maximum drift independently:
// a client may acknowledge past what the stores hold, and deliveries may land
// without any acknowledgement. Both reads report their own truth.
func TestCursorAndStoreMaxDriftIndependently(t *testing.T) {
	sources := map[models.EntityKind]store.RevisionSource{
		models.KindLedger: &fakeRevisionSource{revisions: map[int64]int64{1: 25}},
	}
	s := newTestSyncStatusService(newFakeCursorRepo(), sources)

	_, err := s.RecordAcknowledgement(context.Background(), 1, models.AcknowledgementRequest{Revision: 100})
	require.NoError(t, err)

	acknowledged, err := s.GetLastAcknowledgedRevision(context.Background(), 1)
	require.NoError(t, err)
	stored, err := s.GetCurrentMaxRevision(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(100), acknowledged, "cursor stores the claim unvalidated")
	assert.Equal(t, int64(25), stored, "true maximum is always derived from the stores")
}
