package service

import (
	"context"
	"testing"

	"github.com/hraghav/tally-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncBatch_EmptyBatch(t *testing.T) {
	r := newTestReconciler(newFakeGroupRepo())

	_, err := r.SyncBatch(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrValidationEmptyBatch)

	_, err = r.SyncBatch(context.Background(), 1, []*models.Group{})
	assert.ErrorIs(t, err, ErrValidationEmptyBatch)
}

func TestSyncBatch_MissingTenant(t *testing.T) {
	r := newTestReconciler(newFakeGroupRepo())

	_, err := r.SyncBatch(context.Background(), 0, []*models.Group{candidateGroup(0, 1, 1, "a")})
	assert.ErrorIs(t, err, ErrValidationMissingTenantID)
}

func TestSyncBatch_AllSuccess(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{
		candidateGroup(1, 10, 1, "a"),
		candidateGroup(1, 11, 2, "b"),
		candidateGroup(1, 12, 3, "c"),
	}

	summary, err := r.SyncBatch(context.Background(), 1, batch)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalReceived)
	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Empty(t, summary.FirstError)
	assert.Len(t, repo.records, 3)
}

func TestSyncBatch_PartialFailureContinues(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{
		candidateGroup(1, 10, 1, "a"),
		candidateGroup(1, 0, 2, "missing external id"),
		candidateGroup(1, 12, 3, "c"),
	}

	summary, err := r.SyncBatch(context.Background(), 1, batch)
	require.NoError(t, err, "per-record failures never fail the batch call")

	assert.Equal(t, 3, summary.TotalReceived)
	assert.Equal(t, 2, summary.TotalProcessed)
	assert.Contains(t, summary.FirstError, "external_id 0")
	assert.Len(t, repo.records, 2, "records after the failed one are still processed")
}

func TestSyncBatch_NilRecordDoesNotAbort(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{
		candidateGroup(1, 10, 1, "a"),
		nil,
		candidateGroup(1, 12, 3, "c"),
	}

	summary, err := r.SyncBatch(context.Background(), 1, batch)
	require.NoError(t, err, "a nil record fails individually, never the batch call")

	assert.Equal(t, 3, summary.TotalReceived)
	assert.Equal(t, 2, summary.TotalProcessed)
	assert.Contains(t, summary.FirstError, ErrValidationNilRecord.Error())
	assert.Len(t, repo.records, 2, "records after the nil one are still processed")
}

func TestSyncBatch_TenantMismatch(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{
		candidateGroup(2, 10, 1, "claims another tenant"),
		candidateGroup(1, 11, 2, "ok"),
	}

	summary, err := r.SyncBatch(context.Background(), 1, batch)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalProcessed)
	assert.Contains(t, summary.FirstError, ErrValidationTenantMismatch.Error())
	assert.Len(t, repo.records, 1)
	_, mismatchStored := repo.records[recordKey{2, 10}]
	assert.False(t, mismatchStored, "mismatched record must not be re-homed or stored")
}

func TestSyncBatch_InheritsTenantFromRoute(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{candidateGroup(0, 10, 1, "no tenant in payload")}

	summary, err := r.SyncBatch(context.Background(), 7, batch)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalProcessed)
	stored, ok := repo.records[recordKey{7, 10}]
	require.True(t, ok)
	assert.Equal(t, int64(7), stored.TenantID)
}

func TestSyncBatch_ResendIsIdempotent(t *testing.T) {
	repo := newFakeGroupRepo()
	r := newTestReconciler(repo)

	batch := []*models.Group{
		candidateGroup(1, 10, 1, "a"),
		candidateGroup(1, 11, 2, "b"),
	}

	_, err := r.SyncBatch(context.Background(), 1, batch)
	require.NoError(t, err)

	resend := []*models.Group{
		candidateGroup(1, 10, 1, "a"),
		candidateGroup(1, 11, 2, "b"),
	}
	summary, err := r.SyncBatch(context.Background(), 1, resend)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProcessed)
	assert.Len(t, repo.records, 2, "resending a whole batch must not duplicate rows")
}
