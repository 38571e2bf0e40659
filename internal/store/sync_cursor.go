package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/models"
)

// syncCursorRepository is the PostgreSQL-backed implementation of
// [SyncCursorRepository]. At most one cursor row exists per tenant; the
// uniqueness constraint on tenant_id lets Upsert ride ON CONFLICT.
type syncCursorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSyncCursorRepository constructs a [SyncCursorRepository] backed by the
// provided database connection and logger.
func NewSyncCursorRepository(db *DB, logger *logger.Logger) SyncCursorRepository {
	logger.Debug().Msg("creating sync cursor repository")
	return &syncCursorRepository{
		db:     db,
		logger: logger,
	}
}

// GetByTenant returns the tenant's cursor row. Tenants that never
// acknowledged anything have no row and get [ErrCursorNotFound].
func (r *syncCursorRepository) GetByTenant(ctx context.Context, tenantID int64) (models.SyncCursor, error) {
	log := logger.FromContext(ctx)

	cursor, err := scanSyncCursor(r.db.QueryRowContext(ctx, getSyncCursorByTenant, tenantID))
	if err != nil && r.db.retryable(err) {
		cursor, err = scanSyncCursor(r.db.QueryRowContext(ctx, getSyncCursorByTenant, tenantID))
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncCursor{}, ErrCursorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*syncCursorRepository.GetByTenant").Msg("error scanning sync cursor")
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cursor, nil
}

// Upsert creates the tenant's cursor row or overwrites the existing one and
// returns the stored state.
func (r *syncCursorRepository) Upsert(ctx context.Context, cursor models.SyncCursor) (models.SyncCursor, error) {
	log := logger.FromContext(ctx)

	entityKind := sql.NullString{String: cursor.EntityKind.String(), Valid: cursor.EntityKind != ""}
	args := []any{cursor.TenantID, cursor.LastAcknowledgedRevision, entityKind, cursor.LastSyncTime}

	// The upsert is idempotent, so repeating it after a transient failure is safe.
	saved, err := scanSyncCursor(r.db.QueryRowContext(ctx, upsertSyncCursor, args...))
	if err != nil && r.db.retryable(err) {
		saved, err = scanSyncCursor(r.db.QueryRowContext(ctx, upsertSyncCursor, args...))
	}
	if err != nil {
		log.Err(err).Str("func", "*syncCursorRepository.Upsert").Msg("error upserting sync cursor")
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func scanSyncCursor(row *sql.Row) (models.SyncCursor, error) {
	var cursor models.SyncCursor
	var entityKind sql.NullString
	var lastSync sql.NullTime

	err := row.Scan(
		&cursor.ID, &cursor.TenantID, &cursor.LastAcknowledgedRevision,
		&entityKind, &lastSync, &cursor.CreatedAt, &cursor.UpdatedAt,
	)
	if err != nil {
		return models.SyncCursor{}, err
	}

	if entityKind.Valid {
		cursor.EntityKind = models.EntityKind(entityKind.String)
	}
	if lastSync.Valid {
		cursor.LastSyncTime = &lastSync.Time
	}

	return cursor, nil
}
