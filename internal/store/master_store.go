package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/models"
	"github.com/jackc/pgerrcode"
)

// masterColumns is the shared column set of every master-data table, in the
// order used by all SELECT scans in this file.
var masterColumns = []string{
	"id", "tenant_id", "external_id", "revision", "guid", "name",
	"is_active", "is_deleted", "attrs", "last_sync_time", "created_at", "updated_at",
}

// MasterStore is the PostgreSQL-backed implementation of [MasterRepository].
// One generic implementation serves all twelve entity kinds: the tables share
// the same core columns, and kind-specific attributes live in a JSONB attrs
// column serialized from the record's attribute struct.
type MasterStore[T models.Master] struct {
	db        *DB
	spec      KindSpec
	newRecord func() T
	logger    *logger.Logger
}

// NewMasterStore constructs a [MasterStore] for one entity kind. newRecord
// must allocate a fresh zero record; scans populate it through the [models.Master]
// accessors.
func NewMasterStore[T models.Master](db *DB, spec KindSpec, newRecord func() T, log *logger.Logger) *MasterStore[T] {
	log.Debug().Str("kind", spec.Kind.String()).Msg("creating master store")
	return &MasterStore[T]{
		db:        db,
		spec:      spec,
		newRecord: newRecord,
		logger:    log,
	}
}

// FindByTenantAndExternalID returns the single record matching the
// reconciliation key (tenant_id, external_id), or [ErrRecordNotFound].
func (s *MasterStore[T]) FindByTenantAndExternalID(ctx context.Context, tenantID, externalID int64) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := sq.Select(masterColumns...).
		From(s.spec.Table).
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.Eq{"external_id": externalID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.FindByTenantAndExternalID").Msg("error building sql query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record := s.newRecord()
	core := record.Core()

	var attrsRaw []byte
	var lastSync sql.NullTime

	err = s.db.scanRowRetry(ctx, query, args,
		&core.ID, &core.TenantID, &core.ExternalID, &core.Revision, &core.GUID, &core.Name,
		&core.IsActive, &core.IsDeleted, &attrsRaw, &lastSync, &core.CreatedAt, &core.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.FindByTenantAndExternalID").Msg("error scanning row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastSync.Valid {
		core.LastSyncTime = &lastSync.Time
	}
	if len(attrsRaw) > 0 {
		if err := json.Unmarshal(attrsRaw, record.Attrs()); err != nil {
			log.Err(err).Str("func", "*MasterStore.FindByTenantAndExternalID").Msg("error decoding attrs")
			return zero, fmt.Errorf("%w: %w", ErrDecodingAttrs, err)
		}
	}

	return record, nil
}

// Save inserts the record when its internal ID is zero and updates the
// existing row otherwise. Inserts that lose a uniqueness race on
// (tenant_id, external_id) return [ErrDuplicateRecord].
func (s *MasterStore[T]) Save(ctx context.Context, record T) (T, error) {
	if record.Core().ID == 0 {
		return s.insert(ctx, record)
	}
	return s.update(ctx, record)
}

func (s *MasterStore[T]) insert(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	core := record.Core()
	attrsRaw, err := json.Marshal(record.Attrs())
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.insert").Msg("error encoding attrs")
		return zero, fmt.Errorf("%w: %w", ErrEncodingAttrs, err)
	}

	query, args, err := sq.Insert(s.spec.Table).
		Columns("tenant_id", "external_id", "revision", "guid", "name",
			"is_active", "is_deleted", "attrs", "last_sync_time").
		Values(core.TenantID, core.ExternalID, core.Revision, core.GUID, core.Name,
			core.IsActive, core.IsDeleted, attrsRaw, core.LastSyncTime).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.insert").Msg("error building sql query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// A retried insert whose first attempt actually committed surfaces as a
	// unique violation, which the caller already resolves by re-reading.
	if err := s.db.scanRowRetry(ctx, query, args, &core.ID, &core.CreatedAt, &core.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return zero, ErrDuplicateRecord
		}

		log.Err(err).Str("func", "*MasterStore.insert").Msg("error inserting record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (s *MasterStore[T]) update(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	core := record.Core()
	attrsRaw, err := json.Marshal(record.Attrs())
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.update").Msg("error encoding attrs")
		return zero, fmt.Errorf("%w: %w", ErrEncodingAttrs, err)
	}

	query, args, err := sq.Update(s.spec.Table).
		Set("revision", core.Revision).
		Set("guid", core.GUID).
		Set("name", core.Name).
		Set("is_active", core.IsActive).
		Set("is_deleted", core.IsDeleted).
		Set("attrs", attrsRaw).
		Set("last_sync_time", core.LastSyncTime).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": core.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.update").Msg("error building sql query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := s.db.scanRowRetry(ctx, query, args, &core.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*MasterStore.update").Msg("error updating record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// MaxRevision returns the highest stored revision for the tenant within this
// kind. Tenants with no records of this kind yield zero.
func (s *MasterStore[T]) MaxRevision(ctx context.Context, tenantID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("COALESCE(MAX(revision), 0)").
		From(s.spec.Table).
		Where(sq.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*MasterStore.MaxRevision").Msg("error building sql query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxRevision int64
	if err := s.db.scanRowRetry(ctx, query, args, &maxRevision); err != nil {
		log.Err(err).Str("func", "*MasterStore.MaxRevision").Msg("error querying max revision")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return maxRevision, nil
}
