package store

// Prepared SQL text for the fixed-shape tables (users, sync_cursors).
// Master-data queries are built dynamically per table; see master_store.go.
const (
	createUser = `INSERT INTO users (login, password, name)
VALUES ($1, $2, $3)
RETURNING id, login, password, name, created_at`

	findUserByLogin = `SELECT id, login, password, name, created_at
FROM users
WHERE login = $1`

	getSyncCursorByTenant = `SELECT id, tenant_id, last_acknowledged_revision, entity_kind, last_sync_time, created_at, updated_at
FROM sync_cursors
WHERE tenant_id = $1`

	upsertSyncCursor = `INSERT INTO sync_cursors (tenant_id, last_acknowledged_revision, entity_kind, last_sync_time)
VALUES ($1, $2, $3, $4)
ON CONFLICT (tenant_id) DO UPDATE
SET last_acknowledged_revision = EXCLUDED.last_acknowledged_revision,
    entity_kind                = EXCLUDED.entity_kind,
    last_sync_time             = EXCLUDED.last_sync_time,
    updated_at                 = NOW()
RETURNING id, tenant_id, last_acknowledged_revision, entity_kind, last_sync_time, created_at, updated_at`
)
