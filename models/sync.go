package models

import "time"

// SyncCursor is the per-tenant acknowledgement bookkeeping row. It records
// the highest revision a caller claims to have delivered: client-reported
// truth that may lag behind, or even exceed, what is actually stored. The
// authoritative value is always re-derivable from the entity stores.
type SyncCursor struct {
	// ID is the internal surrogate primary key. Not exposed via JSON.
	ID int64 `json:"-"`

	// TenantID identifies the owning company. At most one cursor row exists
	// per tenant.
	TenantID int64 `json:"tenant_id"`

	// LastAcknowledgedRevision is the highest revision the tracker has been
	// told was delivered. Defaults to 0 for tenants that never acknowledged.
	LastAcknowledgedRevision int64 `json:"last_acknowledged_revision"`

	// EntityKind tags which kind triggered the last acknowledgement.
	// May be empty.
	EntityKind EntityKind `json:"entity_kind,omitempty"`

	// LastSyncTime is stamped on every acknowledgement.
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BatchSummary reports the outcome of one bulk reconciliation call.
// A batch is never all-or-nothing: already-processed records stay committed
// when a later record fails, and the whole batch can safely be resent
// because every upsert is idempotent.
type BatchSummary struct {
	// TotalReceived is the number of candidates in the incoming batch.
	TotalReceived int `json:"total_received"`

	// TotalProcessed is the number of candidates successfully reconciled.
	TotalProcessed int `json:"total_processed"`

	// FirstError describes the first per-record failure, if any.
	FirstError string `json:"first_error,omitempty"`
}

// AcknowledgementRequest is the payload of the cursor-update endpoint.
type AcknowledgementRequest struct {
	// Revision is the highest revision the client believes it has delivered.
	Revision int64 `json:"revision"`

	// EntityKind tags which kind the client just finished pushing.
	EntityKind EntityKind `json:"entity_kind"`
}

// RevisionResponse carries a single revision value for one tenant, used by
// both the acknowledged-cursor and the store-derived-maximum read endpoints.
type RevisionResponse struct {
	TenantID int64 `json:"tenant_id"`
	Revision int64 `json:"revision"`
}

// KindMaximaResponse carries the per-kind maximum revisions for one tenant,
// exposed for drift diagnostics.
type KindMaximaResponse struct {
	TenantID int64                `json:"tenant_id"`
	Maxima   map[EntityKind]int64 `json:"maxima"`
}
