package models

import "time"

// MasterCore holds the identity, versioning, and lifecycle fields shared by
// every mirrored master record regardless of its entity kind.
//
// Identity model:
//   - ID is the server-assigned surrogate key. It is never exposed to
//     clients and never reassigned once a row exists.
//   - TenantID + ExternalID form the reconciliation key: within one tenant
//     and one entity kind at most one stored record exists per ExternalID.
//   - GUID is a secondary identifier from the external system. It is kept
//     for lookups but never used to decide insert-vs-update.
//
// Revision is the external system's per-record change counter ("alter id").
// It is non-decreasing over a record's lifetime as reported upstream and is
// only meaningful in comparison within the same (tenant, kind) scope.
type MasterCore struct {
	// ID is the internal surrogate primary key. Not exposed via JSON.
	ID int64 `json:"-"`

	// TenantID identifies the owning company. Required, immutable once set.
	TenantID int64 `json:"tenant_id"`

	// ExternalID is the identifier assigned by the external accounting
	// system ("master id"). Unique within a tenant, not globally. Required.
	ExternalID int64 `json:"master_id"`

	// Revision is the external change counter ("alter id"). May be zero for
	// records never modified since creation.
	Revision int64 `json:"alter_id"`

	// GUID is the external system's secondary identifier.
	GUID string `json:"guid"`

	// Name is the record's display name.
	Name string `json:"name"`

	// IsActive marks the record as usable. Defaults to true on first insert.
	IsActive bool `json:"is_active"`

	// IsDeleted is the soft-delete flag. Rows are never physically removed
	// so that ExternalID-keyed identity is never reused ambiguously.
	IsDeleted bool `json:"is_deleted"`

	// LastSyncTime is stamped on every successful upsert.
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`

	// CreatedAt and UpdatedAt are server-side audit timestamps.
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Master is implemented by every concrete master-record type. It gives the
// generic store and reconciler uniform access to the shared core fields and
// to the kind-specific attribute block without per-kind code.
type Master interface {
	// Core returns a pointer to the shared identity/version/lifecycle fields.
	Core() *MasterCore

	// Kind returns the entity kind of the concrete record type.
	Kind() EntityKind

	// Attrs returns a pointer to the kind-specific attribute struct. The
	// store serializes it to the record's attrs column and the reconciler
	// overwrites it wholesale on every successful upsert.
	Attrs() any
}
