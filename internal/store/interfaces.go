package store

import (
	"context"

	"github.com/hraghav/tally-mirror/models"
)

// UserRepository manages operator accounts used to authenticate API calls.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrLoginAlreadyExists] if the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose login matches user.Login.
	// Returns [ErrNoUserWasFound] if no such user exists.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// MasterRepository is the persistence contract for one entity kind's master
// records. One generic implementation serves all kinds; see [MasterStore].
type MasterRepository[T models.Master] interface {
	// FindByTenantAndExternalID returns the single record matching the
	// reconciliation key, or [ErrRecordNotFound].
	FindByTenantAndExternalID(ctx context.Context, tenantID, externalID int64) (T, error)

	// Save inserts the record when its internal ID is zero and updates it
	// in place otherwise. An insert that loses a uniqueness race returns
	// [ErrDuplicateRecord] so the caller can re-read and retry as an update.
	Save(ctx context.Context, record T) (T, error)

	// MaxRevision returns the highest stored revision for the tenant within
	// this kind, or zero when the tenant has no records of this kind.
	MaxRevision(ctx context.Context, tenantID int64) (int64, error)
}

// RevisionSource is the read-only slice of [MasterRepository] needed by the
// sync-status service to derive the true maximum revision across kinds.
// Every [MasterStore] satisfies it regardless of its type parameter.
type RevisionSource interface {
	MaxRevision(ctx context.Context, tenantID int64) (int64, error)
}

// SyncCursorRepository manages the per-tenant acknowledgement cursor.
type SyncCursorRepository interface {
	// GetByTenant returns the tenant's cursor row, or [ErrCursorNotFound]
	// when the tenant has never acknowledged anything.
	GetByTenant(ctx context.Context, tenantID int64) (models.SyncCursor, error)

	// Upsert creates the tenant's cursor row or overwrites the existing one.
	Upsert(ctx context.Context, cursor models.SyncCursor) (models.SyncCursor, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
