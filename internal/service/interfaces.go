package service

import (
	"context"

	"github.com/hraghav/tally-mirror/models"
)

// AuthService handles operator account registration, credential verification,
// and JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new user account with a server-side hashed
	// password and returns the persisted user.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing user by login and password.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SyncStatusService tracks sync progress per tenant: the client-reported
// acknowledgement cursor and the store-derived true maximum revision.
type SyncStatusService interface {
	// GetLastAcknowledgedRevision returns the tenant's acknowledged cursor,
	// or zero when the tenant has never acknowledged anything.
	GetLastAcknowledgedRevision(ctx context.Context, tenantID int64) (int64, error)

	// GetCurrentMaxRevision derives the highest revision actually stored for
	// the tenant across all entity kinds.
	GetCurrentMaxRevision(ctx context.Context, tenantID int64) (int64, error)

	// GetAllEntityKindMaxima derives the highest stored revision per entity
	// kind for the tenant. Kinds with no records report zero.
	GetAllEntityKindMaxima(ctx context.Context, tenantID int64) (map[models.EntityKind]int64, error)

	// RecordAcknowledgement overwrites the tenant's cursor with the
	// client-reported revision and returns the stored cursor state.
	RecordAcknowledgement(ctx context.Context, tenantID int64, req models.AcknowledgementRequest) (models.SyncCursor, error)
}

// AppInfoService exposes build and version metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
