package models

import "time"

// User represents an operator account allowed to push and read mirrored
// master data. Authentication is per user; tenant scoping happens per
// request on the sync endpoints.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the HMAC-SHA256 derived credential, never plaintext
	// at rest: the server hashes the submitted value with its own key
	// before storage or comparison.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}
