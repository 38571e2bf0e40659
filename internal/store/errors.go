package store

import "errors"

// Sentinel errors returned by the storage layer. Callers match them with
// errors.Is; lower-level driver errors are wrapped underneath.
var (
	// ErrRecordNotFound is returned when a lookup matches no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateRecord is returned when an insert violates a uniqueness
	// constraint, such as two records sharing a tenant and external id.
	ErrDuplicateRecord = errors.New("duplicate record")
	// ErrCursorNotFound is returned when a tenant has no sync cursor yet.
	ErrCursorNotFound = errors.New("sync cursor not found")

	// ErrLoginAlreadyExists is returned on user registration when the
	// login is already taken.
	ErrLoginAlreadyExists = errors.New("user with entered login already exists")
	// ErrNoUserWasFound is returned when no user matches the given login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBuildingSQLQuery wraps failures from the SQL query builder.
	ErrBuildingSQLQuery = errors.New("error building sql query")
	// ErrExecutingQuery wraps failures from query execution.
	ErrExecutingQuery = errors.New("error executing query")
	// ErrScanningRow wraps failures scanning a single result row.
	ErrScanningRow = errors.New("error scanning row")
	// ErrScanningRows wraps failures while iterating result rows.
	ErrScanningRows = errors.New("error scanning rows")
	// ErrEncodingAttrs wraps failures serializing kind-specific attributes.
	ErrEncodingAttrs = errors.New("error encoding attributes")
	// ErrDecodingAttrs wraps failures deserializing kind-specific attributes.
	ErrDecodingAttrs = errors.New("error decoding attributes")
)
