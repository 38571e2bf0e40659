package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrValidationNilRecord         = errors.New("nil record")
	ErrValidationMissingTenantID   = errors.New("missing tenant id")
	ErrValidationMissingExternalID = errors.New("missing external id")
	ErrValidationEmptyBatch        = errors.New("empty batch")
	ErrValidationTenantMismatch    = errors.New("record tenant does not match batch tenant")
	ErrValidationUnknownEntityKind = errors.New("unknown entity kind")
	ErrValidationNegativeRevision  = errors.New("negative revision")
)
