package http

import (
	"errors"
	"net/http"

	"github.com/hraghav/tally-mirror/internal/service"
	"github.com/hraghav/tally-mirror/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:         http.StatusBadRequest,
	service.ErrWrongPassword:               http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:     http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:       http.StatusBadRequest,
	service.ErrValidationMissingTenantID:   http.StatusBadRequest,
	service.ErrValidationMissingExternalID: http.StatusBadRequest,
	service.ErrValidationEmptyBatch:        http.StatusBadRequest,
	service.ErrValidationTenantMismatch:    http.StatusBadRequest,
	service.ErrValidationUnknownEntityKind: http.StatusBadRequest,
	service.ErrValidationNegativeRevision:  http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrDuplicateRecord:    http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingAttrs:    http.StatusInternalServerError,
	store.ErrDecodingAttrs:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
