package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/service"
	"github.com/hraghav/tally-mirror/internal/utils"
	"github.com/hraghav/tally-mirror/models"
)

// syncBatch builds the POST handler for one entity kind's sync route. The
// twelve kind routes differ only in the record type they decode and the
// reconciler they call, so one generic constructor serves them all.
//
// The request body is a JSON array of candidate records. The tenant comes
// from the route path; records may omit it but must not claim another one.
// The response is a [models.BatchSummary]: HTTP 200 even for partial
// failures, because already-processed records stay committed and the caller
// inspects the summary to decide what to resend.
func syncBatch[T models.Master](h *Handler, reconciler *service.Reconciler[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		tenantID, err := tenantIDFromRequest(r)
		if err != nil {
			log.Err(err).Msg("invalid tenant id")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var candidates []T
		if err := json.NewDecoder(r.Body).Decode(&candidates); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		summary, err := reconciler.SyncBatch(ctx, tenantID, candidates)
		if err != nil {
			log.Err(err).
				Str("kind", reconciler.Kind().String()).
				Int64("tenant_id", tenantID).
				Msg("batch rejected")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		utils.WriteJSON(w, summary, http.StatusOK)
	}
}

// tenantIDFromRequest parses the tenantID route parameter. Tenant ids are
// positive integers.
func tenantIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "tenantID")

	tenantID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tenantID <= 0 {
		return 0, ErrInvalidTenantID
	}

	return tenantID, nil
}
