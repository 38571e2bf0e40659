package http

import (
	"encoding/json"
	"net/http"

	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/utils"
	"github.com/hraghav/tally-mirror/models"
)

// getLastAcknowledgedRevision returns the tenant's acknowledgement cursor:
// the highest revision a client claims to have delivered, zero if none.
func (h *Handler) getLastAcknowledgedRevision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, err := tenantIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid tenant id")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	revision, err := h.services.SyncStatus.GetLastAcknowledgedRevision(ctx, tenantID)
	if err != nil {
		log.Err(err).Int64("tenant_id", tenantID).Msg("error reading acknowledged revision")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RevisionResponse{TenantID: tenantID, Revision: revision}, http.StatusOK)
}

// getCurrentMaxRevision returns the store-derived true maximum revision for
// the tenant across all entity kinds.
func (h *Handler) getCurrentMaxRevision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, err := tenantIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid tenant id")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	revision, err := h.services.SyncStatus.GetCurrentMaxRevision(ctx, tenantID)
	if err != nil {
		log.Err(err).Int64("tenant_id", tenantID).Msg("error deriving current max revision")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RevisionResponse{TenantID: tenantID, Revision: revision}, http.StatusOK)
}

// getEntityKindMaxima returns the per-kind maximum stored revisions for the
// tenant, for drift diagnostics against the acknowledged cursor.
func (h *Handler) getEntityKindMaxima(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, err := tenantIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid tenant id")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	maxima, err := h.services.SyncStatus.GetAllEntityKindMaxima(ctx, tenantID)
	if err != nil {
		log.Err(err).Int64("tenant_id", tenantID).Msg("error deriving entity kind maxima")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.KindMaximaResponse{TenantID: tenantID, Maxima: maxima}, http.StatusOK)
}

// acknowledge records the client-reported delivered revision for the tenant.
func (h *Handler) acknowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, err := tenantIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid tenant id")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.AcknowledgementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cursor, err := h.services.SyncStatus.RecordAcknowledgement(ctx, tenantID, req)
	if err != nil {
		log.Err(err).Int64("tenant_id", tenantID).Msg("error recording acknowledgement")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		log.Info().
			Int64("user_id", userID).
			Int64("tenant_id", tenantID).
			Int64("revision", req.Revision).
			Msg("acknowledgement recorded")
	}

	utils.WriteJSON(w, cursor, http.StatusOK)
}
