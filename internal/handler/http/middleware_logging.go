package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hraghav/tally-mirror/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		// Route params are resolved once the request has passed through the
		// router, so the tenant is only known here, after the handler ran.
		if tenant := chi.URLParam(r, "tenantID"); tenant != "" {
			event = event.Str("tenant_id", tenant)
		}

		event.Send()
	})
}
