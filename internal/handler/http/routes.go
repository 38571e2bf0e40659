package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// tenant-scoped sync API
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/tenants/{tenantID}/sync", func(r chi.Router) {
			r.Post("/groups", syncBatch(h, h.services.Reconcilers.Groups))
			r.Post("/ledgers", syncBatch(h, h.services.Reconcilers.Ledgers))
			r.Post("/stock-items", syncBatch(h, h.services.Reconcilers.StockItems))
			r.Post("/stock-groups", syncBatch(h, h.services.Reconcilers.StockGroups))
			r.Post("/stock-categories", syncBatch(h, h.services.Reconcilers.StockCategories))
			r.Post("/cost-categories", syncBatch(h, h.services.Reconcilers.CostCategories))
			r.Post("/cost-centers", syncBatch(h, h.services.Reconcilers.CostCenters))
			r.Post("/currencies", syncBatch(h, h.services.Reconcilers.Currencies))
			r.Post("/godowns", syncBatch(h, h.services.Reconcilers.Godowns))
			r.Post("/tax-units", syncBatch(h, h.services.Reconcilers.TaxUnits))
			r.Post("/units", syncBatch(h, h.services.Reconcilers.Units))
			r.Post("/voucher-types", syncBatch(h, h.services.Reconcilers.VoucherTypes))

			r.Get("/last-revision", h.getLastAcknowledgedRevision)
			r.Get("/current-revision", h.getCurrentMaxRevision)
			r.Get("/kind-maxima", h.getEntityKindMaxima)
			r.Post("/ack", h.acknowledge)
		})
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}
