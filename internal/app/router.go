package app

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tempizhere/shortyio/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор панели управления
func NewRouter(h *Handler, trustedSubnet string, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TrustedSubnetMiddleware(trustedSubnet, logger))
	r.Use(middleware.GzipMiddleware)

	r.Get("/ping", h.HandlePing)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.HandleState)
		r.Put("/form", h.HandleForm)
		r.Post("/links", h.HandleSubmit)
		r.Get("/settings", h.HandleGetSettings)
		r.Put("/settings", h.HandleSaveSettings)
		r.Post("/settings/open", h.HandleOpenSettings)
		r.Post("/settings/close", h.HandleCloseSettings)
		r.Post("/copy", h.HandleCopy)
	})

	return r
}
