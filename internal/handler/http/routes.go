package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodySize caps a dashboard upload.
const maxBodySize = 5 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/info", h.getProxyInfo)

	router.Route("/api/sync", func(r chi.Router) {
		r.Use(h.withStorage)
		r.Use(middleware.RequestSize(maxBodySize))

		r.Get("/", h.getDashboard)
		r.With(h.auth).Post("/", h.putDashboard)
	})

	return router
}
