package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// post operations are mounted flat so CheckHTTPMethod can match them
	for _, op := range h.operations {
		router.Method(op.method, op.route(), h.adapt(op))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
