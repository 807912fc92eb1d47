package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withCORS, withGZip)

	router.Get("/", h.status)
	router.Get("/health", h.health)
	router.Head("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route("/movies", func(r chi.Router) {
		r.Get("/", h.listMovies)
		r.Post("/", h.createMovie)

		r.Get("/{id}", h.getMovie)
		r.Put("/{id}", h.updateMovie)
		r.Delete("/{id}", h.deleteMovie)
	})

	return router
}
