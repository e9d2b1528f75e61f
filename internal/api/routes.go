package api

import (
	"github.com/go-chi/chi/v5"
	apiMiddleware "github.com/phrazzld/benefit-cards/internal/api/middleware"
)

// RegisterRoutes mounts the card endpoints on r.
func (h *CardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/cards", func(r chi.Router) {
		r.With(apiMiddleware.RequireAPIKey).Post("/", h.CreateCard)
		r.Patch("/{id}/activate", h.ActivateCard)
		r.Get("/{id}/balance", h.GetBalance)
		r.Patch("/{id}/block", h.BlockCard)
		r.Patch("/{id}/unblock", h.UnblockCard)
	})
}
