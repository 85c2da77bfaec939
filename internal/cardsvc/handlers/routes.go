package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// Public routes. Verifier alone parses a token when one is
		// present, which lets the catalog export pick up column
		// preferences for signed-in users without requiring auth.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))

			r.Get("/health", h.HealthHandler)
			r.Get("/cards", h.ListCards)
			r.Get("/cards/{cardId}", h.GetCard)
			r.Get("/cards/export", h.ExportCatalog)
			r.Get("/activity", h.RecentActivity)
		})

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/collection", h.ListCollection)
			r.Post("/collection", h.AddCard)
			r.Get("/collection/export", h.ExportCollection)
			r.Get("/collection/{userCardId}", h.GetUserCard)
			r.Put("/collection/{userCardId}", h.UpdateCard)
			r.Delete("/collection/{userCardId}", h.DeleteCard)
			r.Post("/collection/{userCardId}/favorite", h.ToggleFavorite)

			r.Get("/lists/{slug}/cards", h.ListCardsInList)
			r.Delete("/lists/{slug}/cards/{cardId}", h.RemoveCardFromList)

			r.Post("/user", h.ProvisionUser)
			r.Get("/user/table-preferences/{tableName}", h.GetPreferences)
			r.Put("/user/table-preferences/{tableName}", h.PutPreferences)
		})
	})
}
