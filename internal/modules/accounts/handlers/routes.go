package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all account routes.
// Routes are registered flat so that other modules can attach their own
// endpoints under /accounts/{accountID}/ without prefix conflicts.
func (h *AccountHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/accounts", h.HandleList)
	r.Post("/accounts", h.HandleCreate)
	r.Get("/accounts/active", h.HandleGetActive)
	r.Get("/accounts/{accountID}", h.HandleGet)
	r.Delete("/accounts/{accountID}", h.HandleDelete)
	r.Put("/accounts/{accountID}/activate", h.HandleActivate)
}
