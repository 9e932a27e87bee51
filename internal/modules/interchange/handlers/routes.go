package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all interchange routes
func (h *InterchangeHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/accounts/{accountID}/trades/import", h.HandleImport)
	r.Get("/accounts/{accountID}/trades/export", h.HandleExport)
}
