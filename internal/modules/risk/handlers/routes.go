package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all risk calculator routes
func (h *RiskHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/risk/lot-size", h.HandleLotSize)
	r.Post("/risk/position", h.HandlePosition)
}
