package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all news routes
func (h *NewsHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/news", h.HandleList)
	r.Get("/news/high-impact", h.HandleHighImpact)
	r.Get("/news/sentiment", h.HandleSentiment)
}
