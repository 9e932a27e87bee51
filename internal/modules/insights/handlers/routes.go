package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all insight routes
func (h *InsightHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/accounts/{accountID}/insights/trade/{tradeID}", h.HandleTrade)
	r.Post("/accounts/{accountID}/insights/performance", h.HandlePerformance)
	r.Post("/risk/insights", h.HandleRisk)
	r.Post("/news/insights", h.HandleMarket)
}
