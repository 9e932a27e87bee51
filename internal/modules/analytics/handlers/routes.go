package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all analytics routes
func (h *AnalyticsHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/accounts/{accountID}/analytics/equity-curve", h.HandleEquityCurve)
	r.Get("/accounts/{accountID}/analytics/pairs", h.HandlePairPerformance)
	r.Get("/accounts/{accountID}/analytics/strategies", h.HandleStrategyPerformance)
	r.Get("/accounts/{accountID}/analytics/performers", h.HandlePerformers)
}
