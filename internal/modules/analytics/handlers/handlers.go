// Package handlers provides HTTP handlers for performance analytics.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/analytics"
)

// AnalyticsHandlers contains HTTP handlers for the analytics API
type AnalyticsHandlers struct {
	service *analytics.Service
	log     zerolog.Logger
}

// NewAnalyticsHandlers creates a new analytics handlers instance
func NewAnalyticsHandlers(service *analytics.Service, log zerolog.Logger) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		service: service,
		log:     log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleEquityCurve handles GET /api/accounts/{accountID}/analytics/equity-curve
func (h *AnalyticsHandlers) HandleEquityCurve(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	curve, err := h.service.EquityCurve(accountID)
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to compute equity curve")
		http.Error(w, "Failed to compute equity curve", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, curve)
}

// HandlePairPerformance handles GET /api/accounts/{accountID}/analytics/pairs
func (h *AnalyticsHandlers) HandlePairPerformance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	perf, err := h.service.PairPerformance(accountID)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to compute pair performance")
		http.Error(w, "Failed to compute pair performance", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, perf)
}

// HandleStrategyPerformance handles GET /api/accounts/{accountID}/analytics/strategies
func (h *AnalyticsHandlers) HandleStrategyPerformance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	perf, err := h.service.StrategyPerformance(accountID)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to compute strategy performance")
		http.Error(w, "Failed to compute strategy performance", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, perf)
}

// HandlePerformers handles GET /api/accounts/{accountID}/analytics/performers
func (h *AnalyticsHandlers) HandlePerformers(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	performers, err := h.service.Performers(accountID)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to compute performers")
		http.Error(w, "Failed to compute performers", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, performers)
}

func (h *AnalyticsHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
