// Package handlers provides HTTP handlers for the insights API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/clients/gemini"
	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/insights"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// InsightHandlers contains HTTP handlers for the insights API
type InsightHandlers struct {
	service *insights.Service
	log     zerolog.Logger
}

// NewInsightHandlers creates a new insight handlers instance
func NewInsightHandlers(service *insights.Service, log zerolog.Logger) *InsightHandlers {
	return &InsightHandlers{
		service: service,
		log:     log.With().Str("handler", "insights").Logger(),
	}
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// HandleTrade handles POST /api/accounts/{accountID}/insights/trade/{tradeID}
func (h *InsightHandlers) HandleTrade(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	tradeID := chi.URLParam(r, "tradeID")

	text, err := h.service.AnalyzeTrade(r.Context(), accountID, tradeID)
	if err != nil {
		h.writeError(w, err, "Failed to analyze trade")
		return
	}
	h.writeJSON(w, http.StatusOK, insightResponse{Insight: text})
}

// HandlePerformance handles POST /api/accounts/{accountID}/insights/performance
func (h *InsightHandlers) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	text, err := h.service.AnalyzePerformance(r.Context(), accountID)
	if err != nil {
		h.writeError(w, err, "Failed to analyze performance")
		return
	}
	h.writeJSON(w, http.StatusOK, insightResponse{Insight: text})
}

// HandleRisk handles POST /api/risk/insights
func (h *InsightHandlers) HandleRisk(w http.ResponseWriter, r *http.Request) {
	var params insights.RiskParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	text, err := h.service.AnalyzeRisk(r.Context(), params)
	if err != nil {
		h.writeError(w, err, "Failed to analyze risk plan")
		return
	}
	h.writeJSON(w, http.StatusOK, insightResponse{Insight: text})
}

// HandleMarket handles POST /api/news/insights
func (h *InsightHandlers) HandleMarket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pairs []string `json:"pairs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	text, err := h.service.AnalyzeMarket(r.Context(), req.Pairs)
	if err != nil {
		h.writeError(w, err, "Failed to analyze market")
		return
	}
	h.writeJSON(w, http.StatusOK, insightResponse{Insight: text})
}

func (h *InsightHandlers) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, accounts.ErrNotFound):
		http.Error(w, "Account not found", http.StatusNotFound)
	case errors.Is(err, journal.ErrNotFound):
		http.Error(w, "Trade not found", http.StatusNotFound)
	case errors.Is(err, gemini.ErrNotConfigured):
		http.Error(w, "Insights are not configured", http.StatusServiceUnavailable)
	default:
		h.log.Error().Err(err).Msg(msg)
		http.Error(w, msg, http.StatusBadGateway)
	}
}

func (h *InsightHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
