// Package handlers provides HTTP handlers for the position-size calculator.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/risk"
)

// RiskHandlers contains HTTP handlers for the risk calculator API
type RiskHandlers struct {
	log zerolog.Logger
}

// NewRiskHandlers creates a new risk handlers instance
func NewRiskHandlers(log zerolog.Logger) *RiskHandlers {
	return &RiskHandlers{
		log: log.With().Str("handler", "risk").Logger(),
	}
}

// HandleLotSize handles POST /api/risk/lot-size
func (h *RiskHandlers) HandleLotSize(w http.ResponseWriter, r *http.Request) {
	var in risk.LotSizeInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := risk.CalculateLotSize(in)
	if errors.Is(err, risk.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to calculate lot size")
		http.Error(w, "Failed to calculate lot size", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandlePosition handles POST /api/risk/position
func (h *RiskHandlers) HandlePosition(w http.ResponseWriter, r *http.Request) {
	var in risk.PositionInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := risk.CalculatePosition(in)
	if errors.Is(err, risk.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to calculate position size")
		http.Error(w, "Failed to calculate position size", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *RiskHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
