// Package handlers provides HTTP handlers for the trading journal.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// JournalHandlers contains HTTP handlers for the trade records API
type JournalHandlers struct {
	repo    *journal.Repository
	service *journal.Service
	log     zerolog.Logger
}

// NewJournalHandlers creates a new journal handlers instance
func NewJournalHandlers(repo *journal.Repository, service *journal.Service, log zerolog.Logger) *JournalHandlers {
	return &JournalHandlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "journal").Logger(),
	}
}

// tradeRequest is the user-supplied part of a trade record
type tradeRequest struct {
	Pair     string  `json:"pair"`
	LotSize  float64 `json:"lotSize"`
	Strategy string  `json:"strategy"`
	Position string  `json:"position"`
	PL       float64 `json:"pl"`
	Notes    string  `json:"notes"`
}

// HandleList handles GET /api/accounts/{accountID}/trades
func (h *JournalHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	trades, err := h.repo.ListByAccount(accountID)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to list trades")
		http.Error(w, "Failed to list trades", http.StatusInternalServerError)
		return
	}
	if trades == nil {
		trades = []journal.Trade{}
	}
	h.writeJSON(w, http.StatusOK, trades)
}

// HandleCreate handles POST /api/accounts/{accountID}/trades
func (h *JournalHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	trade, err := h.repo.Create(journal.Trade{
		AccountID: accountID,
		Pair:      req.Pair,
		LotSize:   req.LotSize,
		Strategy:  req.Strategy,
		Position:  journal.Position(req.Position),
		PL:        req.PL,
		Notes:     req.Notes,
	})
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to create trade")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, trade)
}

// HandleUpdate handles PUT /api/accounts/{accountID}/trades/{tradeID}
func (h *JournalHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	tradeID := chi.URLParam(r, "tradeID")

	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.repo.Update(accountID, tradeID, journal.Trade{
		AccountID: accountID,
		Pair:      req.Pair,
		LotSize:   req.LotSize,
		Strategy:  req.Strategy,
		Position:  journal.Position(req.Position),
		PL:        req.PL,
		Notes:     req.Notes,
	})
	if errors.Is(err, journal.ErrNotFound) {
		http.Error(w, "Trade not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("trade", tradeID).Msg("Failed to update trade")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /api/accounts/{accountID}/trades/{tradeID}
func (h *JournalHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	tradeID := chi.URLParam(r, "tradeID")

	err := h.repo.Delete(accountID, tradeID)
	if errors.Is(err, journal.ErrNotFound) {
		http.Error(w, "Trade not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("trade", tradeID).Msg("Failed to delete trade")
		http.Error(w, "Failed to delete trade", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleWithdrawal handles POST /api/accounts/{accountID}/withdrawals
func (h *JournalHandlers) HandleWithdrawal(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	trade, err := h.service.RecordWithdrawal(accountID, req.Amount)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to record withdrawal")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, trade)
}

// HandleSummary handles GET /api/accounts/{accountID}/summary
func (h *JournalHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	summary, err := h.service.Summary(accountID)
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to compute summary")
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}

func (h *JournalHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
