// Package handlers provides HTTP handlers for account management.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
)

// AccountHandlers contains HTTP handlers for the accounts API
type AccountHandlers struct {
	repo *accounts.Repository
	log  zerolog.Logger
}

// NewAccountHandlers creates a new account handlers instance
func NewAccountHandlers(repo *accounts.Repository, log zerolog.Logger) *AccountHandlers {
	return &AccountHandlers{
		repo: repo,
		log:  log.With().Str("handler", "accounts").Logger(),
	}
}

// HandleList handles GET /api/accounts
func (h *AccountHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list accounts")
		http.Error(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []accounts.Account{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/accounts
func (h *AccountHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name"`
		Currency     string  `json:"currency"`
		StartBalance float64 `json:"startBalance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.repo.Create(accounts.Account{
		Name:         req.Name,
		Currency:     req.Currency,
		StartBalance: req.StartBalance,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create account")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, account)
}

// HandleGet handles GET /api/accounts/{accountID}
func (h *AccountHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "accountID")

	account, err := h.repo.GetByID(id)
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("Failed to get account")
		http.Error(w, "Failed to get account", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, account)
}

// HandleDelete handles DELETE /api/accounts/{accountID}
func (h *AccountHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "accountID")

	err := h.repo.Delete(id)
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("Failed to delete account")
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleActivate handles PUT /api/accounts/{accountID}/activate
func (h *AccountHandlers) HandleActivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "accountID")

	err := h.repo.SetActive(id)
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("Failed to activate account")
		http.Error(w, "Failed to activate account", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"active": id})
}

// HandleGetActive handles GET /api/accounts/active
func (h *AccountHandlers) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	account, err := h.repo.GetActive()
	if errors.Is(err, accounts.ErrNotFound) {
		http.Error(w, "No active account", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get active account")
		http.Error(w, "Failed to get active account", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
