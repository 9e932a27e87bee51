package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all journal routes
func (h *JournalHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/accounts/{accountID}/trades", h.HandleList)
	r.Post("/accounts/{accountID}/trades", h.HandleCreate)
	r.Put("/accounts/{accountID}/trades/{tradeID}", h.HandleUpdate)
	r.Delete("/accounts/{accountID}/trades/{tradeID}", h.HandleDelete)
	r.Post("/accounts/{accountID}/withdrawals", h.HandleWithdrawal)
	r.Get("/accounts/{accountID}/summary", h.HandleSummary)
}
