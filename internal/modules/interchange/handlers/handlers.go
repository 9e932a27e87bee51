// Package handlers provides HTTP handlers for CSV import and export.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/interchange"
)

// maxImportSize bounds the accepted upload size (the journal is a small,
// flat record set; 8 MiB is far beyond any realistic export).
const maxImportSize = 8 << 20

// InterchangeHandlers contains HTTP handlers for the CSV interchange API
type InterchangeHandlers struct {
	service *interchange.Service
	log     zerolog.Logger
}

// NewInterchangeHandlers creates a new interchange handlers instance
func NewInterchangeHandlers(service *interchange.Service, log zerolog.Logger) *InterchangeHandlers {
	return &InterchangeHandlers{
		service: service,
		log:     log.With().Str("handler", "interchange").Logger(),
	}
}

// HandleImport handles POST /api/accounts/{accountID}/trades/import.
// The request body is the raw CSV text.
func (h *InterchangeHandlers) HandleImport(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Import(accountID, string(body))
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to import trades")
		http.Error(w, "Failed to import trades", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandleExport handles GET /api/accounts/{accountID}/trades/export
func (h *InterchangeHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	csvText, err := h.service.Export(accountID)
	if err != nil {
		h.log.Error().Err(err).Str("account", accountID).Msg("Failed to export trades")
		http.Error(w, "Failed to export trades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trades.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvText)); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV response")
	}
}

func (h *InterchangeHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
