// Package handlers provides HTTP handlers for the market news API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
	"github.com/jurnalfx/jurnalfx/internal/modules/news"
)

// NewsHandlers contains HTTP handlers for the news API
type NewsHandlers struct {
	service *news.Service
	log     zerolog.Logger
}

// NewNewsHandlers creates a new news handlers instance
func NewNewsHandlers(service *news.Service, log zerolog.Logger) *NewsHandlers {
	return &NewsHandlers{
		service: service,
		log:     log.With().Str("handler", "news").Logger(),
	}
}

// HandleList handles GET /api/news, with optional ?pairs=EUR/USD,GBP/JPY
// filtering and ?group=currency bucketing.
func (h *NewsHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	items := h.service.Items(r.Context())
	items = filterParam(items, r)

	if r.URL.Query().Get("group") == "currency" {
		h.writeJSON(w, http.StatusOK, news.GroupByCurrency(items))
		return
	}

	if items == nil {
		items = []rss2json.Item{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

// HandleHighImpact handles GET /api/news/high-impact
func (h *NewsHandlers) HandleHighImpact(w http.ResponseWriter, r *http.Request) {
	items := news.HighImpact(h.service.Items(r.Context()))
	items = filterParam(items, r)
	if items == nil {
		items = []rss2json.Item{}
	}
	h.writeJSON(w, http.StatusOK, items)
}

// HandleSentiment handles GET /api/news/sentiment
func (h *NewsHandlers) HandleSentiment(w http.ResponseWriter, r *http.Request) {
	items := h.service.Items(r.Context())
	h.writeJSON(w, http.StatusOK, news.MarketSentiment(items))
}

func filterParam(items []rss2json.Item, r *http.Request) []rss2json.Item {
	raw := r.URL.Query().Get("pairs")
	if raw == "" {
		return items
	}
	return news.FilterByPairs(items, strings.Split(raw, ","))
}

func (h *NewsHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
