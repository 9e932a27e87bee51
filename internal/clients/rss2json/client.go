// Package rss2json provides a client for the rss-to-json bridge API used
// to read RSS news feeds as JSON.
package rss2json

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>?`)

// Item is one news entry from the feed
type Item struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
	Source      string    `json:"source"`
}

// Client fetches an RSS feed through the rss-to-json bridge
type Client struct {
	bridgeURL string
	feedURL   string
	source    string
	client    *http.Client
	log       zerolog.Logger
}

// NewClient creates a new rss-to-json client for one upstream feed
func NewClient(bridgeURL, feedURL, source string, log zerolog.Logger) *Client {
	return &Client{
		bridgeURL: bridgeURL,
		feedURL:   feedURL,
		source:    source,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log.With().Str("client", "rss2json").Logger(),
	}
}

// bridgeResponse is the shape returned by the rss-to-json API
type bridgeResponse struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
	} `json:"items"`
}

// Fetch retrieves the current feed items
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	reqURL := fmt.Sprintf("%s?rss_url=%s", c.bridgeURL, url.QueryEscape(c.feedURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed API returned status %d", resp.StatusCode)
	}

	var result bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse feed response: %w", err)
	}

	if result.Status != "ok" {
		return nil, fmt.Errorf("feed API reported status %q", result.Status)
	}

	items := make([]Item, 0, len(result.Items))
	for _, raw := range result.Items {
		item := Item{
			Title:       raw.Title,
			Link:        raw.Link,
			Description: cleanDescription(raw.Description),
			Source:      c.source,
		}
		// The bridge emits "2006-01-02 15:04:05"; fall back to RFC1123 feeds
		if t, err := time.Parse("2006-01-02 15:04:05", raw.PubDate); err == nil {
			item.PubDate = t
		} else if t, err := time.Parse(time.RFC1123Z, raw.PubDate); err == nil {
			item.PubDate = t
		}
		items = append(items, item)
	}

	c.log.Debug().Int("items", len(items)).Msg("Fetched feed")
	return items, nil
}

// cleanDescription strips HTML tags and clips the text to its first two
// sentences, matching how the dashboard renders news blurbs.
func cleanDescription(description string) string {
	clean := htmlTagPattern.ReplaceAllString(description, "")
	sentences := strings.Split(clean, ".")
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return strings.Join(sentences, ".") + "."
}
