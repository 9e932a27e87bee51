package rss2json

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://example.com/feed.rss", r.URL.Query().Get("rss_url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"items": [
				{
					"title": "EUR rallies",
					"link": "https://example.com/a",
					"description": "<p>The euro <b>surged</b>. Analysts cheered. More text follows here.</p>",
					"pubDate": "2024-03-01 12:30:00"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://example.com/feed.rss", "example", testLogger())

	items, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "EUR rallies", item.Title)
	assert.Equal(t, "https://example.com/a", item.Link)
	assert.Equal(t, "example", item.Source)
	// HTML stripped, clipped to two sentences
	assert.Equal(t, "The euro surged. Analysts cheered.", item.Description)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), item.PubDate)
}

func TestFetch_RFC1123PubDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","items":[{"title":"t","pubDate":"Fri, 01 Mar 2024 12:30:00 +0000"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://example.com/feed.rss", "example", testLogger())

	items, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].PubDate.Equal(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)))
}

func TestFetch_BridgeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","items":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://example.com/feed.rss", "example", testLogger())

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `status "error"`)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://example.com/feed.rss", "example", testLogger())

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCleanDescription(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"strips tags", "<p>Hello world</p>", "Hello world."},
		{"clips to two sentences", "One. Two. Three. Four.", "One. Two."},
		{"short text untouched", "Just one", "Just one."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanDescription(tc.in))
		})
	}
}
