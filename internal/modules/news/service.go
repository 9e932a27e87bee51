// Package news serves the market news feed: fetching, caching, keyword
// filtering and the simple headline-based sentiment gauge.
package news

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
)

// Feed abstracts the upstream feed client
type Feed interface {
	Fetch(ctx context.Context) ([]rss2json.Item, error)
}

// Service caches the latest feed snapshot. A cron job calls Refresh on a
// schedule; requests read the cached copy and trigger a lazy first fetch
// when the cache is still empty.
type Service struct {
	feed Feed
	log  zerolog.Logger

	mu        sync.RWMutex
	items     []rss2json.Item
	fetchedAt time.Time
}

// NewService creates a new news service
func NewService(feed Feed, log zerolog.Logger) *Service {
	return &Service{
		feed: feed,
		log:  log.With().Str("service", "news").Logger(),
	}
}

// Refresh replaces the cached snapshot with a fresh fetch
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.feed.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh news: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.log.Info().Int("items", len(items)).Msg("News cache refreshed")
	return nil
}

// Items returns the cached news snapshot, fetching once when the cache is
// still cold. An empty slice is a valid result; feed failures after a
// successful fetch keep serving the stale snapshot.
func (s *Service) Items(ctx context.Context) []rss2json.Item {
	s.mu.RLock()
	cold := s.fetchedAt.IsZero()
	items := s.items
	s.mu.RUnlock()

	if cold {
		if err := s.Refresh(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Initial news fetch failed")
			return nil
		}
		s.mu.RLock()
		items = s.items
		s.mu.RUnlock()
	}

	return items
}

// FetchedAt returns the time of the last successful refresh
func (s *Service) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}
