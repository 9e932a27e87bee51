package news

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
)

type fakeFeed struct {
	items   []rss2json.Item
	err     error
	fetches int
}

func (f *fakeFeed) Fetch(ctx context.Context) ([]rss2json.Item, error) {
	f.fetches++
	return f.items, f.err
}

func TestService_ItemsFetchesOnColdCache(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	feed := &fakeFeed{items: []rss2json.Item{{Title: "A"}, {Title: "B"}}}
	svc := NewService(feed, log)

	items := svc.Items(context.Background())

	require.Len(t, items, 2)
	assert.Equal(t, 1, feed.fetches)
	assert.False(t, svc.FetchedAt().IsZero())

	// Second read serves the cache
	svc.Items(context.Background())
	assert.Equal(t, 1, feed.fetches)
}

func TestService_ItemsNilOnColdFetchFailure(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	feed := &fakeFeed{err: errors.New("upstream down")}
	svc := NewService(feed, log)

	assert.Nil(t, svc.Items(context.Background()))
	assert.True(t, svc.FetchedAt().IsZero())
}

func TestService_RefreshReplacesSnapshot(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	feed := &fakeFeed{items: []rss2json.Item{{Title: "old"}}}
	svc := NewService(feed, log)

	require.NoError(t, svc.Refresh(context.Background()))

	feed.items = []rss2json.Item{{Title: "new"}, {Title: "newer"}}
	require.NoError(t, svc.Refresh(context.Background()))

	items := svc.Items(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].Title)
}

func TestService_RefreshFailureKeepsStaleSnapshot(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	feed := &fakeFeed{items: []rss2json.Item{{Title: "stale"}}}
	svc := NewService(feed, log)

	require.NoError(t, svc.Refresh(context.Background()))

	feed.err = errors.New("upstream down")
	assert.Error(t, svc.Refresh(context.Background()))

	items := svc.Items(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "stale", items[0].Title)
}

func TestRefreshJob(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	feed := &fakeFeed{items: []rss2json.Item{{Title: "A"}}}
	svc := NewService(feed, log)

	job := NewRefreshJob(svc)

	assert.Equal(t, "news-refresh", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, 1, feed.fetches)
}
