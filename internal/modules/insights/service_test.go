package insights

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurnalfx/jurnalfx/internal/clients/gemini"
	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
	"github.com/jurnalfx/jurnalfx/internal/database"
	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
	"github.com/jurnalfx/jurnalfx/internal/modules/news"
)

type fakeGenerator struct {
	configured bool
	response   string
	prompts    []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, nil
}

func (f *fakeGenerator) Configured() bool { return f.configured }

type fakeFeed struct {
	items []rss2json.Item
}

func (f *fakeFeed) Fetch(ctx context.Context) ([]rss2json.Item, error) {
	return f.items, nil
}

func newTestService(t *testing.T, gen Generator) (*Service, *journal.Repository, string) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(database.Schema)
	require.NoError(t, err)

	log := zerolog.New(nil).Level(zerolog.Disabled)
	accountRepo := accounts.NewRepository(db, log)
	tradeRepo := journal.NewRepository(db, log)
	newsService := news.NewService(&fakeFeed{items: []rss2json.Item{
		{Title: "Fed signals rate cut", Description: "USD yields lower."},
	}}, log)

	account, err := accountRepo.Create(accounts.Account{Name: "Test", Currency: "USD", StartBalance: 1000})
	require.NoError(t, err)

	return NewService(gen, tradeRepo, accountRepo, newsService, log), tradeRepo, account.ID
}

func TestAnalyzeTrade(t *testing.T) {
	gen := &fakeGenerator{configured: true, response: "<p>Solid discipline.</p>"}
	svc, tradeRepo, accountID := newTestService(t, gen)

	created, err := tradeRepo.Create(journal.Trade{
		AccountID: accountID,
		Pair:      "EUR/USD",
		Position:  journal.PositionBuy,
		Strategy:  "Breakout",
		PL:        42.5,
		Notes:     "entered on retest",
	})
	require.NoError(t, err)

	text, err := svc.AnalyzeTrade(context.Background(), accountID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>Solid discipline.</p>", text)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "EUR/USD")
	assert.Contains(t, gen.prompts[0], "42.50 USD")
	assert.Contains(t, gen.prompts[0], "entered on retest")
}

func TestAnalyzeTrade_UnknownTrade(t *testing.T) {
	gen := &fakeGenerator{configured: true}
	svc, _, accountID := newTestService(t, gen)

	_, err := svc.AnalyzeTrade(context.Background(), accountID, "missing")
	assert.ErrorIs(t, err, journal.ErrNotFound)
	assert.Empty(t, gen.prompts)
}

func TestAnalyzePerformance(t *testing.T) {
	gen := &fakeGenerator{configured: true, response: "<ul><li>ok</li></ul>"}
	svc, tradeRepo, accountID := newTestService(t, gen)

	_, err := tradeRepo.Create(journal.Trade{
		AccountID: accountID, Pair: "GBP/JPY", Position: journal.PositionSell, Strategy: "Swing", PL: -10,
	})
	require.NoError(t, err)

	_, err = svc.AnalyzePerformance(context.Background(), accountID)
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "GBP/JPY")
	assert.Contains(t, gen.prompts[0], "mentor trading")
}

func TestAnalyzePerformance_UnknownAccount(t *testing.T) {
	gen := &fakeGenerator{configured: true}
	svc, _, _ := newTestService(t, gen)

	_, err := svc.AnalyzePerformance(context.Background(), "missing")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestAnalyzeRisk(t *testing.T) {
	gen := &fakeGenerator{configured: true, response: "ok"}
	svc, _, _ := newTestService(t, gen)

	_, err := svc.AnalyzeRisk(context.Background(), RiskParams{
		AccountCurrency: "USD",
		Balance:         10000,
		RiskPercentage:  2,
		StopLoss:        20,
		LotSize:         1,
		Pair:            "EUR/USD",
	})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "EUR/USD")
	assert.Contains(t, gen.prompts[0], "sanity check")
	assert.Contains(t, gen.prompts[0], "layering")
}

func TestAnalyzeMarket(t *testing.T) {
	gen := &fakeGenerator{configured: true, response: "ok"}
	svc, _, _ := newTestService(t, gen)

	_, err := svc.AnalyzeMarket(context.Background(), []string{"EUR/USD"})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Fed signals rate cut")
	assert.Contains(t, gen.prompts[0], "EUR/USD")
}

func TestNotConfigured(t *testing.T) {
	gen := &fakeGenerator{configured: false}
	svc, _, _ := newTestService(t, gen)

	assert.False(t, svc.Configured())

	_, err := svc.AnalyzeRisk(context.Background(), RiskParams{})
	assert.ErrorIs(t, err, gemini.ErrNotConfigured)
	assert.Empty(t, gen.prompts)
}
