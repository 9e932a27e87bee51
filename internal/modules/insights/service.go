package insights

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/clients/gemini"
	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
	"github.com/jurnalfx/jurnalfx/internal/modules/news"
)

// Generator abstracts the generative-text client
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// Service assembles prompts from journal, account and news data and returns
// the model's text verbatim. Responses may contain HTML fragments; the
// upstream contract leaves rendering to the caller.
type Service struct {
	generator   Generator
	tradeRepo   *journal.Repository
	accountRepo *accounts.Repository
	newsService *news.Service
	log         zerolog.Logger
}

// NewService creates a new insights service
func NewService(generator Generator, tradeRepo *journal.Repository, accountRepo *accounts.Repository, newsService *news.Service, log zerolog.Logger) *Service {
	return &Service{
		generator:   generator,
		tradeRepo:   tradeRepo,
		accountRepo: accountRepo,
		newsService: newsService,
		log:         log.With().Str("service", "insights").Logger(),
	}
}

// Configured reports whether the generative client has credentials
func (s *Service) Configured() bool {
	return s.generator.Configured()
}

// AnalyzeTrade reviews a single trade's notes in the account's currency
func (s *Service) AnalyzeTrade(ctx context.Context, accountID, tradeID string) (string, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return "", err
	}
	trade, err := s.tradeRepo.GetByID(accountID, tradeID)
	if err != nil {
		return "", err
	}

	return s.generate(ctx, TradePrompt(*trade, account.Currency))
}

// AnalyzePerformance reviews the account's full trade history
func (s *Service) AnalyzePerformance(ctx context.Context, accountID string) (string, error) {
	if _, err := s.accountRepo.GetByID(accountID); err != nil {
		return "", err
	}
	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return "", err
	}

	return s.generate(ctx, PerformancePrompt(trades))
}

// AnalyzeRisk sanity-checks a planned position
func (s *Service) AnalyzeRisk(ctx context.Context, params RiskParams) (string, error) {
	return s.generate(ctx, RiskPrompt(params))
}

// AnalyzeMarket summarizes sentiment from the cached headlines restricted
// to the watched pairs.
func (s *Service) AnalyzeMarket(ctx context.Context, watchedPairs []string) (string, error) {
	items := s.newsService.Items(ctx)
	if len(watchedPairs) > 0 {
		items = news.FilterByPairs(items, watchedPairs)
	}
	headlines := news.FormatForPrompt(items, 10)

	return s.generate(ctx, MarketPrompt(watchedPairs, headlines))
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if !s.generator.Configured() {
		return "", gemini.ErrNotConfigured
	}

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate insight: %w", err)
	}
	return text, nil
}
