package analytics

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// Performers pairs the best and worst entry of both grouping dimensions.
// A dimension with no trades has nil entries.
type Performers struct {
	BestPair      *Performer `json:"bestPair"`
	WorstPair     *Performer `json:"worstPair"`
	BestStrategy  *Performer `json:"bestStrategy"`
	WorstStrategy *Performer `json:"worstStrategy"`
}

// Service fetches a point-in-time trade snapshot and feeds it to the pure
// aggregation functions. It owns no state; every call re-reads the store.
type Service struct {
	tradeRepo   *journal.Repository
	accountRepo *accounts.Repository
	log         zerolog.Logger
}

// NewService creates a new analytics service
func NewService(tradeRepo *journal.Repository, accountRepo *accounts.Repository, log zerolog.Logger) *Service {
	return &Service{
		tradeRepo:   tradeRepo,
		accountRepo: accountRepo,
		log:         log.With().Str("service", "analytics").Logger(),
	}
}

// EquityCurve returns the equity curve for an account
func (s *Service) EquityCurve(accountID string) ([]EquityPoint, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute equity curve: %w", err)
	}

	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute equity curve: %w", err)
	}

	return EquityCurve(trades, account.StartBalance), nil
}

// PairPerformance returns per-pair statistics for an account
func (s *Service) PairPerformance(accountID string) (map[string]Stats, error) {
	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute pair performance: %w", err)
	}
	return ByPair(trades), nil
}

// StrategyPerformance returns per-strategy statistics for an account
func (s *Service) StrategyPerformance(accountID string) (map[string]Stats, error) {
	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute strategy performance: %w", err)
	}
	return ByStrategy(trades), nil
}

// Performers returns the best and worst pair and strategy for an account
func (s *Service) Performers(accountID string) (*Performers, error) {
	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute performers: %w", err)
	}

	pairs := ByPair(trades)
	strategies := ByStrategy(trades)

	return &Performers{
		BestPair:      Best(pairs),
		WorstPair:     Worst(pairs),
		BestStrategy:  Best(strategies),
		WorstStrategy: Worst(strategies),
	}, nil
}
