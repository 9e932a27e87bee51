package journal

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
)

// Service provides journal operations that go beyond plain record CRUD
type Service struct {
	repo        *Repository
	accountRepo *accounts.Repository
	log         zerolog.Logger
}

// NewService creates a new journal service
func NewService(repo *Repository, accountRepo *accounts.Repository, log zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		log:         log.With().Str("service", "journal").Logger(),
	}
}

// RecordWithdrawal stores a cash withdrawal as a sentinel trade record.
// The withdrawn amount is kept as a negative P/L so that balance arithmetic
// needs no special casing.
func (s *Service) RecordWithdrawal(accountID string, amount float64) (*Trade, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %f", amount)
	}

	trade := Trade{
		AccountID: accountID,
		Pair:      WithdrawalPair,
		LotSize:   0,
		Strategy:  WithdrawalStrategy,
		Position:  PositionWithdrawal,
		PL:        -amount,
		Notes:     fmt.Sprintf("Penarikan sejumlah %.2f", amount),
	}

	created, err := s.repo.Create(trade)
	if err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	s.log.Info().
		Str("account", accountID).
		Float64("amount", amount).
		Msg("Withdrawal recorded")

	return created, nil
}

// Summary computes the account-level dashboard metrics.
//
// TotalPL sums every record including withdrawals; the win rate is computed
// over actual trades only. A zero start balance yields a profit percentage
// of 0 rather than a division error, since this is a display metric.
func (s *Service) Summary(accountID string) (*Summary, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	trades, err := s.repo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	var totalPL float64
	var actual, wins int
	for _, t := range trades {
		totalPL += t.PL
		if t.IsWithdrawal() {
			continue
		}
		actual++
		if t.PL > 0 {
			wins++
		}
	}

	summary := &Summary{
		TotalPL:        totalPL,
		CurrentBalance: account.StartBalance + totalPL,
		TotalTrades:    actual,
	}
	if actual > 0 {
		summary.WinRate = float64(wins) / float64(actual) * 100
	}
	if account.StartBalance > 0 {
		summary.ProfitPercentage = totalPL / account.StartBalance * 100
	}

	return summary, nil
}
