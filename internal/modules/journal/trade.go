// Package journal manages the trade records of an account.
package journal

import (
	"fmt"
	"strings"
	"time"
)

// Position is the direction of a logged trade
type Position string

const (
	PositionBuy  Position = "buy"
	PositionSell Position = "sell"
	// PositionWithdrawal marks a cash-withdrawal ledger entry
	PositionWithdrawal Position = "wd"
)

// WithdrawalPair is the sentinel pair value for withdrawal records.
// Withdrawals are excluded from all trading statistics but affect the
// account balance and the equity curve.
const WithdrawalPair = "WITHDRAWAL"

// WithdrawalStrategy is the fixed strategy label stored on withdrawal records
const WithdrawalStrategy = "Penarikan Dana"

// Trade is one logged position entry, or a withdrawal marker.
// Seq is the store-assigned insertion sequence; it breaks ordering ties
// between trades created within the same second.
type Trade struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Seq       int64     `json:"-"`
	Pair      string    `json:"pair"`
	LotSize   float64   `json:"lotSize"`
	Strategy  string    `json:"strategy"`
	Position  Position  `json:"position"`
	PL        float64   `json:"pl"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsWithdrawal reports whether the record is a cash withdrawal rather than
// a market position.
func (t *Trade) IsWithdrawal() bool {
	return t.Pair == WithdrawalPair
}

// Validate checks trade fields before persistence
func (t *Trade) Validate() error {
	if strings.TrimSpace(t.Pair) == "" {
		return fmt.Errorf("pair must not be empty")
	}
	if t.LotSize < 0 {
		return fmt.Errorf("lot size must not be negative, got %f", t.LotSize)
	}

	switch t.Position {
	case PositionBuy, PositionSell:
		if t.IsWithdrawal() {
			return fmt.Errorf("withdrawal records must use position %q", PositionWithdrawal)
		}
	case PositionWithdrawal:
		if !t.IsWithdrawal() {
			return fmt.Errorf("position %q is reserved for withdrawal records", PositionWithdrawal)
		}
		if t.PL > 0 {
			return fmt.Errorf("withdrawal P/L must not be positive, got %f", t.PL)
		}
	default:
		return fmt.Errorf("invalid position %q", t.Position)
	}

	return nil
}

// Summary holds the account-level performance metrics shown on the dashboard
type Summary struct {
	TotalPL          float64 `json:"totalPL"`
	CurrentBalance   float64 `json:"currentBalance"`
	WinRate          float64 `json:"winRate"`
	ProfitPercentage float64 `json:"profitPercentage"`
	TotalTrades      int     `json:"totalTrades"`
}
