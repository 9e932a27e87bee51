// Package accounts manages trading accounts and the active-account selection.
package accounts

import (
	"fmt"
	"strings"
	"time"
)

// Account owns a collection of trade records. Exactly one account may be
// active at a time; all journal queries are scoped to a single account.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Currency     string    `json:"currency"` // ISO 4217 code, e.g. "USD"
	StartBalance float64   `json:"startBalance"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks account fields before persistence
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name must not be empty")
	}
	if len(a.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code, got %q", a.Currency)
	}
	if a.StartBalance < 0 {
		return fmt.Errorf("start balance must not be negative, got %f", a.StartBalance)
	}
	return nil
}
