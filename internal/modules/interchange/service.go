package interchange

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/database"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// Service maps between the CSV format and stored trade records
type Service struct {
	db        *sql.DB
	tradeRepo *journal.Repository
	log       zerolog.Logger
}

// NewService creates a new interchange service
func NewService(db *sql.DB, tradeRepo *journal.Repository, log zerolog.Logger) *Service {
	return &Service{
		db:        db,
		tradeRepo: tradeRepo,
		log:       log.With().Str("service", "interchange").Logger(),
	}
}

// ImportResult reports the outcome of a CSV import
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Import parses a CSV blob and stores each row as a trade record of the
// given account. Rows that do not yield a valid trade (no symbol, negative
// volume) are skipped and counted rather than aborting the whole import.
// Accepted rows are written in one transaction so a crash mid-import never
// leaves a half-loaded journal.
func (s *Service) Import(accountID, csvText string) (*ImportResult, error) {
	records := Parse(csvText)

	result := &ImportResult{}
	err := database.WithTransaction(s.db, func(tx *sql.Tx) error {
		for _, record := range records {
			trade := recordToTrade(accountID, record)
			if _, err := s.tradeRepo.CreateTx(tx, trade); err != nil {
				s.log.Warn().Err(err).Str("account", accountID).Msg("Skipping unimportable row")
				result.Skipped++
				continue
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import trades: %w", err)
	}

	s.log.Info().
		Str("account", accountID).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("CSV import finished")

	return result, nil
}

// Export renders all trades of an account as CSV text in schema order
func (s *Service) Export(accountID string) (string, error) {
	trades, err := s.tradeRepo.ListByAccount(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to export trades: %w", err)
	}

	records := make([]Record, len(trades))
	for i, t := range trades {
		records[i] = tradeToRecord(t)
	}

	return Generate(records, Schema), nil
}

// recordToTrade maps the schema columns onto a trade record. The stored
// journal is typed, so unlike the raw document store the import picks the
// columns it understands and defaults the rest.
func recordToTrade(accountID string, record Record) journal.Trade {
	trade := journal.Trade{
		AccountID: accountID,
		Pair:      stringField(record, "symbol"),
		LotSize:   numberField(record, "volume"),
		PL:        numberField(record, "profit"),
		Strategy:  stringField(record, "strategy"),
		Notes:     stringField(record, "notes"),
	}

	switch strings.ToLower(stringField(record, "type")) {
	case "sell":
		trade.Position = journal.PositionSell
	default:
		trade.Position = journal.PositionBuy
	}

	if trade.Strategy == "" {
		trade.Strategy = "Imported"
	}

	return trade
}

// tradeToRecord maps a trade onto the schema columns. Columns without a
// stored counterpart (prices, stops, commission, swap) stay absent and
// generate as empty fields.
func tradeToRecord(t journal.Trade) Record {
	return Record{
		"time":     t.CreatedAt.UTC().Format(time.RFC3339),
		"position": t.ID,
		"symbol":   t.Pair,
		"type":     string(t.Position),
		"volume":   t.LotSize,
		"profit":   t.PL,
	}
}

func stringField(record Record, column string) string {
	if value, ok := record[column]; ok {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func numberField(record Record, column string) float64 {
	if value, ok := record[column]; ok {
		if f, ok := value.(float64); ok {
			return f
		}
	}
	return 0
}
