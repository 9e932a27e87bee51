package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a trade does not exist
var ErrNotFound = errors.New("trade not found")

// tradeColumns is the list of columns for the trades table.
// Column order must match scanTrade.
const tradeColumns = `seq, id, account_id, pair, lot_size, strategy, position, pl, notes, created_at`

// Repository handles trade database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new trade repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "journal").Logger(),
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Create inserts a new trade record. The store assigns the id and the
// creation timestamp; callers never supply them.
func (r *Repository) Create(trade Trade) (*Trade, error) {
	return r.create(r.db, trade)
}

// CreateTx inserts a trade within an existing transaction. Bulk writers
// use it so a batch of rows commits or rolls back as one unit.
func (r *Repository) CreateTx(tx *sql.Tx, trade Trade) (*Trade, error) {
	return r.create(tx, trade)
}

func (r *Repository) create(ex execer, trade Trade) (*Trade, error) {
	if err := trade.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	trade.ID = uuid.NewString()
	trade.CreatedAt = time.Now().UTC().Truncate(time.Second)
	trade.Pair = strings.ToUpper(strings.TrimSpace(trade.Pair))

	res, err := ex.Exec(`
		INSERT INTO trades (id, account_id, pair, lot_size, strategy, position, pl, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID,
		trade.AccountID,
		trade.Pair,
		trade.LotSize,
		trade.Strategy,
		string(trade.Position),
		trade.PL,
		trade.Notes,
		trade.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	if seq, err := res.LastInsertId(); err == nil {
		trade.Seq = seq
	}

	r.log.Info().
		Str("id", trade.ID).
		Str("account", trade.AccountID).
		Str("pair", trade.Pair).
		Float64("pl", trade.PL).
		Msg("Trade created")

	return &trade, nil
}

// GetByID retrieves a single trade scoped to an account
func (r *Repository) GetByID(accountID, id string) (*Trade, error) {
	row := r.db.QueryRow(
		"SELECT "+tradeColumns+" FROM trades WHERE account_id = ? AND id = ?",
		accountID, id,
	)

	trade, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return &trade, nil
}

// ListByAccount returns all trades of an account ordered ascending by
// creation time, with the insertion sequence as deterministic tie-break.
func (r *Repository) ListByAccount(accountID string) ([]Trade, error) {
	rows, err := r.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE account_id = ?
		ORDER BY created_at ASC, seq ASC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		out = append(out, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return out, nil
}

// Update modifies the user-editable fields of a trade. The id, account and
// creation timestamp are immutable.
func (r *Repository) Update(accountID, id string, trade Trade) error {
	if err := trade.Validate(); err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	res, err := r.db.Exec(`
		UPDATE trades
		SET pair = ?, lot_size = ?, strategy = ?, position = ?, pl = ?, notes = ?
		WHERE account_id = ? AND id = ?`,
		strings.ToUpper(strings.TrimSpace(trade.Pair)),
		trade.LotSize,
		trade.Strategy,
		string(trade.Position),
		trade.PL,
		trade.Notes,
		accountID,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info().Str("id", id).Msg("Trade updated")
	return nil
}

// Delete removes a trade
func (r *Repository) Delete(accountID, id string) error {
	res, err := r.db.Exec("DELETE FROM trades WHERE account_id = ? AND id = ?", accountID, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info().Str("id", id).Msg("Trade deleted")
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTrade(row scannable) (Trade, error) {
	var trade Trade
	var position string
	var createdAt int64

	err := row.Scan(
		&trade.Seq,
		&trade.ID,
		&trade.AccountID,
		&trade.Pair,
		&trade.LotSize,
		&trade.Strategy,
		&position,
		&trade.PL,
		&trade.Notes,
		&createdAt,
	)
	if err != nil {
		return Trade{}, err
	}

	trade.Position = Position(position)
	trade.CreatedAt = time.Unix(createdAt, 0).UTC()
	return trade, nil
}
