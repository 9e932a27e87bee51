package accounts

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when an account does not exist
var ErrNotFound = errors.New("account not found")

const accountColumns = `id, name, currency, start_balance, created_at`

// Repository handles account database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new account repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "accounts").Logger(),
	}
}

// Create inserts a new account, assigning its id and creation time
func (r *Repository) Create(account Account) (*Account, error) {
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	account.ID = uuid.NewString()
	account.Currency = strings.ToUpper(account.Currency)
	account.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := r.db.Exec(`
		INSERT INTO accounts (id, name, currency, start_balance, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		account.ID,
		strings.TrimSpace(account.Name),
		account.Currency,
		account.StartBalance,
		account.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	r.log.Info().
		Str("id", account.ID).
		Str("name", account.Name).
		Str("currency", account.Currency).
		Msg("Account created")

	return &account, nil
}

// GetByID retrieves a single account
func (r *Repository) GetByID(id string) (*Account, error) {
	row := r.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// List returns all accounts ordered by name
func (r *Repository) List() ([]Account, error) {
	rows, err := r.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		out = append(out, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return out, nil
}

// Delete removes an account. Its trades and any active-account selection
// follow via ON DELETE CASCADE.
func (r *Repository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info().Str("id", id).Msg("Account deleted")
	return nil
}

// SetActive marks an account as the active one, replacing any previous selection
func (r *Repository) SetActive(id string) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	_, err := r.db.Exec(`
		INSERT INTO active_account (slot, account_id) VALUES (1, ?)
		ON CONFLICT(slot) DO UPDATE SET account_id = excluded.account_id`, id)
	if err != nil {
		return fmt.Errorf("failed to set active account: %w", err)
	}

	r.log.Info().Str("id", id).Msg("Active account changed")
	return nil
}

// GetActive returns the currently active account, or ErrNotFound when no
// account has been activated yet.
func (r *Repository) GetActive() (*Account, error) {
	row := r.db.QueryRow(`
		SELECT ` + accountColumns + `
		FROM accounts
		JOIN active_account ON active_account.account_id = accounts.id
		WHERE active_account.slot = 1`)

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active account: %w", err)
	}
	return &account, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAccount(row scannable) (Account, error) {
	var account Account
	var createdAt int64

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Currency,
		&account.StartBalance,
		&createdAt,
	)
	if err != nil {
		return Account{}, err
	}

	account.CreatedAt = time.Unix(createdAt, 0).UTC()
	return account, nil
}
