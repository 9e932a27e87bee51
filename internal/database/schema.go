package database

// Schema is the single source of truth for the journal database layout.
//
// Trades carry an autoincrement sequence besides their opaque id: created_at
// has second resolution, so the sequence is the deterministic tie-break for
// records written within the same second.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	currency TEXT NOT NULL,
	start_balance REAL NOT NULL CHECK (start_balance >= 0),
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS active_account (
	slot INTEGER PRIMARY KEY CHECK (slot = 1),
	account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	pair TEXT NOT NULL,
	lot_size REAL NOT NULL CHECK (lot_size >= 0),
	strategy TEXT NOT NULL,
	position TEXT NOT NULL CHECK (position IN ('buy', 'sell', 'wd')),
	pl REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_account_created ON trades(account_id, created_at, seq);
`
