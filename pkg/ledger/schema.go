package ledger

// Schema defines the SQL statements to create the ledger tables.
//
// Amounts are stored as canonical decimal text, never as binary floats.
// The journal is append-only: the BEFORE UPDATE/DELETE triggers reject any
// mutation of journal_entries and line_items at the database level, so the
// audit guarantee holds even for clients that bypass this package.
const Schema = `
-- Chart of accounts
-- Rows are created implicitly the first time a name is referenced by a
-- recorded entry; they are never updated or deleted.
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    type TEXT NOT NULL CHECK (type IN ('asset','liability','income','expense','capital','drawings')),
    parent_id INTEGER REFERENCES accounts(id)
);

-- Journal entries
CREATE TABLE IF NOT EXISTS journal_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    description TEXT NOT NULL
);

-- Line items
-- Each row belongs to exactly one journal entry. The side column carries the
-- direction; amounts are always positive.
CREATE TABLE IF NOT EXISTS line_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_id INTEGER NOT NULL REFERENCES journal_entries(id),
    account_id INTEGER NOT NULL REFERENCES accounts(id),
    side TEXT NOT NULL CHECK (side IN ('debit','credit')),
    amount TEXT NOT NULL CHECK (CAST(amount AS NUMERIC) > 0)
);

CREATE INDEX IF NOT EXISTS idx_line_items_entry
    ON line_items(entry_id);

CREATE INDEX IF NOT EXISTS idx_line_items_account
    ON line_items(account_id);

-- Immutability triggers for journal_entries
CREATE TRIGGER IF NOT EXISTS journal_entries_no_update
BEFORE UPDATE ON journal_entries
BEGIN
    SELECT RAISE(ABORT, 'journal entries are immutable');
END;

CREATE TRIGGER IF NOT EXISTS journal_entries_no_delete
BEFORE DELETE ON journal_entries
BEGIN
    SELECT RAISE(ABORT, 'journal entries are immutable');
END;

-- Immutability triggers for line_items
CREATE TRIGGER IF NOT EXISTS line_items_no_update
BEFORE UPDATE ON line_items
BEGIN
    SELECT RAISE(ABORT, 'line items are immutable');
END;

CREATE TRIGGER IF NOT EXISTS line_items_no_delete
BEFORE DELETE ON line_items
BEGIN
    SELECT RAISE(ABORT, 'line items are immutable');
END;
`

// initializeSchema creates the tables, indexes and triggers.
func initializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
