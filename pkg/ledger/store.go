package ledger

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/digitalbricklayer/bozo/pkg/chart"
	"github.com/digitalbricklayer/bozo/pkg/journal"
)

// timestampFormat is the canonical text encoding of entry timestamps.
const timestampFormat = time.RFC3339Nano

// Store persists journal entries and answers read queries. Recording is the
// sole write path; entries and line items are never updated or deleted.
type Store struct {
	conn  *Connection
	chart *chart.Mapper
}

// NewStore creates a Store over an open connection. Accounts created on
// first use are typed through the chart mapper.
func NewStore(conn *Connection, mapper *chart.Mapper) *Store {
	return &Store{conn: conn, chart: mapper}
}

// AccountBalance holds the per-account totals reported by Summary.
// Net is debits minus credits: expense (debit) accounts report positive,
// income (credit) accounts negative, matching a cash-flow ledger.
type AccountBalance struct {
	Account string
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Net     decimal.Decimal
}

// RecordEntry persists a validated journal entry atomically and returns its
// id. Referenced accounts (and their ancestor paths) are created on first
// use inside the same transaction. On any failure the whole transaction
// rolls back; no partial entry is ever visible.
func (s *Store) RecordEntry(entry *journal.Entry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var entryID int64
	err := s.conn.Transaction(func(tx *sql.Tx) error {
		accountIDs := make(map[string]int64, len(entry.LineItems))
		for _, item := range entry.LineItems {
			if _, ok := accountIDs[item.Account]; ok {
				continue
			}
			id, err := s.ensureAccount(tx, item.Account)
			if err != nil {
				return err
			}
			accountIDs[item.Account] = id
		}

		res, err := tx.Exec(
			`INSERT INTO journal_entries (created_at, description) VALUES (?, ?)`,
			createdAt.UTC().Format(timestampFormat),
			entry.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}

		entryID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get entry id: %w", err)
		}

		for _, item := range entry.LineItems {
			if _, err := tx.Exec(
				`INSERT INTO line_items (entry_id, account_id, side, amount) VALUES (?, ?, ?, ?)`,
				entryID,
				accountIDs[item.Account],
				string(item.Side),
				item.Amount.String(),
			); err != nil {
				return fmt.Errorf("failed to insert line item for account %q amount %s: %w",
					item.Account, item.Amount, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return entryID, nil
}

// ensureAccount resolves an account name to its id, creating the account
// and any missing ancestors inside the current transaction. Names are keyed
// by a unique constraint, so repeated use never duplicates rows.
func (s *Store) ensureAccount(tx *sql.Tx, name string) (int64, error) {
	paths, err := journal.AccountAncestry(name)
	if err != nil {
		return 0, err
	}

	accountType := s.chart.Resolve(name)

	var parentID *int64
	var accountID int64
	for _, path := range paths {
		var id int64
		err := tx.QueryRow(`SELECT id FROM accounts WHERE name = ?`, path).Scan(&id)
		switch {
		case err == sql.ErrNoRows:
			res, err := tx.Exec(
				`INSERT INTO accounts (name, type, parent_id) VALUES (?, ?, ?)`,
				path, accountType, parentID,
			)
			if err != nil {
				return 0, fmt.Errorf("failed to create account %q: %w", path, err)
			}
			id, err = res.LastInsertId()
			if err != nil {
				return 0, fmt.Errorf("failed to get account id: %w", err)
			}
		case err != nil:
			return 0, fmt.Errorf("failed to look up account %q: %w", path, err)
		}

		pid := id
		parentID = &pid
		accountID = id
	}

	return accountID, nil
}

// CreateAccount explicitly creates an account and its ancestor chain.
// Unlike create-on-first-use, the root segment must be mapped to a known
// account type, and creating a name that already exists is an error.
func (s *Store) CreateAccount(name string) (*journal.Account, error) {
	if _, err := journal.SplitAccountPath(name); err != nil {
		return nil, err
	}
	if !s.chart.HasMapping(name) {
		return nil, fmt.Errorf("unknown account type for root %q (expected e.g. assets, liabilities, income, expenses)",
			journal.AccountRoot(name))
	}

	var account *journal.Account
	err := s.conn.Transaction(func(tx *sql.Tx) error {
		var existing int64
		err := tx.QueryRow(`SELECT id FROM accounts WHERE name = ?`, name).Scan(&existing)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrAccountExists, name)
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("failed to look up account %q: %w", name, err)
		}

		id, err := s.ensureAccount(tx, name)
		if err != nil {
			return err
		}

		account = &journal.Account{
			ID:   id,
			Name: name,
			Type: s.chart.Resolve(name),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Entries returns all journal entries with their line items in insertion
// order, read under one transaction for a consistent snapshot.
func (s *Store) Entries() ([]journal.Entry, error) {
	return s.entries(``, nil)
}

// EntriesByAccount returns entries that have at least one line item against
// the named account or any account beneath it.
func (s *Store) EntriesByAccount(account string) ([]journal.Entry, error) {
	where := `
		WHERE e.id IN (
			SELECT li.entry_id FROM line_items li
			JOIN accounts a ON a.id = li.account_id
			WHERE a.name = ? OR a.name LIKE ?
		)`
	return s.entries(where, []interface{}{account, account + journal.PathSeparator + "%"})
}

// EntryByID returns a single entry, or nil if no entry has the id.
func (s *Store) EntryByID(id int64) (*journal.Entry, error) {
	var entry *journal.Entry
	err := s.conn.Transaction(func(tx *sql.Tx) error {
		var e journal.Entry
		var createdAt string
		err := tx.QueryRow(
			`SELECT id, created_at, description FROM journal_entries WHERE id = ?`, id,
		).Scan(&e.ID, &createdAt, &e.Description)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get entry %d: %w", id, err)
		}

		if e.CreatedAt, err = time.Parse(timestampFormat, createdAt); err != nil {
			return fmt.Errorf("failed to parse entry timestamp %q: %w", createdAt, err)
		}
		if e.LineItems, err = loadLineItems(tx, e.ID); err != nil {
			return err
		}

		entry = &e
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Store) entries(where string, args []interface{}) ([]journal.Entry, error) {
	var result []journal.Entry
	err := s.conn.Transaction(func(tx *sql.Tx) error {
		query := `SELECT e.id, e.created_at, e.description FROM journal_entries e` +
			where + ` ORDER BY e.id ASC`

		rows, err := tx.Query(query, args...)
		if err != nil {
			return fmt.Errorf("failed to query entries: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var e journal.Entry
			var createdAt string
			if err := rows.Scan(&e.ID, &createdAt, &e.Description); err != nil {
				return fmt.Errorf("failed to scan entry: %w", err)
			}
			if e.CreatedAt, err = time.Parse(timestampFormat, createdAt); err != nil {
				return fmt.Errorf("failed to parse entry timestamp %q: %w", createdAt, err)
			}
			result = append(result, e)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate entries: %w", err)
		}

		for i := range result {
			if result[i].LineItems, err = loadLineItems(tx, result[i].ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func loadLineItems(tx *sql.Tx, entryID int64) ([]journal.LineItem, error) {
	rows, err := tx.Query(`
		SELECT li.id, a.name, li.side, li.amount
		FROM line_items li
		JOIN accounts a ON a.id = li.account_id
		WHERE li.entry_id = ?
		ORDER BY li.id ASC
	`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for entry %d: %w", entryID, err)
	}
	defer rows.Close()

	var items []journal.LineItem
	for rows.Next() {
		var item journal.LineItem
		var side, amount string
		if err := rows.Scan(&item.ID, &item.Account, &side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		item.Side = journal.Side(side)
		if item.Amount, err = journal.ParseAmount(amount); err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

// Balance returns debits minus credits over the named account and its
// subtree, computed in decimal space from the stored text amounts.
// An account with no activity, including one that does not exist, has a
// zero balance; non-existence is not an error.
func (s *Store) Balance(account string) (decimal.Decimal, error) {
	rows, err := s.conn.Query(`
		SELECT li.side, li.amount
		FROM line_items li
		JOIN accounts a ON a.id = li.account_id
		WHERE a.name = ? OR a.name LIKE ?
	`, account, account+journal.PathSeparator+"%")
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query balance for %q: %w", account, err)
	}
	defer rows.Close()

	net := decimal.Zero
	for rows.Next() {
		var side, amount string
		if err := rows.Scan(&side, &amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan balance row: %w", err)
		}
		value, err := journal.ParseAmount(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
		}
		if journal.Side(side) == journal.Debit {
			net = net.Add(value)
		} else {
			net = net.Sub(value)
		}
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to iterate balance rows: %w", err)
	}

	return net, nil
}

// Summary returns the trial balance: per-account debit and credit totals
// and the debit-minus-credit net, ordered by account name. A non-empty
// scope restricts the report to that account's subtree.
func (s *Store) Summary(scope string) ([]AccountBalance, error) {
	query := `
		SELECT a.name, li.side, li.amount
		FROM line_items li
		JOIN accounts a ON a.id = li.account_id
	`
	var args []interface{}
	if scope != "" {
		query += ` WHERE a.name = ? OR a.name LIKE ?`
		args = append(args, scope, scope+journal.PathSeparator+"%")
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]*AccountBalance)
	for rows.Next() {
		var name, side, amount string
		if err := rows.Scan(&name, &side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		value, err := journal.ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
		}

		balance, ok := totals[name]
		if !ok {
			balance = &AccountBalance{Account: name, Debits: decimal.Zero, Credits: decimal.Zero}
			totals[name] = balance
		}
		if journal.Side(side) == journal.Debit {
			balance.Debits = balance.Debits.Add(value)
		} else {
			balance.Credits = balance.Credits.Add(value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary rows: %w", err)
	}

	result := make([]AccountBalance, 0, len(totals))
	for _, balance := range totals {
		balance.Net = balance.Debits.Sub(balance.Credits)
		result = append(result, *balance)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Account < result[j].Account })

	return result, nil
}

// Accounts returns the chart of accounts ordered by name, optionally
// filtered by account type.
func (s *Store) Accounts(accountType string) ([]journal.Account, error) {
	query := `SELECT id, name, type, parent_id FROM accounts`
	var args []interface{}
	if accountType != "" {
		query += ` WHERE type = ?`
		args = append(args, accountType)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []journal.Account
	for rows.Next() {
		var account journal.Account
		var parentID sql.NullInt64
		if err := rows.Scan(&account.ID, &account.Name, &account.Type, &parentID); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if parentID.Valid {
			account.ParentID = &parentID.Int64
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
