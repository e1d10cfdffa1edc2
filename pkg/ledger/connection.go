// Package ledger provides the SQLite storage engine for the append-only
// journal: schema management, the transactional write path and the read
// queries.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// busyTimeoutMS bounds how long a statement waits on a locked database file
// before failing with ErrBusy.
const busyTimeoutMS = 5000

// Connection manages the SQLite database file backing a ledger.
type Connection struct {
	db     *sql.DB
	dbPath string
}

// Initialize creates a new database file with the ledger schema and
// immutability triggers. It fails with ErrAlreadyExists if the file exists
// and ErrMissingFolder if the containing directory does not; it never
// creates intermediate directories and never overwrites existing data.
func Initialize(dbPath string) (*Connection, error) {
	if _, err := os.Stat(dbPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, dbPath)
	}

	dir := filepath.Dir(dbPath)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingFolder, dir)
	}

	conn, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := initializeSchema(conn); err != nil {
		conn.Close()
		os.Remove(dbPath)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}

// Open opens an existing ledger database. It fails with ErrNotInitialized
// when no file exists at the path.
func Open(dbPath string) (*Connection, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, dbPath)
	}

	return open(dbPath)
}

func open(dbPath string) (*Connection, error) {
	return openTimeout(dbPath, busyTimeoutMS)
}

func openTimeout(dbPath string, timeoutMS int) (*Connection, error) {
	// Connection string enables foreign keys and a bounded lock wait.
	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", dbPath, timeoutMS)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", mapSQLiteError(err))
	}

	return &Connection{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (c *Connection) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (c *Connection) Path() string {
	return c.dbPath
}

// Query executes a query that returns rows.
func (c *Connection) Query(query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := c.db.Query(query, args...)
	return rows, mapSQLiteError(err)
}

// Row defers a single-row query's error to Scan, like sql.Row, while
// keeping Scan's error inside the same driver-error mapping as Query and
// Exec. sql.ErrNoRows passes through unchanged.
type Row struct {
	row *sql.Row
}

// Scan copies the matched row's columns into dest.
func (r *Row) Scan(dest ...interface{}) error {
	return mapSQLiteError(r.row.Scan(dest...))
}

// QueryRow executes a query that is expected to return at most one row.
func (c *Connection) QueryRow(query string, args ...interface{}) *Row {
	return &Row{row: c.db.QueryRow(query, args...)}
}

// Exec executes a statement that doesn't return rows.
func (c *Connection) Exec(query string, args ...interface{}) (sql.Result, error) {
	res, err := c.db.Exec(query, args...)
	return res, mapSQLiteError(err)
}

// Transaction executes a function within a transaction.
// If the function returns an error, the transaction is rolled back and no
// partial state is visible. Otherwise, the transaction is committed.
func (c *Connection) Transaction(fn func(*sql.Tx) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapSQLiteError(err))
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return mapSQLiteError(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapSQLiteError(err))
	}

	return nil
}
