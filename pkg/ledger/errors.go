package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrAlreadyExists indicates that init targeted a path where a database
	// file already exists. The existing file is never overwritten.
	ErrAlreadyExists = errors.New("database already exists")

	// ErrMissingFolder indicates that init targeted a folder that does not
	// exist. Intermediate directories are never created silently.
	ErrMissingFolder = errors.New("folder does not exist")

	// ErrNotInitialized indicates that no database file exists at the
	// resolved path.
	ErrNotInitialized = errors.New("database not initialized")

	// ErrBusy indicates lock contention on the database file. Busy errors
	// are the only retryable kind; all others are permanent for the input.
	ErrBusy = errors.New("database is busy")

	// ErrImmutableRecord indicates an update or delete was rejected by the
	// append-only triggers. Unreachable through the public API.
	ErrImmutableRecord = errors.New("ledger records are immutable")

	// ErrAccountExists indicates an explicit create of an account name that
	// is already present in the chart of accounts.
	ErrAccountExists = errors.New("account already exists")
)

// mapSQLiteError translates driver-level failures into the ledger error
// kinds callers can act on.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return fmt.Errorf("%w: %v", ErrBusy, err)
	case sqlite3.ErrConstraint:
		if strings.Contains(err.Error(), "immutable") {
			return fmt.Errorf("%w: %v", ErrImmutableRecord, err)
		}
	}

	return err
}
