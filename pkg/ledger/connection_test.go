package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalbricklayer/bozo/pkg/chart"
)

func TestQueryRowMapsDriverErrors(t *testing.T) {
	store, conn := newTestStore(t)

	entryID, err := store.RecordEntry(transfer(t, "Keep me", "10.00", "cash", "income"))
	require.NoError(t, err)

	// A trigger rejection surfacing through Row.Scan must carry the same
	// error kind as one surfacing through Exec.
	err = conn.QueryRow(`UPDATE journal_entries SET description = 'tampered' WHERE id = ?`, entryID).Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutableRecord)

	// sql.ErrNoRows is not a driver error and passes through untouched.
	var id int64
	err = conn.QueryRow(`SELECT id FROM accounts WHERE name = ?`, "ghost").Scan(&id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWriteAgainstHeldLockIsBusy(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.bozo")
	conn, err := Initialize(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Hold an open write transaction on the first connection so a second
	// writer exhausts its busy timeout.
	tx, err := conn.db.Begin()
	require.NoError(t, err)
	_, err = tx.Exec(`INSERT INTO accounts (name, type) VALUES ('held', 'asset')`)
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })

	// A short timeout keeps the contention observable without the 5s wait.
	blocked, err := openTimeout(dbPath, 50)
	require.NoError(t, err)
	t.Cleanup(func() { blocked.Close() })

	_, err = blocked.Exec(`INSERT INTO accounts (name, type) VALUES ('blocked', 'asset')`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBusy)

	// The transactional write path reports the same kind.
	blockedStore := NewStore(blocked, chart.NewMapper())
	_, err = blockedStore.RecordEntry(transfer(t, "Blocked", "1.00", "cash", "income"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBusy)
}
