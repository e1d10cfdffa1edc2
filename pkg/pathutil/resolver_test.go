package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDatabasePrecedence(t *testing.T) {
	// Explicit flag beats the configured default.
	path, err := ResolveDatabase("/flag.bozo", "/env.bozo")
	require.NoError(t, err)
	assert.Equal(t, "/flag.bozo", path)

	path, err = ResolveDatabase("", "/env.bozo")
	require.NoError(t, err)
	assert.Equal(t, "/env.bozo", path)

	_, err = ResolveDatabase("", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestLedgerFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("books", "ledger.bozo"), LedgerFilePath("books", "ledger"))
}

func TestFileChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.bozo")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.bozo")))
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
