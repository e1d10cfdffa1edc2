package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BOZO_DB", "/tmp/books/ledger.bozo")
	t.Setenv("BOZO_CHART", "/tmp/books/chart.yaml")
	t.Setenv("BOZO_LEDGER_ACCOUNT", "cash")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/books/ledger.bozo", cfg.DatabasePath)
	assert.Equal(t, "/tmp/books/chart.yaml", cfg.ChartPath)
	assert.Equal(t, "cash", cfg.LedgerAccount)
	assert.True(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOZO_DB", "")
	t.Setenv("BOZO_LEDGER_ACCOUNT", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.DatabasePath)
	assert.Equal(t, DefaultLedgerAccount, cfg.LedgerAccount)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(envPath, []byte("BOZO_DB=/books/from-file.bozo\n"), 0644))

	// godotenv does not override variables already present in the
	// environment, so the test must run without BOZO_DB set.
	t.Setenv("BOZO_DB", "placeholder")
	os.Unsetenv("BOZO_DB")

	cfg, err := Load(envPath)
	require.NoError(t, err)
	assert.Equal(t, "/books/from-file.bozo", cfg.DatabasePath)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
