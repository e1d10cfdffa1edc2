// Package config provides configuration management for bozo.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultLedgerAccount is the counter-account used when BOZO_LEDGER_ACCOUNT
// is not set.
const DefaultLedgerAccount = "ledger"

// Config represents the application configuration.
type Config struct {
	// DatabasePath is the default ledger database file, from BOZO_DB.
	// An explicit --database flag takes precedence over it.
	DatabasePath string
	// ChartPath is an optional YAML file mapping account roots to account
	// types, from BOZO_CHART.
	ChartPath string
	// LedgerAccount is the counter-account used by the signed record
	// shorthand, from BOZO_LEDGER_ACCOUNT.
	LedgerAccount string
	Debug         bool
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		DatabasePath:  os.Getenv("BOZO_DB"),
		ChartPath:     os.Getenv("BOZO_CHART"),
		LedgerAccount: getEnvOrDefault("BOZO_LEDGER_ACCOUNT", DefaultLedgerAccount),
		Debug:         os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// getEnvOrDefault returns the value of the environment variable or a default
// value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
