// Package cmd provides CLI commands for bozo.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitalbricklayer/bozo/pkg/chart"
	"github.com/digitalbricklayer/bozo/pkg/config"
	"github.com/digitalbricklayer/bozo/pkg/ledger"
	"github.com/digitalbricklayer/bozo/pkg/pathutil"
)

// Exit codes. Busy errors are the only retryable kind.
const (
	exitValidation = 1
	exitNoDatabase = 2
	exitBusy       = 3
)

var (
	cfgFile      string
	debug        bool
	databasePath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bozo",
	Short: "A personal double-entry bookkeeping tool",
	Long: `bozo records balanced journal entries into an append-only ledger
backed by a single SQLite file.

It supports:
- Recording balanced debit/credit entries with create-on-first-use accounts
- Listing entries, optionally filtered by account
- Trial balance summaries with exact decimal arithmetic
- Database-level immutability of recorded history

Example:
  bozo init --name ledger --folder ~/books
  bozo record 50.00 "Freelance payment" --debit ledger --credit income
  bozo summary`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// setupLogging installs the default slog logger at the level selected by
// --debug. Commands that parse their own flags call it again once the
// debug flag is known.
func setupLogging() {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", "", "path to the database file (default: BOZO_DB env var)")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(addAccountCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// loadConfig loads configuration from the environment.
func loadConfig() *config.Config {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	return cfg
}

// newChartMapper builds the account-type mapper, layering the optional
// BOZO_CHART file over the built-in mappings.
func newChartMapper(cfg *config.Config) *chart.Mapper {
	if cfg.ChartPath == "" {
		return chart.NewMapper()
	}

	mapper, err := chart.NewMapperFromFile(cfg.ChartPath)
	exitOnError(err, "failed to load chart mapping")
	return mapper
}

// openStore resolves the database path (flag over BOZO_DB), opens the
// database and returns the store. The caller must close the connection.
func openStore(cfg *config.Config) (*ledger.Store, *ledger.Connection) {
	dbPath, err := pathutil.ResolveDatabase(databasePath, cfg.DatabasePath)
	exitOnError(err, "no database")

	slog.Debug("Opening database", "path", dbPath)
	conn, err := ledger.Open(dbPath)
	exitOnError(err, "failed to open database")

	return ledger.NewStore(conn, newChartMapper(cfg)), conn
}

// exitCode maps an error to the process exit code the CLI contract promises.
func exitCode(err error) int {
	switch {
	case errors.Is(err, pathutil.ErrNoDatabase), errors.Is(err, ledger.ErrNotInitialized):
		return exitNoDatabase
	case errors.Is(err, ledger.ErrBusy):
		return exitBusy
	default:
		return exitValidation
	}
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(exitCode(err))
	}
}
