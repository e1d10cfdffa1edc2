package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/digitalbricklayer/bozo/pkg/ledger"
	"github.com/digitalbricklayer/bozo/pkg/pathutil"
)

var (
	initName   string
	initFolder string
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new ledger database",
	Long: `Create a new ledger database file at <folder>/<name>.bozo.

The folder must already exist; it is never created. Initializing a path
where a database already exists fails and leaves the existing file
untouched.

Example:
  bozo init --name ledger --folder ~/books`,
	Run: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "name of the database file, without extension (required)")
	initCmd.Flags().StringVar(&initFolder, "folder", ".", "folder where the database is created")

	initCmd.MarkFlagRequired("name")
}

func runInit(cmd *cobra.Command, args []string) {
	dbPath := pathutil.LedgerFilePath(initFolder, initName)
	slog.Debug("Initializing database", "path", dbPath)

	conn, err := ledger.Initialize(dbPath)
	exitOnError(err, "failed to initialize database")
	defer conn.Close()

	fmt.Printf("Initialized database at '%s'.\n", dbPath)
}
