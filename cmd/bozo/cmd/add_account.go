package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addAccountCmd represents the add-account command.
var addAccountCmd = &cobra.Command{
	Use:   "add-account <name>",
	Short: "Create a new account",
	Long: `Create an account and any missing ancestors before recording
entries against it.

The root segment must map to a known account type (see --help of the
accounts command), either through the built-in names or a BOZO_CHART
mapping file.

Example:
  bozo add-account assets:bank:checking`,
	Args: cobra.ExactArgs(1),
	Run:  runAddAccount,
}

func runAddAccount(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store, conn := openStore(cfg)
	defer conn.Close()

	account, err := store.CreateAccount(args[0])
	exitOnError(err, "failed to create account")

	fmt.Printf("Created account '%s' (%s).\n", account.Name, account.Type)
}
