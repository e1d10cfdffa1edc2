package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digitalbricklayer/bozo/pkg/journal"
)

var accountsType string

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the chart of accounts",
	Long: `List all accounts, including those created implicitly by recorded
entries.

Example:
  bozo accounts
  bozo accounts --type expense`,
	Run: runAccounts,
}

func init() {
	accountsCmd.Flags().StringVar(&accountsType, "type", "", "filter by account type (asset, liability, income, expense, capital, drawings)")
}

func runAccounts(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store, conn := openStore(cfg)
	defer conn.Close()

	accounts, err := store.Accounts(accountsType)
	exitOnError(err, "failed to list accounts")

	if len(accounts) == 0 {
		fmt.Println("No accounts found.")
		return
	}

	fmt.Printf("%-30s %-12s\n", "Account", "Type")
	fmt.Println(dashes(42))
	for _, account := range accounts {
		depth := strings.Count(account.Name, journal.PathSeparator)
		segments := strings.Split(account.Name, journal.PathSeparator)
		label := strings.Repeat("  ", depth) + segments[len(segments)-1]
		fmt.Printf("%-30s %-12s\n", label, account.Type)
	}
}
