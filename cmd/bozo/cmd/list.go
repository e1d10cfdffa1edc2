package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitalbricklayer/bozo/pkg/journal"
)

var listCategory string

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `List journal entries in the order they were recorded.

With --category only entries touching that account (or any account beneath
it) are shown.

Example:
  bozo list
  bozo list --category food`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by account")
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store, conn := openStore(cfg)
	defer conn.Close()

	var entries []journal.Entry
	var err error
	if listCategory != "" {
		entries, err = store.EntriesByAccount(listCategory)
	} else {
		entries, err = store.Entries()
	}
	exitOnError(err, "failed to list entries")

	if len(entries) == 0 {
		fmt.Println("No journal entries found.")
		return
	}

	fmt.Printf("%-6s %-12s %-20s %-15s %-15s %10s\n", "ID", "Date", "Description", "Debit Acct", "Credit Acct", "Amount")
	fmt.Println(dashes(80))
	for _, entry := range entries {
		fmt.Printf("%-6d %-12s %-20s %-15s %-15s %10s\n",
			entry.ID,
			entry.CreatedAt.Format("2006-01-02"),
			entry.Description,
			firstAccount(&entry, journal.Debit),
			firstAccount(&entry, journal.Credit),
			entry.Debits().StringFixed(2),
		)
	}
}

// dashes returns a separator line of the given width.
func dashes(n int) string {
	line := make([]byte, n)
	for i := range line {
		line[i] = '-'
	}
	return string(line)
}
