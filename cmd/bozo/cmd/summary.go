package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/digitalbricklayer/bozo/pkg/journal"
)

var summaryCategory string

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the trial balance",
	Long: `Show per-account debit and credit totals and the net balance.

Net is debits minus credits: expense accounts report positive, income
accounts negative. With --category the report is scoped to that account's
subtree.

Example:
  bozo summary
  bozo summary --category expenses`,
	Run: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryCategory, "category", "c", "", "scope the trial balance to an account subtree")
}

func runSummary(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store, conn := openStore(cfg)
	defer conn.Close()

	balances, err := store.Summary(summaryCategory)
	exitOnError(err, "failed to compute summary")

	if len(balances) == 0 {
		fmt.Println("No journal entries recorded yet.")
		return
	}

	fmt.Println("=== Trial Balance ===")
	fmt.Println()
	fmt.Printf("%-30s %12s %12s %12s\n", "Account", "Debits", "Credits", "Net")
	fmt.Println(dashes(68))

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, balance := range balances {
		depth := strings.Count(balance.Account, journal.PathSeparator)
		segments := strings.Split(balance.Account, journal.PathSeparator)
		label := strings.Repeat("  ", depth) + segments[len(segments)-1]

		fmt.Printf("%-30s %12s %12s %12s\n",
			label,
			balance.Debits.StringFixed(2),
			balance.Credits.StringFixed(2),
			balance.Net.StringFixed(2),
		)
		totalDebits = totalDebits.Add(balance.Debits)
		totalCredits = totalCredits.Add(balance.Credits)
	}

	fmt.Println(dashes(68))
	fmt.Printf("%-30s %12s %12s %12s\n",
		"TOTAL",
		totalDebits.StringFixed(2),
		totalCredits.StringFixed(2),
		totalDebits.Sub(totalCredits).StringFixed(2),
	)
}
