package cmd

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/digitalbricklayer/bozo/pkg/journal"
)

var (
	recordDebit    string
	recordCredit   string
	recordCategory string
)

// recordCmd represents the record command. Flag parsing is disabled so a
// leading signed amount like -25.50 is not read as a group of shorthand
// flags; runRecord splits the argv itself.
var recordCmd = &cobra.Command{
	Use:   "record <amount> <description>",
	Short: "Record a journal entry",
	Long: `Record a balanced two-line journal entry.

With --debit and --credit the amount is posted as given; a negative amount
swaps the two sides. With --category the counter-account is the configured
ledger account (BOZO_LEDGER_ACCOUNT, default "ledger"): a negative amount is
an expense debiting the category, a positive amount is income crediting it.

Accounts are created on first use.

Example:
  bozo record 50.00 "Freelance payment" --debit ledger --credit income
  bozo record -25.50 "Groceries" --category food`,
	DisableFlagParsing: true,
	Run:                runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordDebit, "debit", "", "account to debit")
	recordCmd.Flags().StringVar(&recordCredit, "credit", "", "account to credit")
	recordCmd.Flags().StringVarP(&recordCategory, "category", "c", "", "category account, with the amount's sign choosing the side")
}

// signedNumber matches tokens such as -25.50 or -.5 that pflag would
// otherwise reject as unknown shorthand flag groups.
var signedNumber = regexp.MustCompile(`^-(\d+(\.\d*)?|\.\d+)$`)

// splitArgs separates flag tokens (with their values) from positional
// arguments, keeping signed numbers positional. Everything after "--" is
// positional. Flags must already be registered on the flag set so value
// lookahead knows which tokens are flag values.
func splitArgs(flags *pflag.FlagSet, args []string) (flagArgs, positionals []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			return flagArgs, positionals
		case signedNumber.MatchString(arg):
			positionals = append(positionals, arg)
		case strings.HasPrefix(arg, "--"):
			flagArgs = append(flagArgs, arg)
			if name, _, hasValue := strings.Cut(arg[2:], "="); !hasValue {
				if f := flags.Lookup(name); f != nil && f.Value.Type() != "bool" && i+1 < len(args) {
					i++
					flagArgs = append(flagArgs, args[i])
				}
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			// In a shorthand group only the last flag may take a value.
			if !strings.Contains(arg, "=") {
				if f := flags.ShorthandLookup(arg[len(arg)-1:]); f != nil && f.Value.Type() != "bool" && i+1 < len(args) {
					i++
					flagArgs = append(flagArgs, args[i])
				}
			}
		default:
			positionals = append(positionals, arg)
		}
	}
	return flagArgs, positionals
}

func runRecord(cmd *cobra.Command, args []string) {
	// With DisableFlagParsing cobra hands over the raw argv and does not
	// merge inherited flags, so both happen here.
	flags := cmd.Flags()
	flags.AddFlagSet(cmd.InheritedFlags())

	flagArgs, positionals := splitArgs(flags, args)
	exitOnError(flags.Parse(flagArgs), "invalid flags")

	if help, err := flags.GetBool("help"); err == nil && help {
		cmd.Help()
		return
	}
	setupLogging()

	if len(positionals) != 2 {
		exitOnError(fmt.Errorf("expected <amount> <description>, got %d arguments", len(positionals)), "invalid arguments")
	}

	amount, err := journal.ParseAmount(positionals[0])
	exitOnError(err, "invalid amount")
	description := positionals[1]

	cfg := loadConfig()

	var entry *journal.Entry
	switch {
	case recordCategory != "" && (recordDebit != "" || recordCredit != ""):
		exitOnError(fmt.Errorf("--category cannot be combined with --debit/--credit"), "invalid flags")
	case recordCategory != "":
		entry, err = journal.NewTransfer(description, amount, cfg.LedgerAccount, recordCategory)
	case recordDebit != "" && recordCredit != "":
		entry, err = journal.NewTransfer(description, amount, recordDebit, recordCredit)
	default:
		exitOnError(fmt.Errorf("either --category or both --debit and --credit are required"), "invalid flags")
	}
	exitOnError(err, "invalid entry")

	store, conn := openStore(cfg)
	defer conn.Close()

	entryID, err := store.RecordEntry(entry)
	exitOnError(err, "failed to record entry")

	slog.Debug("Recorded entry", "id", entryID)
	fmt.Printf("Recorded entry #%d: %s - %s [debit: %s, credit: %s]\n",
		entryID,
		entry.Debits().StringFixed(2),
		entry.Description,
		firstAccount(entry, journal.Debit),
		firstAccount(entry, journal.Credit),
	)
}

// firstAccount returns the account of the entry's first line item on the
// given side.
func firstAccount(entry *journal.Entry, side journal.Side) string {
	for _, item := range entry.LineItems {
		if item.Side == side {
			return item.Account
		}
	}
	return ""
}
