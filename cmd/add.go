package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
)

type addCmd struct {
	username string
	password string
	amount   string
	date     string
	memo     string
	debit    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a debit or credit transaction" }
func (*addCmd) Usage() string {
	return `fnb add -u <username> -p <password> -a <amount> [-d <date>] [-m <description>] [-debit]

  Records a transaction and updates the account balance in the same step.
  The amount is a non-negative magnitude; pass -debit for money leaving the
  account. The date format is "DD MM YYYY" and defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.amount, "a", "", "Amount magnitude, non-negative")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Transaction date (DD MM YYYY)")
	f.StringVar(&c.memo, "m", "", "Optional description")
	f.BoolVar(&c.debit, "debit", false, "Record a debit (money leaving the account)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account, err := login(ledger, c.username, c.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	magnitude, err := finbook.ParseAmount(c.amount, ledger.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := account.CreateTransaction(magnitude, c.date, c.memo, c.debit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s. New balance: %s\n", tx, account.Balance())
	return subcommands.ExitSuccess
}
