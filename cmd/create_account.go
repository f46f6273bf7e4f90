package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
)

type createAccountCmd struct {
	username string
	password string
	confirm  string
	balance  string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "register a new account in the book" }
func (*createAccountCmd) Usage() string {
	return `fnb create-account -u <username> -p <password> -c <confirmation> [-b <starting_balance>]

  Registers a new account. The username must be unique in the book, and the
  password confirmation must match. The starting balance defaults to 0 and
  may be negative.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username, unique in the book")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.confirm, "c", "", "Password confirmation")
	f.StringVar(&c.balance, "b", "0", "Starting balance")
}

func (c *createAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	starting, err := finbook.ParseAmount(c.balance, ledger.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing starting balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	account, err := ledger.CreateAccount(c.username, c.password, c.confirm, starting)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %q with balance %s\n", account.Name(), account.Balance())
	return subcommands.ExitSuccess
}
