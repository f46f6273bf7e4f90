package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
)

type targetCmd struct {
	username string
	password string
	target   string
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set the account's spending target" }
func (*targetCmd) Usage() string {
	return `fnb target -u <username> -p <password> -t <amount>

  Sets the informational spending goal shown next to the balance. The book
  never enforces it. Set it to 0 to clear.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.target, "t", "", "Spending target amount")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.target == "" {
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

	target, err := finbook.ParseAmount(c.target, ledger.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
		return subcommands.ExitUsageError
	}
	account.SetSpendingTarget(target)

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Spending target for %q set to %s\n", account.Name(), target)
	return subcommands.ExitSuccess
}
