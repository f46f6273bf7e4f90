package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook/renderer"
)

type txCmd struct {
	username string
	password string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the account's transactions in entry order" }
func (*txCmd) Usage() string {
	return `fnb tx -u <username> -p <password> [-head <n>] [-tail <n>]

  Lists the account's transactions in the order they were recorded, with
  options for limiting the output. The printed index is the position used
  by "fnb rm".
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
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

	transactions := account.Transactions()
	first := 0
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		// keep the absolute positions so the printed index stays valid for rm
		first = len(transactions) - c.tail
		transactions = transactions[first:]
	}

	printMarkdown(renderer.Transactions(transactions, first))
	return subcommands.ExitSuccess
}
