package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the book file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `fnb fmt

  Reads the whole book, validating its structure, and writes it back in the
  canonical JSONL form: fixed key order, one record per line, transactions
  grouped under their account. Useful after editing the file by hand.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %q: %d account(s)\n", *ledgerFile, ledger.Len())
	return subcommands.ExitSuccess
}
