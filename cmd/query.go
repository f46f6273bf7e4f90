package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the book" }
func (*queryCmd) Usage() string {
	return `fnb query -path <jsonpath>

  Evaluates a JSONPath expression against a JSON view of the whole book.
  Credentials are not part of the view.

Usage Examples:
$ fnb query -path '$.accounts[*].balance'
$ fnb query -path '$.accounts[?(@.username=="alice")].transactions[*].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "$", "JSONPath expression to evaluate")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(c.path, bookDocument(ledger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
		return subcommands.ExitFailure
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep a single element as-is.
	if jlist, ok := jval.([]interface{}); ok && len(jlist) == 1 {
		jval = jlist[0]
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// bookDocument builds the generic JSON view of the book that queries run
// against. Amounts are plain numbers so path filters can compare them.
func bookDocument(l *finbook.Ledger) map[string]interface{} {
	accounts := make([]interface{}, 0, l.Len())
	for a := range l.Accounts() {
		txs := make([]interface{}, 0, len(a.Transactions()))
		for _, tx := range a.Transactions() {
			txs = append(txs, map[string]interface{}{
				"date":        tx.Date().String(),
				"kind":        string(tx.Kind()),
				"amount":      tx.Amount().Decimal().InexactFloat64(),
				"description": tx.Description(),
			})
		}
		accounts = append(accounts, map[string]interface{}{
			"username":       a.Name(),
			"balance":        a.Balance().Decimal().InexactFloat64(),
			"spendingTarget": a.SpendingTarget().Decimal().InexactFloat64(),
			"transactions":   txs,
		})
	}
	return map[string]interface{}{
		"currency": l.Currency(),
		"accounts": accounts,
	}
}
