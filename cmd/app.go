// Package cmd implements the CLI application to manage a personal finance book.
// A main package calls Register() to install the subcommands, and Execute()
// on the user-selected one.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/tmaret/finbook"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "book")
	c.Register(&fmtCmd{}, "book")
	c.Register(&queryCmd{}, "book")

	c.Register(&createAccountCmd{}, "accounts")
	c.Register(&balanceCmd{}, "accounts")
	c.Register(&targetCmd{}, "accounts")

	c.Register(&addCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&topicCmd{}, "documentation")
}

// Names returns the names of all subcommands, for shell completion.
func Names() []string {
	return []string{
		"shell", "fmt", "query",
		"create-account", "balance", "target",
		"add", "rm", "tx",
		"topic",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the book file (JSONL format)")

// defaultLedgerFile resolves the book file path: the FINBOOK_LEDGER
// environment variable (optionally from a local .env file) wins, otherwise
// book.jsonl in the current directory.
func defaultLedgerFile() string {
	_ = godotenv.Load() // a missing .env file is fine
	if p := os.Getenv("FINBOOK_LEDGER"); p != "" {
		return p
	}
	return "book.jsonl"
}

// decodeLedger loads the book from the configured file. A missing or empty
// file yields a fresh empty book.
func decodeLedger() (*finbook.Ledger, error) {
	return finbook.LoadLedger(*ledgerFile)
}

// saveLedger writes the book back to the configured file, atomically.
func saveLedger(l *finbook.Ledger) error {
	return finbook.SaveLedger(*ledgerFile, l)
}

// login authenticates against the book with the -u/-p flag values and
// returns the active account.
func login(l *finbook.Ledger, username, credential string) (*finbook.Account, error) {
	if err := l.Login(username, credential); err != nil {
		return nil, err
	}
	return l.Active(), nil
}

// printMarkdown renders markdown for the terminal and prints it. When
// rendering fails the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
