package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
)

// runShell executes a scripted interactive session against a book file in a
// temporary directory and returns the session transcript.
func runShell(t *testing.T, path string, script ...string) string {
	t.Helper()
	prev := *ledgerFile
	*ledgerFile = path
	t.Cleanup(func() { *ledgerFile = prev })

	var out strings.Builder
	c := &shellCmd{in: strings.NewReader(strings.Join(script, "\n") + "\n"), out: &out}
	if status := c.Execute(context.Background(), nil); status != subcommands.ExitSuccess {
		t.Fatalf("shell exited with status %v\ntranscript:\n%s", status, out.String())
	}
	return out.String()
}

func TestShell_FullSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")

	got := runShell(t, path,
		"2", // create account
		"alice", "pw", "pw", "100",
		"1", // login
		"alice", "pw",
		"3", // create transaction
		"d", "30", "01 01 2024", "groceries",
		"1", // view balance
		"2", // view transactions
		"6", // exit
	)

	// Injected output gets the raw markdown, never the terminal rendering.
	for _, want := range []string{
		`Account "alice" created.`,
		"Welcome back, alice.",
		"Recorded 01 01 2024 -€30.00 groceries. New balance: €70.00",
		"Balance: **€70.00**",
		"| 0 | 01 01 2024 | Debit | €30.00 | groceries |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transcript is missing %q:\n%s", want, got)
		}
	}

	// The session state survived the exit.
	ledger, err := finbook.LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() after the session failed: %v", err)
	}
	alice := ledger.Account("alice")
	if alice == nil {
		t.Fatal("account alice was not persisted")
	}
	if got, want := alice.Balance().String(), "€70.00"; got != want {
		t.Errorf("persisted balance = %s, want %s", got, want)
	}
	if len(alice.Transactions()) != 1 {
		t.Errorf("persisted %d transactions, want 1", len(alice.Transactions()))
	}
}

func TestShell_RepromptsOnInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")

	got := runShell(t, path,
		"9", // not a menu choice
		"2", // create account
		"alice", "pw", "pw", "100",
		"1", // login
		"alice", "wrong", // rejected, back to the anonymous menu
		"1",
		"alice", "pw",
		"3", // create transaction
		"c",
		"abc", "-5", "20", // two rejected amounts, then a valid one
		"31 02 2024", "05 03 2024", // impossible date, then a valid one
		"refund",
		"6", // exit
	)

	for _, want := range []string{
		"Please choose 1, 2 or 3.",
		finbook.ErrAuthentication.Error(),
		"Please enter a numeric amount.",
		"The amount must not be negative; choose debit or credit instead.",
		"Incorrect date format, should be DD MM YYYY.",
		"Recorded 05 03 2024 +€20.00 refund. New balance: €120.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transcript is missing %q:\n%s", want, got)
		}
	}
}

func TestShell_DeleteTransaction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")

	// Seed the book file directly, the way a prior session would have left it.
	seed := finbook.NewLedger()
	alice, err := seed.CreateAccount("alice", "pw", "pw", finbook.M(100, "EUR"))
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	if _, err := alice.CreateTransaction(finbook.M(30, "EUR"), "01 01 2024", "groceries", true); err != nil {
		t.Fatalf("CreateTransaction() failed: %v", err)
	}
	if err := finbook.SaveLedger(path, seed); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}

	got := runShell(t, path,
		"1", // login
		"alice", "pw",
		"4", // delete transaction
		"0",
		"6", // exit
	)
	if want := "Deleted 01 01 2024 -€30.00 groceries. New balance: €100.00"; !strings.Contains(got, want) {
		t.Errorf("transcript is missing %q:\n%s", want, got)
	}

	ledger, err := finbook.LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() after the session failed: %v", err)
	}
	back := ledger.Account("alice")
	if len(back.Transactions()) != 0 {
		t.Errorf("persisted %d transactions after delete, want 0", len(back.Transactions()))
	}
	if got, want := back.Balance().String(), "€100.00"; got != want {
		t.Errorf("persisted balance = %s, want %s", got, want)
	}
}

func TestShell_PersistsOnEndOfInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")

	// Input runs out mid-session: end of input is an exit request, and the
	// book is still written.
	runShell(t, path,
		"2",
		"alice", "pw", "pw", "50",
	)

	ledger, err := finbook.LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() after the session failed: %v", err)
	}
	if ledger.Account("alice") == nil {
		t.Error("account created before end of input was not persisted")
	}
}
