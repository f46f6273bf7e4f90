package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/tmaret/finbook"
	"github.com/tmaret/finbook/renderer"
)

type shellCmd struct {
	// in and out default to the terminal; tests inject their own.
	in  io.Reader
	out io.Writer
	// render enables terminal markdown rendering. It is set when out
	// defaults to the terminal; injected writers get the raw markdown.
	render bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive menu-driven session" }
func (*shellCmd) Usage() string {
	return `fnb shell

  Runs the interactive session: log in or create an account, then view the
  balance, list, record, and delete transactions. The book is loaded once at
  startup and written back once on exit, on every exit path.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
		c.render = true
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := c.run(ledger)

	// Persist-on-exit is unconditional: the loop has already absorbed every
	// failure by the time we get here.
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

// run drives the two-state menu loop until shutdown is requested. A panic in
// a menu action is reported and still leads to the persistence step.
func (c *shellCmd) run(ledger *finbook.Ledger) (status subcommands.ExitStatus) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(c.out, "Unexpected error: %v\n", r)
			status = subcommands.ExitFailure
		}
		ledger.RequestShutdown()
	}()

	scanner := bufio.NewScanner(c.in)
	for ledger.Running() {
		if ledger.Active() == nil {
			c.anonymousMenu(scanner, ledger)
		} else {
			c.accountMenu(scanner, ledger)
		}
	}
	return subcommands.ExitSuccess
}

// anonymousMenu offers login, account creation, and exit.
func (c *shellCmd) anonymousMenu(s *bufio.Scanner, ledger *finbook.Ledger) {
	fmt.Fprintf(c.out, "\n== %s ==\n[1] Login\n[2] Create account\n[3] Exit\n", ledger.Name())
	choice, ok := c.prompt(s, "> ")
	if !ok {
		ledger.RequestShutdown()
		return
	}
	switch strings.TrimSpace(choice) {
	case "1":
		c.login(s, ledger)
	case "2":
		c.createAccount(s, ledger)
	case "3":
		ledger.RequestShutdown()
	default:
		fmt.Fprintln(c.out, "Please choose 1, 2 or 3.")
	}
}

// accountMenu offers the authenticated operations.
func (c *shellCmd) accountMenu(s *bufio.Scanner, ledger *finbook.Ledger) {
	account := ledger.Active()
	fmt.Fprintf(c.out, "\n== %s ==\n[1] View balance\n[2] View transactions\n[3] Create transaction\n[4] Delete transaction\n[5] Logout\n[6] Exit\n", account.Name())
	choice, ok := c.prompt(s, "> ")
	if !ok {
		ledger.RequestShutdown()
		return
	}
	switch strings.TrimSpace(choice) {
	case "1":
		c.display(renderer.AccountSummary(account))
	case "2":
		c.display(renderer.Transactions(account.Transactions(), 0))
	case "3":
		c.createTransaction(s, ledger, account)
	case "4":
		c.deleteTransaction(s, account)
	case "5":
		ledger.Logout()
	case "6":
		ledger.RequestShutdown()
	default:
		fmt.Fprintln(c.out, "Please choose a number between 1 and 6.")
	}
}

func (c *shellCmd) login(s *bufio.Scanner, ledger *finbook.Ledger) {
	username, ok := c.prompt(s, "Username: ")
	if !ok {
		return
	}
	password, ok := c.prompt(s, "Password: ")
	if !ok {
		return
	}
	if err := ledger.Login(username, password); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Welcome back, %s.\n", username)
}

func (c *shellCmd) createAccount(s *bufio.Scanner, ledger *finbook.Ledger) {
	username, ok := c.prompt(s, "Username: ")
	if !ok {
		return
	}
	password, ok := c.prompt(s, "Password: ")
	if !ok {
		return
	}
	confirm, ok := c.prompt(s, "Confirm password: ")
	if !ok {
		return
	}
	starting, ok := c.promptAmount(s, "Starting balance: ", ledger.Currency(), true)
	if !ok {
		return
	}
	account, err := ledger.CreateAccount(username, password, confirm, starting)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Account %q created. You can now log in.\n", account.Name())
}

func (c *shellCmd) createTransaction(s *bufio.Scanner, ledger *finbook.Ledger, account *finbook.Account) {
	kind, ok := c.prompt(s, "Type ([d]ebit/[c]redit): ")
	if !ok {
		return
	}
	debit := strings.HasPrefix(strings.ToLower(strings.TrimSpace(kind)), "d")

	magnitude, ok := c.promptAmount(s, "Amount: ", ledger.Currency(), false)
	if !ok {
		return
	}
	date, ok := c.promptDate(s, "Date (DD MM YYYY): ")
	if !ok {
		return
	}
	description, ok := c.prompt(s, "Description: ")
	if !ok {
		return
	}

	tx, err := account.CreateTransaction(magnitude, date, description, debit)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Recorded %s. New balance: %s\n", tx, account.Balance())
}

func (c *shellCmd) deleteTransaction(s *bufio.Scanner, account *finbook.Account) {
	c.display(renderer.Transactions(account.Transactions(), 0))
	if len(account.Transactions()) == 0 {
		return
	}
	input, ok := c.prompt(s, "Index to delete: ")
	if !ok {
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a number.")
		return
	}
	tx, err := account.TransactionAt(index)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if err := account.DeleteTransaction(tx); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "Deleted %s. New balance: %s\n", tx, account.Balance())
}

// prompt prints the label and reads one line. ok is false on end of input,
// which the menus treat as an exit request.
func (c *shellCmd) prompt(s *bufio.Scanner, label string) (value string, ok bool) {
	fmt.Fprint(c.out, label)
	if !s.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return s.Text(), true
}

// promptAmount reads a decimal amount, re-prompting until it parses. When
// signed is false, negative magnitudes are re-prompted too.
func (c *shellCmd) promptAmount(s *bufio.Scanner, label, currency string, signed bool) (finbook.Money, bool) {
	for {
		input, ok := c.prompt(s, label)
		if !ok {
			return finbook.Money{}, false
		}
		amount, err := finbook.ParseAmount(strings.TrimSpace(input), currency)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a numeric amount.")
			continue
		}
		if !signed && amount.IsNegative() {
			fmt.Fprintln(c.out, "The amount must not be negative; choose debit or credit instead.")
			continue
		}
		return amount, true
	}
}

// promptDate reads a "DD MM YYYY" date, re-prompting until it parses.
// An empty input means today.
func (c *shellCmd) promptDate(s *bufio.Scanner, label string) (string, bool) {
	for {
		input, ok := c.prompt(s, label)
		if !ok {
			return "", false
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return finbook.Today().String(), true
		}
		if _, err := finbook.ParseDate(input); err != nil {
			if errors.Is(err, finbook.ErrValidation) {
				fmt.Fprintln(c.out, "Incorrect date format, should be DD MM YYYY.")
				continue
			}
			return "", false
		}
		return input, true
	}
}

// display writes markdown to the session output, rendered for the terminal
// when the session runs on one.
func (c *shellCmd) display(md string) {
	if c.render {
		printMarkdown(md)
		return
	}
	fmt.Fprint(c.out, md)
}
