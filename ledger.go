package finbook

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultCurrency is the reporting currency of a book that does not declare one.
const DefaultCurrency = "EUR"

// Ledger is the top-level container: all accounts, the currently
// authenticated account if any, and the process run lifecycle.
//
// Accounts are kept in creation order and indexed by username. At most one
// account is active at a time; the active reference is a pure relation, the
// ledger owns the account either way.
type Ledger struct {
	name     string
	currency string
	accounts []*Account
	index    map[string]*Account
	active   *Account
	running  bool
}

// NewLedger creates an empty ledger in the default currency.
func NewLedger() *Ledger {
	return &Ledger{
		currency: DefaultCurrency,
		accounts: make([]*Account, 0),
		index:    make(map[string]*Account),
		running:  true,
	}
}

// Name returns the ledger name, set by the loader from the file name.
func (l *Ledger) Name() string { return l.name }

// Currency returns the reporting currency all amounts are denominated in.
func (l *Ledger) Currency() string { return l.currency }

// CreateAccount registers a new account after uniqueness and
// credential-confirmation checks pass. It does not log the account in.
func (l *Ledger) CreateAccount(username, credential, confirmation string, starting Money) (*Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if _, ok := l.index[username]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateUsername, username)
	}
	if credential != confirmation {
		return nil, fmt.Errorf("%w: credential confirmation does not match", ErrValidation)
	}
	a := newAccount(username, credential, starting)
	l.accounts = append(l.accounts, a)
	l.index[username] = a
	return a, nil
}

// Login scans accounts for an exact match on both username and credential.
// On match the account becomes active; on failure the active account is left
// as it was and ErrAuthentication is returned.
func (l *Ledger) Login(username, credential string) error {
	a, ok := l.index[username]
	if !ok || a.credential != credential {
		return ErrAuthentication
	}
	l.active = a
	return nil
}

// Logout clears the active account unconditionally.
func (l *Ledger) Logout() { l.active = nil }

// Active returns the currently authenticated account, or nil.
func (l *Ledger) Active() *Account { return l.active }

// Account returns the account with this username, or nil if unknown.
func (l *Ledger) Account(username string) *Account { return l.index[username] }

// Accounts returns an iterator over accounts in creation order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// Running reports whether the command loop should continue.
func (l *Ledger) Running() bool { return l.running }

// RequestShutdown flips the lifecycle flag. The host loop must then persist
// the ledger exactly once before terminating; shutdown is absorbing.
func (l *Ledger) RequestShutdown() {
	l.running = false
	l.active = nil
}
