package finbook

import (
	"fmt"
	"slices"
)

// Account holds one person's running balance and the ordered sequence of
// transactions that produced it. Transactions are kept in insertion order,
// which is the order they were entered, not necessarily date order.
type Account struct {
	username       string
	credential     string
	starting       Money // balance the account opened with
	balance        Money // running total, incrementally maintained
	transactions   []*Transaction
	spendingTarget Money
}

// newAccount builds an account with a freshly allocated transaction slice.
// Accounts are created through [Ledger.CreateAccount], which enforces
// username uniqueness and credential confirmation.
func newAccount(username, credential string, starting Money) *Account {
	return &Account{
		username:     username,
		credential:   credential,
		starting:     starting,
		balance:      starting,
		transactions: make([]*Transaction, 0),
	}
}

// Name returns the account's username.
func (a *Account) Name() string { return a.username }

// Balance returns the running balance.
func (a *Account) Balance() Money { return a.balance }

// SpendingTarget returns the informational spending goal, zero if unset.
func (a *Account) SpendingTarget() Money { return a.spendingTarget }

// SetSpendingTarget replaces the informational spending goal. No invariant
// is enforced against it.
func (a *Account) SetSpendingTarget(target Money) { a.spendingTarget = target }

// Transactions returns the live ordered sequence, not a copy. Callers must
// not grow or shrink it directly: CreateTransaction and DeleteTransaction
// are the only sanctioned mutations.
func (a *Account) Transactions() []*Transaction { return a.transactions }

// CreateTransaction validates and records a new transaction, updating the
// running balance in the same step. magnitude must be non-negative; the sign
// is derived from the debit flag. This is the only way a transaction enters
// the account, which keeps the balance equal to the starting balance plus
// the net signed sum of all transactions.
func (a *Account) CreateTransaction(magnitude Money, date, description string, debit bool) (*Transaction, error) {
	tx, err := newTransaction(magnitude, date, description, debit)
	if err != nil {
		return nil, err
	}
	a.transactions = append(a.transactions, tx)
	a.balance = a.balance.Add(tx.amount)
	return tx, nil
}

// DeleteTransaction removes the given transaction from the sequence by
// identity and recomputes the balance from the remaining transactions.
func (a *Account) DeleteTransaction(tx *Transaction) error {
	i := slices.Index(a.transactions, tx)
	if i < 0 {
		return fmt.Errorf("%w in account %q", ErrNotFound, a.username)
	}
	a.transactions = slices.Delete(a.transactions, i, i+1)
	a.Recalculate()
	return nil
}

// TransactionAt returns the i-th transaction in entry order.
func (a *Account) TransactionAt(i int) (*Transaction, error) {
	if i < 0 || i >= len(a.transactions) {
		return nil, fmt.Errorf("%w: index %d out of range (%d transactions)", ErrNotFound, i, len(a.transactions))
	}
	return a.transactions[i], nil
}

// Recalculate resets the balance to the starting balance plus the net signed
// sum of all recorded transactions. It is invoked after every deletion, and
// is the reconciliation step required after mutating a recorded
// transaction's amount in place.
func (a *Account) Recalculate() {
	balance := a.starting
	for _, tx := range a.transactions {
		balance = balance.Add(tx.amount)
	}
	a.balance = balance
}
