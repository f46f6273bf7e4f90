package finbook

import (
	"fmt"
)

// Kind is a typed string identifying the direction of a transaction.
type Kind string

const (
	// Debit is a transaction that decreases the account balance.
	Debit Kind = "Debit"
	// Credit is a transaction that increases the account balance.
	Credit Kind = "Credit"
)

// Transaction records one monetary movement in an account.
//
// The sign of the stored amount encodes the direction: negative for a debit
// (money leaving the account), positive for a credit (money entering). A
// Transaction is created only through [Account.CreateTransaction] and belongs
// to exactly one account's sequence.
type Transaction struct {
	amount      Money // signed: negative is a debit
	date        Date
	description string
}

// newTransaction builds a transaction from a non-negative magnitude, a
// textual date, and a direction flag. The stored amount's sign is derived
// from the flag, never supplied by the caller.
func newTransaction(magnitude Money, date, description string, debit bool) (*Transaction, error) {
	t := &Transaction{description: description}
	if err := t.SetDate(date); err != nil {
		return nil, err
	}
	if err := t.SetAmount(magnitude, debit); err != nil {
		return nil, err
	}
	return t, nil
}

// Amount returns the signed amount: negative for a debit, positive for a credit.
func (t *Transaction) Amount() Money { return t.amount }

// Date returns the transaction date.
func (t *Transaction) Date() Date { return t.date }

// Description returns the free-form description, possibly empty.
func (t *Transaction) Description() string { return t.description }

// Kind derives the transaction direction from the sign of the stored amount.
func (t *Transaction) Kind() Kind {
	if t.amount.IsNegative() {
		return Debit
	}
	return Credit
}

// SetDate replaces the transaction date, validating the "DD MM YYYY" format.
func (t *Transaction) SetDate(date string) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	t.date = d
	return nil
}

// SetDescription replaces the free-form description.
func (t *Transaction) SetDescription(description string) {
	t.description = description
}

// SetAmount replaces the amount from a non-negative magnitude and a direction
// flag. It does not reconcile the owning account's balance: callers that
// mutate a recorded transaction must follow with [Account.Recalculate].
func (t *Transaction) SetAmount(magnitude Money, debit bool) error {
	if magnitude.IsNegative() {
		return fmt.Errorf("%w: amount magnitude must not be negative, got %s", ErrValidation, magnitude)
	}
	if debit {
		t.amount = magnitude.Neg()
	} else {
		t.amount = magnitude
	}
	return nil
}

// String renders the transaction as "<date> <amount> <description>".
func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s %s", t.date, t.amount.SignedString(), t.description)
}
