package finbook

import (
	"errors"
	"testing"
)

func TestCreateTransaction_Balance(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		debit   bool
		balance float64 // expected, starting from 100
	}{
		{"debit subtracts", 30, true, 70},
		{"credit adds", 30, false, 130},
		{"zero debit", 0, true, 100},
		{"fractional credit", 0.10, false, 100.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAccount("alice", "pw", EUR(100))
			tx, err := a.CreateTransaction(EUR(tt.amount), "01 01 2024", "test", tt.debit)
			if err != nil {
				t.Fatalf("CreateTransaction() failed: %v", err)
			}
			if !a.Balance().Equal(EUR(tt.balance)) {
				t.Errorf("Balance() = %s, want %s", a.Balance(), EUR(tt.balance))
			}
			if len(a.Transactions()) != 1 || a.Transactions()[0] != tx {
				t.Errorf("transaction was not appended to the account")
			}
		})
	}
}

// TestCreateTransaction_AliceScenario replays the canonical walkthrough:
// alice opens with 100 and spends 30 on groceries.
func TestCreateTransaction_AliceScenario(t *testing.T) {
	l := NewLedger()
	if _, err := l.CreateAccount("alice", "pw", "pw", EUR(100)); err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	if err := l.Login("alice", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	a := l.Active()
	tx, err := a.CreateTransaction(EUR(30), "01 01 2024", "groceries", true)
	if err != nil {
		t.Fatalf("CreateTransaction() failed: %v", err)
	}

	if !a.Balance().Equal(EUR(70)) {
		t.Errorf("Balance() = %s, want %s", a.Balance(), EUR(70))
	}
	if len(a.Transactions()) != 1 {
		t.Fatalf("Transactions() has %d entries, want 1", len(a.Transactions()))
	}
	if tx.Kind() != Debit {
		t.Errorf("Kind() = %q, want %q", tx.Kind(), Debit)
	}
	if got, want := tx.String(), "01 01 2024 -€30.00 groceries"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCreateTransaction_InvalidDate(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))

	_, err := a.CreateTransaction(EUR(30), "2024-01-01", "groceries", true)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateTransaction() with bad date: got %v, want ErrValidation", err)
	}
	// No partial state is retained.
	if len(a.Transactions()) != 0 {
		t.Error("failed creation left a transaction behind")
	}
	if !a.Balance().Equal(EUR(100)) {
		t.Errorf("failed creation changed the balance to %s", a.Balance())
	}
}

func TestCreateTransaction_NegativeMagnitude(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))

	_, err := a.CreateTransaction(EUR(-30), "01 01 2024", "", true)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateTransaction() with negative magnitude: got %v, want ErrValidation", err)
	}
	if len(a.Transactions()) != 0 || !a.Balance().Equal(EUR(100)) {
		t.Error("failed creation left partial state")
	}
}

func TestKindIsDerived(t *testing.T) {
	a := newAccount("alice", "pw", EUR(0))
	debit, _ := a.CreateTransaction(EUR(5), "01 01 2024", "", true)
	credit, _ := a.CreateTransaction(EUR(5), "01 01 2024", "", false)
	zero, _ := a.CreateTransaction(EUR(0), "01 01 2024", "", true)

	if debit.Kind() != Debit {
		t.Errorf("debit Kind() = %q", debit.Kind())
	}
	if credit.Kind() != Credit {
		t.Errorf("credit Kind() = %q", credit.Kind())
	}
	// A zero amount is not negative, so it renders as a credit.
	if zero.Kind() != Credit {
		t.Errorf("zero Kind() = %q", zero.Kind())
	}

	// Flipping the direction in place flips the derived kind.
	if err := debit.SetAmount(EUR(5), false); err != nil {
		t.Fatalf("SetAmount() failed: %v", err)
	}
	if debit.Kind() != Credit {
		t.Errorf("Kind() after flip = %q, want %q", debit.Kind(), Credit)
	}
}

// TestSetAmountThenRecalculate covers the documented coupling: mutating a
// recorded transaction does not touch the balance until the account
// reconciles.
func TestSetAmountThenRecalculate(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))
	tx, err := a.CreateTransaction(EUR(30), "01 01 2024", "", true)
	if err != nil {
		t.Fatalf("CreateTransaction() failed: %v", err)
	}

	if err := tx.SetAmount(EUR(50), true); err != nil {
		t.Fatalf("SetAmount() failed: %v", err)
	}
	if !a.Balance().Equal(EUR(70)) {
		t.Errorf("Balance() changed on SetAmount alone: %s", a.Balance())
	}

	a.Recalculate()
	if !a.Balance().Equal(EUR(50)) {
		t.Errorf("Balance() after Recalculate() = %s, want %s", a.Balance(), EUR(50))
	}
}

func TestDeleteTransaction(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))
	tx1, _ := a.CreateTransaction(EUR(30), "01 01 2024", "groceries", true)
	tx2, _ := a.CreateTransaction(EUR(20), "02 01 2024", "salary", false)

	if err := a.DeleteTransaction(tx1); err != nil {
		t.Fatalf("DeleteTransaction() failed: %v", err)
	}
	// The balance is recomputed from the remaining transactions.
	if !a.Balance().Equal(EUR(120)) {
		t.Errorf("Balance() after delete = %s, want %s", a.Balance(), EUR(120))
	}
	if len(a.Transactions()) != 1 || a.Transactions()[0] != tx2 {
		t.Error("DeleteTransaction() removed the wrong entry")
	}

	// Deleting the same transaction again is not found.
	if err := a.DeleteTransaction(tx1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestTransactionAt(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))
	tx, _ := a.CreateTransaction(EUR(30), "01 01 2024", "", true)

	got, err := a.TransactionAt(0)
	if err != nil || got != tx {
		t.Errorf("TransactionAt(0) = %v, %v", got, err)
	}

	for _, i := range []int{-1, 1, 99} {
		if _, err := a.TransactionAt(i); !errors.Is(err, ErrNotFound) {
			t.Errorf("TransactionAt(%d): got %v, want ErrNotFound", i, err)
		}
	}
	// The list is unchanged by out-of-range lookups.
	if len(a.Transactions()) != 1 {
		t.Error("out-of-range lookup changed the transaction list")
	}
}

func TestSpendingTarget(t *testing.T) {
	a := newAccount("alice", "pw", EUR(100))
	if !a.SpendingTarget().IsZero() {
		t.Error("a new account must not have a spending target")
	}
	a.SetSpendingTarget(EUR(500))
	if !a.SpendingTarget().Equal(EUR(500)) {
		t.Errorf("SpendingTarget() = %s, want %s", a.SpendingTarget(), EUR(500))
	}
	// Informational only: the balance is not constrained by it.
	if _, err := a.CreateTransaction(EUR(1000), "01 01 2024", "", true); err != nil {
		t.Errorf("CreateTransaction() beyond the target failed: %v", err)
	}
}

func TestTransactionSetters(t *testing.T) {
	a := newAccount("alice", "pw", EUR(0))
	tx, _ := a.CreateTransaction(EUR(5), "01 01 2024", "old", true)

	if err := tx.SetDate("02 03 2024"); err != nil {
		t.Fatalf("SetDate() failed: %v", err)
	}
	if got := tx.Date().String(); got != "02 03 2024" {
		t.Errorf("Date() = %q, want %q", got, "02 03 2024")
	}
	if err := tx.SetDate("bogus"); !errors.Is(err, ErrValidation) {
		t.Errorf("SetDate(bogus): got %v, want ErrValidation", err)
	}
	if got := tx.Date().String(); got != "02 03 2024" {
		t.Error("failed SetDate() changed the date")
	}

	tx.SetDescription("new")
	if tx.Description() != "new" {
		t.Errorf("Description() = %q, want %q", tx.Description(), "new")
	}
}
