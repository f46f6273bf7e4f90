package finbook

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// newTestLedger builds a ledger with one account ready to log in.
func newTestLedger() *Ledger {
	l := NewLedger()
	if _, err := l.CreateAccount("alice", "pw", "pw", EUR(100)); err != nil {
		panic(err.Error())
	}
	return l
}
