package finbook

import "errors"

// Domain errors. Operations wrap these with context using %w so that
// callers can match the category with errors.Is.
var (
	// ErrValidation reports a semantically invalid value: a malformed date,
	// a negative magnitude, or a mismatched credential confirmation.
	ErrValidation = errors.New("invalid value")

	// ErrDuplicateUsername reports an attempt to create an account with a
	// username already present in the book.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrAuthentication reports a failed login. The message is deliberately
	// generic: it never reveals whether the username or the credential was wrong.
	ErrAuthentication = errors.New("incorrect username or password")

	// ErrNotFound reports a transaction that is not a member of the account,
	// or an index past the end of the transaction list.
	ErrNotFound = errors.New("transaction not found")

	// ErrCorruptData reports a structurally invalid persisted book.
	ErrCorruptData = errors.New("corrupt book data")
)
