// Package finbook implements a single-user personal finance book: accounts
// with a running balance, debit/credit transactions against it, and a flat
// JSONL file that persists the whole dataset between runs.
//
// The core functionalities include:
//   - Accounts: registering users with a unique username, a credential, a
//     starting balance, and an informational spending target.
//   - Transactions: recording dated debit and credit movements. The sign of
//     the stored amount encodes the direction, and the account balance is
//     incrementally maintained on every recording.
//   - Sessions: at most one account is logged in at a time; the ledger
//     carries its own run lifecycle instead of process-wide globals.
//   - Persistence: encoding and decoding the ledger to a human-readable,
//     canonical JSONL form, read once at startup and written once at
//     shutdown.
//
// This package serves as the foundational logic for the `fnb` command-line
// tool. It is local-first and fully offline: there is no network boundary,
// no concurrency, and a single reader/writer of the in-memory state.
package finbook
