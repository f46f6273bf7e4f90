package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordType is a typed string identifying the kind of a persisted line.
type recordType string

const (
	recLedger      recordType = "ledger"
	recAccount     recordType = "account"
	recTransaction recordType = "transaction"
)

// accountRecord is a specialized struct for decoding account lines.
type accountRecord struct {
	Username        string          `json:"username"`
	Credential      string          `json:"credential"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	Balance         decimal.Decimal `json:"balance"`
	SpendingTarget  decimal.Decimal `json:"spendingTarget"`
}

// transactionRecord is a specialized struct for decoding transaction lines.
// The amount is signed: negative is a debit.
type transactionRecord struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data. Each line is one
// record: an optional "ledger" header, then "account" lines each followed by
// that account's "transaction" lines in entry order.
//
// An empty stream yields an empty ledger. Structurally invalid input is
// reported as ErrCorruptData.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	// Descriptions are unbounded, so a record line can exceed the scanner's
	// default 64KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var current *Account
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record recordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("%w: line %d is not a record: %v", ErrCorruptData, line, err)
		}

		switch identifier.Record {
		case recLedger:
			var temp struct {
				Currency string `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptData, line, err)
			}
			if temp.Currency != "" {
				ledger.currency = temp.Currency
			}
		case recAccount:
			var temp accountRecord
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptData, line, err)
			}
			if temp.Username == "" {
				return nil, fmt.Errorf("%w: line %d: account without username", ErrCorruptData, line)
			}
			if _, ok := ledger.index[temp.Username]; ok {
				return nil, fmt.Errorf("%w: line %d: duplicate account %q", ErrCorruptData, line, temp.Username)
			}
			a := newAccount(temp.Username, temp.Credential, M(temp.StartingBalance, ledger.currency))
			a.balance = M(temp.Balance, ledger.currency)
			a.spendingTarget = M(temp.SpendingTarget, ledger.currency)
			ledger.accounts = append(ledger.accounts, a)
			ledger.index[a.username] = a
			current = a
		case recTransaction:
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: transaction before any account", ErrCorruptData, line)
			}
			var temp transactionRecord
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptData, line, err)
			}
			// The stored amount is already signed, restore it as-is: the
			// running balance is persisted on the account line.
			current.transactions = append(current.transactions, &Transaction{
				amount:      M(temp.Amount, ledger.currency),
				date:        temp.Date,
				description: temp.Description,
			})
		default:
			return nil, fmt.Errorf("%w: line %d: unknown record %q", ErrCorruptData, line, identifier.Record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeLedger persists the whole ledger to an io.Writer in JSONL format:
// a header line, then every account followed by its transactions in entry
// order. JSON keys are written in a fixed order so encoding is canonical.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	header := &jsonObjectWriter{}
	header.Append("record", recLedger)
	header.Append("currency", ledger.currency)
	if err := writeRecord(w, header); err != nil {
		return err
	}

	for _, a := range ledger.accounts {
		if err := EncodeAccount(w, a); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAccount writes one account line followed by its transaction lines.
func EncodeAccount(w io.Writer, a *Account) error {
	rec := &jsonObjectWriter{}
	rec.Append("record", recAccount)
	rec.Append("username", a.username)
	rec.Append("credential", a.credential)
	rec.Append("startingBalance", a.starting.Decimal())
	rec.Append("balance", a.balance.Decimal())
	// reflect-based Optional cannot tell an explicit 0 from an absent
	// decimal, which would break canonical re-encoding.
	if !a.spendingTarget.IsZero() {
		rec.Append("spendingTarget", a.spendingTarget.Decimal())
	}
	if err := writeRecord(w, rec); err != nil {
		return fmt.Errorf("failed to write account %q: %w", a.username, err)
	}

	for _, tx := range a.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return fmt.Errorf("failed to write transactions of %q: %w", a.username, err)
		}
	}
	return nil
}

// EncodeTransaction writes a single transaction line.
func EncodeTransaction(w io.Writer, tx *Transaction) error {
	rec := &jsonObjectWriter{}
	rec.Append("record", recTransaction)
	rec.Append("date", tx.date)
	rec.Append("amount", tx.amount.Decimal())
	rec.Optional("description", tx.description)
	return writeRecord(w, rec)
}

// writeRecord marshals the built object and writes it followed by a newline.
func writeRecord(w io.Writer, rec *jsonObjectWriter) error {
	data, err := rec.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
