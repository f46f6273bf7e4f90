package renderer

import (
	"fmt"
	"strings"

	"github.com/tmaret/finbook"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(tx *finbook.Transaction) string {
	return fmt.Sprintf("%s %s %s: %s", tx.Date(), tx.Kind(), tx.Amount().Abs(), tx.Description())
}

// Transactions renders an ordered transaction list as a markdown table.
// The index column is the position used by the delete operation; first is
// the absolute position of txs[0], so a partial listing keeps the indices
// of the full sequence.
func Transactions(txs []*finbook.Transaction, first int) string {
	if len(txs) == 0 {
		return "No transactions recorded.\n"
	}

	var b strings.Builder
	b.WriteString("| # | Date | Type | Amount | Description |\n")
	b.WriteString("|--:|------|------|-------:|-------------|\n")
	for i, tx := range txs {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			first+i, tx.Date(), tx.Kind(), tx.Amount().Abs(), tx.Description())
	}
	return b.String()
}
