// Package writer renders transactions as the fixed-layout CSV export.
//
// The format matches the card app's own export byte for byte: commas inside
// payee and memo are removed rather than quoted, so encoding/csv (which
// would quote them) cannot produce it.
package writer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cardsight/cardexport/internal/model"
)

// Header is the first line of every export.
const Header = "Date,Payee,Amount,DailyCash,Memo,Pending,Declined"

const dateLayout = "01/02/06"

// Render returns the CSV document for the given transactions: the header,
// then one row per transaction in order, joined by newlines.
func Render(txns []model.Transaction) string {
	rows := make([]string, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, row(txn))
	}
	return strings.Join([]string{Header, strings.Join(rows, "\n")}, "\n")
}

// Write writes the CSV document to out.
func Write(out io.Writer, txns []model.Transaction) error {
	if _, err := io.WriteString(out, Render(txns)); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteToFile writes the CSV document to a file at the given path.
func WriteToFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return Write(f, txns)
}

func row(txn model.Transaction) string {
	fields := []string{
		txn.Date.Format(dateLayout),
		stripCommas(txn.Payee),
		formatCents(txn.AmountInCents),
		strconv.Itoa(txn.DailyCash),
		stripCommas(txn.Memo),
		strconv.FormatBool(txn.Pending),
		strconv.FormatBool(txn.Declined),
	}
	return strings.Join(fields, ",")
}

// formatCents renders cents as dollars with truncating division and an
// absolute-value two-digit remainder. Negative amounts between -1 and 0
// dollars therefore render without their sign ("-50" -> "0.50"); that
// matches the app's export and is kept for compatibility.
func formatCents(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, abs(cents)%100)
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
