package model

import "time"

// Transaction is a single card transaction reconstructed from a screenshot.
type Transaction struct {
	Date      time.Time `json:"date"`
	Payee     string    `json:"payee"`
	// AmountInCents is negative for charges, non-negative for payments and
	// credits. The sign comes from a leading "+" on the screenshot amount.
	AmountInCents int    `json:"amountInCents"`
	DailyCash     int    `json:"dailyCash"` // cashback percentage points
	Memo          string `json:"memo"`
	Pending       bool   `json:"pending"`
	Declined      bool   `json:"declined"`
}

// IntermediateTransaction is a transaction whose fields are still the raw
// strings found in the OCR text. Amounts, percentages, and dates are parsed
// later, once the block boundaries are known.
type IntermediateTransaction struct {
	TimeDescription string
	Payee           string
	Amount          string
	DailyCash       string // empty when the block carried no daily-cash line
	Memo            string
	Pending         bool
	Declined        bool
}

// FilterPending returns the transactions whose pending flag equals value.
func FilterPending(txns []Transaction, value bool) []Transaction {
	var out []Transaction
	for _, txn := range txns {
		if txn.Pending == value {
			out = append(out, txn)
		}
	}
	return out
}

// FilterDeclined returns the transactions whose declined flag equals value.
func FilterDeclined(txns []Transaction, value bool) []Transaction {
	var out []Transaction
	for _, txn := range txns {
		if txn.Declined == value {
			out = append(out, txn)
		}
	}
	return out
}
