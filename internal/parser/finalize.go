package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/cardsight/cardexport/internal/model"
)

// finalize converts one intermediate transaction's string fields into the
// typed record. Unparsable fields keep their zero value so the export stays
// shaped like the screenshot, but each default is reported as an issue so
// callers can tell a genuine zero from a masked OCR misread.
func finalize(it model.IntermediateTransaction, capturedAt time.Time) (model.Transaction, []blockIssue) {
	var issues []blockIssue

	cents, ok := amountInCents(it.Amount)
	if !ok {
		issues = append(issues, blockIssue{model.IssueBadAmount, it.Amount})
	}

	dailyCash := 0
	if it.DailyCash != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(it.DailyCash, "%", ""))
		if err != nil {
			issues = append(issues, blockIssue{model.IssueBadDailyCash, it.DailyCash})
		} else {
			dailyCash = n
		}
	}

	date, resolved := resolveDate(it.TimeDescription, capturedAt)
	if !resolved {
		issues = append(issues, blockIssue{model.IssueDateDefaulted, it.TimeDescription})
	}

	return model.Transaction{
		Date:          date,
		Payee:         it.Payee,
		AmountInCents: cents,
		DailyCash:     dailyCash,
		Memo:          it.Memo,
		Pending:       it.Pending,
		Declined:      it.Declined,
	}, issues
}

// amountInCents parses "$12.34" or "+$1,234.56" into signed cents.
// Charges carry no sign on the screenshot and come out negative; a leading
// "+" marks payments and credits.
func amountInCents(amount string) (int, bool) {
	digits := strings.NewReplacer("+", "", "$", "", ".", "", ",", "").Replace(amount)
	cents, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if !strings.Contains(amount, "+") {
		cents = -cents
	}
	return cents, true
}
