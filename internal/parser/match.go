package parser

import (
	"regexp"
	"strings"
)

// Amount lines look like "$12.34", "+$1,234.56". The "+" marks payments
// and credits; its absence marks a charge.
var amountPattern = regexp.MustCompile(`^\+*\$[\d,]*\.\d\d$`)

// Timestamp recognizers, in the order they are tried. The segmenter keeps
// appending lines to the time description until one of these matches, so
// new layout variants only need a new table entry.
var timestampPatterns = []*regexp.Regexp{
	// relative: "5 minutes ago", "1 hour ago"
	regexp.MustCompile(`[0-9]{1,2} (?:minute|hour)s{0,1} ago`),
	// absolute: "12/31/20"
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2}`),
	// day of week, including "Yesterday"; tolerant of OCR noise around it
	regexp.MustCompile(`(?i)W*(?:Mon|Tues|Wednes|Thurs|Fri|Satur|Sun|Yester)day\b[sS]*`),
}

// Payees whose blocks never carry a daily-cash line.
var nonDailyCashPayees = []string{"Payment", "Daily Cash Adjustment", "Balance Adjustment"}

func isAmount(s string) bool {
	return amountPattern.MatchString(s)
}

func isDeclined(s string) bool {
	return strings.Contains(s, "Declined")
}

func isPending(s string) bool {
	return strings.Contains(s, "Pending")
}

func isTimestamp(s string) bool {
	for _, p := range timestampPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// isDailyCashEligible reports whether a block with this payee and memo
// should have a daily-cash percentage line. Payments, adjustments, refunds,
// and declined transactions never earn daily cash.
func isDailyCashEligible(payee, memo string) bool {
	for _, p := range nonDailyCashPayees {
		if payee == p {
			return false
		}
	}
	return !strings.Contains(memo, "Refund") && !isDeclined(memo)
}
