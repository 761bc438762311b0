package model

import "fmt"

// IssueReason classifies what went wrong with a block during parsing.
type IssueReason string

const (
	// IssueTruncated means the line sequence ended mid-block. The partial
	// block is discarded; transactions before it are still returned.
	IssueTruncated IssueReason = "truncated"
	// IssueDailyCashMissing means an eligible block had no "%" line within
	// the lookahead window. The transaction is kept with DailyCash 0.
	IssueDailyCashMissing IssueReason = "daily_cash_missing"
	// IssueBadAmount means the amount string did not parse as cents.
	// The transaction is kept with AmountInCents 0.
	IssueBadAmount IssueReason = "bad_amount"
	// IssueBadDailyCash means the daily-cash string did not parse as an
	// integer percentage. The transaction is kept with DailyCash 0.
	IssueBadDailyCash IssueReason = "bad_daily_cash"
	// IssueDateDefaulted means no date rule matched the time description
	// and the capture date was used instead.
	IssueDateDefaulted IssueReason = "date_defaulted"
)

// Issue records one recoverable problem found while parsing a block.
// Block is the zero-based index of the transaction block the problem
// belongs to, in screenshot order.
type Issue struct {
	Block  int         `json:"block"`
	Reason IssueReason `json:"reason"`
	Detail string      `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("block %d: %s", i.Block, i.Reason)
	}
	return fmt.Sprintf("block %d: %s (%s)", i.Block, i.Reason, i.Detail)
}
