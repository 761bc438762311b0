// Package parser reconstructs card transactions from the OCR text of a
// transaction-list screenshot. The input has no delimiters between blocks
// and field counts vary, so segmentation is heuristic: a stateful pass over
// the line sequence, block by block, with recoverable problems reported as
// issues rather than errors.
package parser

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cardsight/cardexport/internal/model"
)

// Result holds the transactions parsed from one screenshot together with
// every recoverable problem found along the way. Transactions appear in
// screenshot order. Issues reference transactions by block index; a
// truncation issue's index is one past the last emitted transaction.
type Result struct {
	Transactions []model.Transaction `json:"transactions"`
	Issues       []model.Issue       `json:"issues,omitempty"`
}

// Option configures a parse call.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger routes segmentation tracing to the given logger. Without it
// the parser is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// Parse converts OCR lines, in screenshot top-to-bottom order, into
// transactions. capturedAt is the screenshot capture time; every relative
// time description is resolved against it. Parsing stops at a truncated
// trailing block; everything before it is still returned.
func Parse(lines []string, capturedAt time.Time, opts ...Option) Result {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	seg := &segmenter{stack: newLineStack(lines), log: o.log}

	var result Result
	block := 0
	for {
		it, segIssues := seg.next()
		result.Issues = appendIssues(result.Issues, block, segIssues)
		if it == nil {
			break
		}

		txn, finIssues := finalize(*it, capturedAt)
		result.Issues = appendIssues(result.Issues, block, finIssues)
		result.Transactions = append(result.Transactions, txn)
		block++
	}

	o.log.Info().
		Int("transactions", len(result.Transactions)).
		Int("issues", len(result.Issues)).
		Msg("parse complete")

	return result
}

func appendIssues(issues []model.Issue, block int, found []blockIssue) []model.Issue {
	for _, bi := range found {
		issues = append(issues, model.Issue{Block: block, Reason: bi.reason, Detail: bi.detail})
	}
	return issues
}
