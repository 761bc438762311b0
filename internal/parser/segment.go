package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cardsight/cardexport/internal/model"
)

// dailyCashLookahead bounds the scan for a "%" line in an eligible block.
// An unbounded scan would let one block with a dropped daily-cash line
// swallow every transaction after it.
const dailyCashLookahead = 3

var ellipsisPattern = regexp.MustCompile(`\.{3}`)

// blockIssue is a problem found while segmenting one block. The caller
// attaches the block index.
type blockIssue struct {
	reason model.IssueReason
	detail string
}

// segmenter drains a line stack one transaction block at a time.
type segmenter struct {
	stack *lineStack
	log   zerolog.Logger
}

// next extracts the next transaction block from the stack. A nil
// transaction with no issues means the stack is cleanly exhausted; a nil
// transaction with a truncation issue means the input ended mid-block and
// parsing should stop.
func (s *segmenter) next() (*model.IntermediateTransaction, []blockIssue) {
	payee, ok := s.stack.pop()
	if !ok {
		return nil, nil
	}

	var issues []blockIssue

	// Long payee names end in "..." and OCR can fuse the following amount
	// onto the same line. Split at the ellipsis and put the remainder back.
	if loc := ellipsisPattern.FindStringIndex(payee); loc != nil {
		if rest := payee[loc[1]:]; rest != "" {
			s.stack.push(rest)
			s.log.Trace().Str("fragment", rest).Msg("pushed back fused amount fragment")
		}
		payee = payee[:loc[1]]
	}

	// Payee names wrap onto extra lines. Keep absorbing lines until one
	// matches the amount pattern.
	var amount string
	for {
		candidate, ok := s.stack.pop()
		if !ok {
			return nil, append(issues, truncated("awaiting amount", payee))
		}
		if isAmount(candidate) {
			amount = candidate
			break
		}
		payee += " " + candidate
	}

	// Balance Adjustment blocks have their own shape: the third line is
	// either the dispute memo or already the time description.
	var memo, stashedTime string
	if payee == "Balance Adjustment" {
		third, ok := s.stack.pop()
		if !ok {
			return nil, append(issues, truncated("awaiting memo", payee))
		}
		if third == "Dispute - Provisional Adjustment" {
			memo = third
		} else {
			stashedTime = third
			memo = payee
		}
	} else {
		m, ok := s.stack.pop()
		if !ok {
			return nil, append(issues, truncated("awaiting memo", payee))
		}
		memo = m
	}

	// Daily-cash line, only for eligible blocks. Scan a bounded window for
	// a "%" line; on a miss, restore the examined lines and carry on
	// without one.
	var dailyCash string
	if isDailyCashEligible(payee, memo) {
		var examined []string
		for i := 0; i < dailyCashLookahead && s.stack.len() > 0; i++ {
			line, _ := s.stack.pop()
			if strings.ContainsRune(line, '%') {
				dailyCash = line
				break
			}
			examined = append(examined, line)
		}
		if dailyCash == "" {
			for i := len(examined) - 1; i >= 0; i-- {
				s.stack.push(examined[i])
			}
			issues = append(issues, blockIssue{model.IssueDailyCashMissing, payee})
		}
	}

	// Time description. "ago" can land on the next line and Family Sharing
	// separators split the text, so accumulate lines until a timestamp
	// pattern matches.
	timeDescription := stashedTime
	if timeDescription == "" {
		t, ok := s.stack.pop()
		if !ok {
			return nil, append(issues, truncated("awaiting timestamp", payee))
		}
		timeDescription = t
	}
	for !isTimestamp(timeDescription) && s.stack.len() > 0 {
		line, _ := s.stack.pop()
		timeDescription += " " + line
	}
	timeDescription = strings.ReplaceAll(timeDescription, "-", " ")
	timeDescription = strings.ReplaceAll(timeDescription, "•", " ")

	// Family Sharing prepends the family member's name to the timestamp
	// line ("NAME - Yesterday"). A description with spaces that does not
	// start with a digit is assumed to lead with the name; move it to the
	// memo.
	if strings.Contains(timeDescription, " ") && !startsWithDigit(timeDescription) {
		parts := strings.SplitN(timeDescription, " ", 2)
		memo = parts[0] + " - " + memo
		timeDescription = strings.TrimSpace(parts[1])
	}

	txn := &model.IntermediateTransaction{
		TimeDescription: timeDescription,
		Payee:           payee,
		Amount:          amount,
		DailyCash:       dailyCash,
		Memo:            memo,
		Pending:         isPending(memo),
		Declined:        isDeclined(memo),
	}

	s.log.Debug().
		Str("payee", txn.Payee).
		Str("amount", txn.Amount).
		Str("time", txn.TimeDescription).
		Bool("pending", txn.Pending).
		Bool("declined", txn.Declined).
		Msg("segmented block")

	return txn, issues
}

func truncated(state, payee string) blockIssue {
	return blockIssue{model.IssueTruncated, state + ", payee " + strconv.Quote(payee)}
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
