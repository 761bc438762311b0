package parser

import (
	"strconv"
	"strings"
	"time"
)

// dateRule attempts to resolve a time description against the capture
// date. ok is false when the rule does not apply.
type dateRule func(desc string, capturedAt time.Time) (time.Time, bool)

// Resolution order matters: "Yesterday" would otherwise also satisfy the
// weekday scan's regex family, and relative offsets must lose to absolute
// dates.
var dateRules = []dateRule{
	resolveYesterday,
	resolveWeekday,
	resolveAbsolute,
	resolveHoursAgo,
	resolveMinutesAgo,
}

// resolveDate turns a free-text time description into an absolute time.
// When no rule applies the capture date itself is returned ("just now")
// and ok is false so the caller can record the default.
func resolveDate(desc string, capturedAt time.Time) (time.Time, bool) {
	for _, rule := range dateRules {
		if t, ok := rule(desc, capturedAt); ok {
			return t, true
		}
	}
	return capturedAt, false
}

func resolveYesterday(desc string, capturedAt time.Time) (time.Time, bool) {
	if desc != "Yesterday" {
		return time.Time{}, false
	}
	return capturedAt.AddDate(0, 0, -1), true
}

// resolveWeekday scans 0..7 days back from the capture date for a day
// whose weekday name equals the description. Offset 0 is checked first,
// so a description naming the capture date's own weekday resolves to the
// capture date, never to the week before.
func resolveWeekday(desc string, capturedAt time.Time) (time.Time, bool) {
	for offset := 0; offset <= 7; offset++ {
		candidate := capturedAt.AddDate(0, 0, -offset)
		if candidate.Weekday().String() == desc {
			return candidate, true
		}
	}
	return time.Time{}, false
}

func resolveAbsolute(desc string, _ time.Time) (time.Time, bool) {
	t, err := time.Parse("01/02/06", desc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveHoursAgo(desc string, capturedAt time.Time) (time.Time, bool) {
	n, ok := leadingValue(desc, "hour")
	if !ok {
		return time.Time{}, false
	}
	return capturedAt.Add(-time.Duration(n) * time.Hour), true
}

func resolveMinutesAgo(desc string, capturedAt time.Time) (time.Time, bool) {
	n, ok := leadingValue(desc, "minute")
	if !ok {
		return time.Time{}, false
	}
	return capturedAt.Add(-time.Duration(n) * time.Minute), true
}

// leadingValue parses the integer that starts a description like
// "5 minutes ago", but only when the description mentions the given unit.
func leadingValue(desc, unit string) (int, bool) {
	if !strings.Contains(desc, unit) {
		return 0, false
	}
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
