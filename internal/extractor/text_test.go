package extractor

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	input := "Apple Store\n  $12.34  \n\n\nCupertino CA\n"

	lines, err := Lines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Apple Store", "$12.34", "Cupertino CA"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLinesFromStringEmpty(t *testing.T) {
	if lines := LinesFromString("  \n \n"); lines != nil {
		t.Errorf("expected no lines, got %v", lines)
	}
}
