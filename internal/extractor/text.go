// Package extractor turns input artifacts (OCR text dumps, screenshots,
// PDF statement exports) into the ordered line sequence the parser
// consumes: one string per detected text line, screenshot top to bottom.
package extractor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lines reads a plain-text OCR dump and returns its non-empty lines,
// trimmed, in order.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

// LinesFromString splits raw text into trimmed non-empty lines.
func LinesFromString(text string) []string {
	lines, _ := Lines(strings.NewReader(text))
	return lines
}
