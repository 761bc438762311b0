package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFLines reads a PDF statement export and returns its text lines
// across all pages, in order. Extraction is gated on a readability check so
// a PDF with broken font encodings fails loudly instead of feeding garbage
// to the parser.
func ExtractPDFLines(path string) ([]string, error) {
	pages, err := extractPages(path)
	if err != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %w", err)
	}
	if !isReadableText(pages) {
		return nil, fmt.Errorf("no readable text in %q; the PDF may be image-based or use undecodable font encodings", path)
	}

	var lines []string
	for _, page := range pages {
		lines = append(lines, LinesFromString(page)...)
	}
	return lines, nil
}

func extractPages(path string) (pages []string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

// isReadableText requires enough text and a high share of plain ASCII.
// Identity-encoded fonts decode into letter-like garbage, so the check is
// strict ASCII rather than unicode.IsLetter.
func isReadableText(pages []string) bool {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"$%&@#!?+=*", r) {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}
