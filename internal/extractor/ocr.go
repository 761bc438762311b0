package extractor

import (
	"fmt"
	"os/exec"
	"strings"
)

// ExtractImageLines runs Tesseract OCR over a screenshot image and returns
// the recognized text lines in top-to-bottom order.
// Requires the tesseract binary (tesseract-ocr package).
func ExtractImageLines(path string) ([]string, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, fmt.Errorf("tesseract not available (install tesseract-ocr): %w", err)
	}

	// PSM 6: assume a single uniform block of text. The transaction list is
	// one left-aligned column, which other segmentation modes split
	// unpredictably.
	cmd := exec.Command("tesseract", path, "stdout", "-l", "eng", "--psm", "6")
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("tesseract failed: %v (stderr: %s)", err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("tesseract failed: %w", err)
	}

	lines := LinesFromString(string(out))
	if len(lines) == 0 {
		return nil, fmt.Errorf("tesseract produced no text for %q", path)
	}
	return lines, nil
}
