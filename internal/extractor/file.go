package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile extracts OCR lines from an input file, routed by extension:
// plain text dumps are read directly, images go through Tesseract, and PDF
// statement exports go through the PDF text extractor.
func FromFile(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer f.Close()
		return Lines(f)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return ExtractImageLines(path)
	case ".pdf":
		return ExtractPDFLines(path)
	default:
		return nil, fmt.Errorf("unsupported input type %q; expected a .txt OCR dump, an image, or a .pdf", filepath.Ext(path))
	}
}
