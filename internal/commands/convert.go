package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cardsight/cardexport/internal/config"
	"github.com/cardsight/cardexport/internal/extractor"
	"github.com/cardsight/cardexport/internal/model"
	"github.com/cardsight/cardexport/internal/parser"
	"github.com/cardsight/cardexport/internal/writer"
)

func newConvertCommand(cfg **config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		capturedAtFlag  string
		outputFlag      string
		excludePending  bool
		excludeDeclined bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input> [input2 ...]",
		Short: "Convert screenshot OCR text, images, or PDF exports to CSV",
		Long: `Convert reads each input (a .txt OCR dump, a screenshot image run
through Tesseract, or a PDF statement export), reconstructs the
transactions, and writes one CSV file per input.

Relative dates like "Yesterday" or "2 hours ago" are resolved against the
capture time: the --captured-at flag if given, otherwise the input file's
modification time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			excl := (*cfg).Export
			if cmd.Flags().Changed("exclude-pending") {
				excl.ExcludePending = excludePending
			}
			if cmd.Flags().Changed("exclude-declined") {
				excl.ExcludeDeclined = excludeDeclined
			}

			for _, inputPath := range args {
				outPath := outputFlag
				if outPath == "" || len(args) > 1 {
					outPath = defaultOutputPath(inputPath)
				}
				if err := convertFile(inputPath, outPath, capturedAtFlag, excl, *log); err != nil {
					return fmt.Errorf("processing %s: %w", inputPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&capturedAtFlag, "captured-at", "", "screenshot capture time, RFC 3339 (default: input file mtime)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output CSV path (default: input path with .csv extension)")
	cmd.Flags().BoolVar(&excludePending, "exclude-pending", false, "drop pending transactions from the export")
	cmd.Flags().BoolVar(&excludeDeclined, "exclude-declined", false, "drop declined transactions from the export")

	return cmd
}

func convertFile(inputPath, outPath, capturedAtFlag string, excl config.ExportConfig, log zerolog.Logger) error {
	capturedAt, err := captureTime(inputPath, capturedAtFlag)
	if err != nil {
		return err
	}

	lines, err := extractor.FromFile(inputPath)
	if err != nil {
		return err
	}

	log.Debug().Str("input", inputPath).Int("lines", len(lines)).Time("capturedAt", capturedAt).Msg("extracted lines")

	result := parser.Parse(lines, capturedAt, parser.WithLogger(log))
	for _, issue := range result.Issues {
		log.Warn().Str("input", inputPath).Msg(issue.String())
	}

	txns := result.Transactions
	if excl.ExcludePending {
		txns = model.FilterPending(txns, false)
	}
	if excl.ExcludeDeclined {
		txns = model.FilterDeclined(txns, false)
	}

	if err := writer.WriteToFile(outPath, txns); err != nil {
		return err
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outPath).
		Int("transactions", len(txns)).
		Int("issues", len(result.Issues)).
		Msg("converted")

	return nil
}

// captureTime resolves the reference time for relative date descriptions.
// The file's modification time is a good default for a screenshot saved
// right after capture.
func captureTime(inputPath, flagValue string) (time.Time, error) {
	if flagValue != "" {
		t, err := time.Parse(time.RFC3339, flagValue)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --captured-at %q: use RFC 3339: %w", flagValue, err)
		}
		return t, nil
	}
	fi, err := os.Stat(inputPath)
	if err != nil {
		return time.Time{}, fmt.Errorf("input file not found: %s", inputPath)
	}
	return fi.ModTime(), nil
}

func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
}
