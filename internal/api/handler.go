// Package api exposes the conversion pipeline over HTTP.
package api

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cardsight/cardexport/internal/buildinfo"
	"github.com/cardsight/cardexport/internal/extractor"
	"github.com/cardsight/cardexport/internal/model"
	"github.com/cardsight/cardexport/internal/parser"
	"github.com/cardsight/cardexport/internal/writer"
)

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
	RequestID    string              `json:"requestId,omitempty"`
	CapturedAt   time.Time           `json:"capturedAt,omitempty"`
	Transactions []model.Transaction `json:"transactions"`
	Issues       []model.Issue       `json:"issues,omitempty"`
	CSV          string              `json:"csv,omitempty"`
	Count        int                 `json:"count"`
	TotalCharges string              `json:"totalCharges,omitempty"`
	TotalCredits string              `json:"totalCredits,omitempty"`
}

// New builds the fiber app with all routes registered. The logger is made
// available to handlers through request locals.
func New(log zerolog.Logger, staticDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("logger", log)
		return c.Next()
	})

	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)

	if staticDir != "" {
		app.Static("/", staticDir)
	}

	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": buildinfo.Version,
	})
}

// HandleConvert accepts a screenshot OCR dump (multipart "file" upload or
// inline "text" form field) plus an optional "capturedAt" RFC 3339
// timestamp, and returns the parsed transactions with their CSV rendering.
func HandleConvert(c *fiber.Ctx) error {
	log := requestLogger(c)
	requestID := uuid.NewString()

	capturedAt := time.Now()
	if v := c.FormValue("capturedAt"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid capturedAt %q: use RFC 3339", v))
		}
		capturedAt = t
	}

	lines, err := requestLines(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(lines) == 0 {
		return writeError(c, fiber.StatusBadRequest, "no input: upload a form field 'file' or provide 'text'")
	}

	result := parser.Parse(lines, capturedAt, parser.WithLogger(log))

	txns := result.Transactions
	if c.FormValue("excludePending") == "true" {
		txns = model.FilterPending(txns, false)
	}
	if c.FormValue("excludeDeclined") == "true" {
		txns = model.FilterDeclined(txns, false)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}

	charges, credits := totals(txns)

	log.Info().
		Str("requestId", requestID).
		Int("lines", len(lines)).
		Int("transactions", len(txns)).
		Int("issues", len(result.Issues)).
		Msg("convert request")

	return c.JSON(ConvertResponse{
		Success:      true,
		RequestID:    requestID,
		CapturedAt:   capturedAt,
		Transactions: txns,
		Issues:       result.Issues,
		CSV:          writer.Render(txns),
		Count:        len(txns),
		TotalCharges: charges.StringFixed(2),
		TotalCredits: credits.StringFixed(2),
	})
}

// requestLines pulls the OCR line sequence out of the request: an uploaded
// file routed by extension, or the raw "text" form field.
func requestLines(c *fiber.Ctx) ([]string, error) {
	header, err := c.FormFile("file")
	if err != nil {
		if text := c.FormValue("text"); text != "" {
			return extractor.LinesFromString(text), nil
		}
		return nil, nil
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".txt", ".text":
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("reading upload: %w", err)
		}
		defer f.Close()
		return extractor.Lines(f)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".pdf":
		// Image and PDF extraction need a real file on disk.
		path, cleanup, err := saveUpload(c, header.Filename)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		return extractor.FromFile(path)
	default:
		return nil, fmt.Errorf("unsupported upload type %q", ext)
	}
}

func saveUpload(c *fiber.Ctx, filename string) (string, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	src, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("reading upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("saving upload: %w", err)
	}
	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

// totals sums charges and credits separately, in dollars.
func totals(txns []model.Transaction) (charges, credits decimal.Decimal) {
	for _, txn := range txns {
		amount := decimal.New(int64(txn.AmountInCents), -2)
		if txn.AmountInCents < 0 {
			charges = charges.Add(amount.Neg())
		} else {
			credits = credits.Add(amount)
		}
	}
	return charges, credits
}

func requestLogger(c *fiber.Ctx) zerolog.Logger {
	if log, ok := c.Locals("logger").(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []model.Transaction{},
	})
}
