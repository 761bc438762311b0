package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func setupTestApp() *fiber.App {
	return New(zerolog.Nop(), "")
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}

	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestConvertEndpointRequiresInput(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("POST", "/api/convert", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode == fiber.StatusOK {
		t.Error("expected non-200 for missing input")
	}
}

func TestConvertEndpointInlineText(t *testing.T) {
	app := setupTestApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("text", "Apple Store\n$12.34\nCupertino CA\n3%\nYesterday\n")
	form.WriteField("capturedAt", "2021-01-20T15:04:00Z")
	form.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result ConvertResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Count != 1 {
		t.Fatalf("count: got %d, want 1", result.Count)
	}

	txn := result.Transactions[0]
	if txn.Payee != "Apple Store" {
		t.Errorf("payee: got %q", txn.Payee)
	}
	if txn.AmountInCents != -1234 {
		t.Errorf("amount: got %d, want -1234", txn.AmountInCents)
	}
	if result.TotalCharges != "12.34" {
		t.Errorf("totalCharges: got %q", result.TotalCharges)
	}
	if result.TotalCredits != "0.00" {
		t.Errorf("totalCredits: got %q", result.TotalCredits)
	}
	if result.RequestID == "" {
		t.Error("expected a request id")
	}
	if len(result.CSV) == 0 || result.CSV[:4] != "Date" {
		t.Errorf("CSV payload missing header: %q", result.CSV)
	}
}

func TestConvertEndpointTextFileUpload(t *testing.T) {
	app := setupTestApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "screenshot.txt")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("Payment\n+$25.00\nACH Transfer\nYesterday\n"))
	form.WriteField("capturedAt", "2021-01-20T15:04:00Z")
	form.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var result ConvertResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("count: got %d, want 1", result.Count)
	}
	if result.TotalCredits != "25.00" {
		t.Errorf("totalCredits: got %q", result.TotalCredits)
	}
}

func TestConvertEndpointRejectsBadTimestamp(t *testing.T) {
	app := setupTestApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("text", "Apple Store\n$1.00\nMemo\nYesterday\n")
	form.WriteField("capturedAt", "last tuesday")
	form.Close()

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
