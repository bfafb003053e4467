package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

type mockList []int

func (m mockList) IDs() []int {
	return m
}

type mockPrinter struct {
	Title string
}

func (m mockPrinter) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "title: %s\n", m.Title)
	return err
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests - JSON Mode
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				if data.(map[string]any)["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", data)
				}
			},
		},
		{
			name: "struct with ID",
			data: mockDataWithID{ID: 123, Name: "Test"},
			validate: func(t *testing.T, data any) {
				if data.(map[string]any)["Name"] != "Test" {
					t.Errorf("Expected data.Name to be 'Test', got %v", data)
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, data any) {
				if data != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(true, false)
			if err := formatter.Success(tt.data); err != nil {
				t.Fatalf("Success() returned error: %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result["data"])
		})
	}
}

// TestOutputFormatter_Success_JSONWinsOverQuietWithoutID ensures --json --quiet
// still emits an envelope when there is no ID to print.
func TestOutputFormatter_Success_JSONWinsOverQuietWithoutID(t *testing.T) {
	formatter, out, _ := newTestFormatter(true, true)
	if err := formatter.Success(mockDataWithoutID{Name: "x"}); err != nil {
		t.Fatalf("Success() returned error: %v", err)
	}
	if !strings.Contains(out.String(), `"success":true`) {
		t.Errorf("Expected JSON envelope, got %q", out.String())
	}
}

// ============================================================================
// Success Method Tests - Quiet Mode
// ============================================================================

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single ID", mockDataWithID{ID: 42}, "42\n"},
		{"ID list", mockList{1, 2, 3}, "1\n2\n3\n"},
		{"empty list", mockList{}, ""},
		{"no ID", mockDataWithoutID{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, true)
			if err := formatter.Success(tt.data); err != nil {
				t.Fatalf("Success() returned error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

// ============================================================================
// Success Method Tests - Human Mode
// ============================================================================

func TestOutputFormatter_Success_Human(t *testing.T) {
	formatter, out, _ := newTestFormatter(false, false)

	if err := formatter.Success(mockPrinter{Title: "Buy milk"}); err != nil {
		t.Fatalf("Success() returned error: %v", err)
	}
	if out.String() != "title: Buy milk\n" {
		t.Errorf("Expected PrintHuman output, got %q", out.String())
	}

	out.Reset()
	if err := formatter.Success(mockDataWithoutID{Name: "plain", Value: 7}); err != nil {
		t.Fatalf("Success() returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Name:plain") {
		t.Errorf("Expected %%+v fallback, got %q", out.String())
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter, out, errOut := newTestFormatter(true, false)

	if err := formatter.ErrorWithSuggestion("NOT_FOUND", "task 7 not found", "Run task list"); err != nil {
		t.Fatalf("ErrorWithSuggestion() returned error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors go to stdout, stderr got %q", errOut.String())
	}

	var result struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result.Success || result.Error.Code != "NOT_FOUND" || result.Error.Suggestion != "Run task list" {
		t.Errorf("Unexpected error envelope: %+v", result)
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	formatter, out, _ := newTestFormatter(true, false)
	if err := formatter.Error("ERROR", "boom"); err != nil {
		t.Fatalf("Error() returned error: %v", err)
	}
	if strings.Contains(out.String(), "suggestion") {
		t.Errorf("Expected no suggestion key, got %q", out.String())
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter, out, errOut := newTestFormatter(false, false)

	if err := formatter.ErrorWithSuggestion("AUTH", "bad credentials", "Check your password"); err != nil {
		t.Fatalf("ErrorWithSuggestion() returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Human errors go to stderr, stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error: bad credentials") {
		t.Errorf("Missing error line in %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "💡 Suggestion: Check your password") {
		t.Errorf("Missing suggestion line in %q", errOut.String())
	}
}
