package domain

import (
	"errors"
	"testing"
)

// Error tests

func TestDomainError_Error(t *testing.T) {
	// Without cause
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	expected := "[TEST_ERROR] Test message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	// With cause
	cause := errors.New("underlying error")
	errWithCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}
	expectedWithCause := "[TEST_ERROR] Test message: underlying error"
	if errWithCause.Error() != expectedWithCause {
		t.Errorf("Expected '%s', got '%s'", expectedWithCause, errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	errNoCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestNewDomainError(t *testing.T) {
	cause := errors.New("cause")
	err := NewDomainError("CODE", "message", cause)

	domainErr, ok := err.(DomainError)
	if !ok {
		t.Fatal("Should return DomainError type")
	}
	if domainErr.Code != "CODE" {
		t.Errorf("Expected code 'CODE', got '%s'", domainErr.Code)
	}
	if domainErr.Message != "message" {
		t.Errorf("Expected message 'message', got '%s'", domainErr.Message)
	}
	if domainErr.Cause != cause {
		t.Error("Cause should be set")
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"invalid input", NewInvalidInputError("bad input", nil), ErrCodeInvalidInput},
		{"validation", NewValidationError("validation failed"), ErrCodeInvalidInput},
		{"analysis", NewAnalysisError("analysis failed", nil), ErrCodeAnalysisError},
		{"config", NewConfigError("invalid config", nil), ErrCodeConfigError},
		{"output", NewOutputError("write failed", nil), ErrCodeOutputError},
		{"session", NewSessionError("store failed", nil), ErrCodeSessionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr := tt.err.(DomainError)
			if domainErr.Code != tt.wantCode {
				t.Errorf("Expected code '%s', got '%s'", tt.wantCode, domainErr.Code)
			}
		})
	}
}

func TestNewFileNotFoundError(t *testing.T) {
	err := NewFileNotFoundError("/path/to/file", nil)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeFileNotFound {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeFileNotFound, domainErr.Code)
	}
	if domainErr.Message != "file not found: /path/to/file" {
		t.Errorf("Unexpected message: %s", domainErr.Message)
	}
}

func TestNewUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError("xml")

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeUnsupportedFormat {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeUnsupportedFormat, domainErr.Code)
	}
	if domainErr.Message != "unsupported format: xml" {
		t.Errorf("Unexpected message: %s", domainErr.Message)
	}
}

// Severity tests

func TestSeverity_Constants(t *testing.T) {
	severities := map[Severity]string{
		SeverityError:   "error",
		SeverityWarning: "warning",
		SeverityInfo:    "info",
	}

	for s, expected := range severities {
		if string(s) != expected {
			t.Errorf("Severity %s should equal '%s'", s, expected)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityRank(SeverityError) <= SeverityRank(SeverityWarning) {
		t.Error("error should rank above warning")
	}
	if SeverityRank(SeverityWarning) <= SeverityRank(SeverityInfo) {
		t.Error("warning should rank above info")
	}
	if SeverityRank(Severity("bogus")) != 0 {
		t.Error("unknown severity should rank 0")
	}
}

// Output format tests

func TestOutputFormat_Constants(t *testing.T) {
	formats := map[OutputFormat]string{
		OutputFormatText: "text",
		OutputFormatJSON: "json",
		OutputFormatYAML: "yaml",
		OutputFormatCSV:  "csv",
	}

	for format, expected := range formats {
		if string(format) != expected {
			t.Errorf("OutputFormat %s should equal '%s'", format, expected)
		}
	}
}

// Category tests

func TestCategories_FixedOrder(t *testing.T) {
	if len(Categories) != 11 {
		t.Fatalf("Expected 11 categories, got %d", len(Categories))
	}
	if Categories[0] != CategorySyntax {
		t.Error("syntax must be the first category")
	}
	if Categories[len(Categories)-1] != CategoryMaintainability {
		t.Error("maintainability must be the last category")
	}

	seen := make(map[Category]bool)
	for _, c := range Categories {
		if seen[c] {
			t.Errorf("Duplicate category: %s", c)
		}
		seen[c] = true
	}
}

func TestMetrics_CoreDimensions(t *testing.T) {
	m := Metrics{Complexity: 8, Maintainability: 7, Testability: 6, Performance: 5}
	dims := m.CoreDimensions()

	if len(dims) != 4 {
		t.Fatalf("Expected 4 core dimensions, got %d", len(dims))
	}
	expected := []MetricValue{
		{"complexity", 8},
		{"maintainability", 7},
		{"testability", 6},
		{"performance", 5},
	}
	for i, want := range expected {
		if dims[i] != want {
			t.Errorf("Dimension %d: expected %+v, got %+v", i, want, dims[i])
		}
	}
}
