package domain

import "fmt"

// Error codes for domain errors
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeFileNotFound      = "FILE_NOT_FOUND"
	ErrCodeAnalysisError     = "ANALYSIS_ERROR"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeSessionError      = "SESSION_ERROR"
)

// DomainError is the common error type for all domain-level failures
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a DomainError with an arbitrary code
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError creates an error for unreadable or non-text input
func NewInvalidInputError(message string, cause error) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// NewValidationError creates an error for invalid request parameters
func NewValidationError(message string) error {
	return DomainError{Code: ErrCodeInvalidInput, Message: message}
}

// NewFileNotFoundError creates an error for a missing file
func NewFileNotFoundError(path string, cause error) error {
	return DomainError{Code: ErrCodeFileNotFound, Message: fmt.Sprintf("file not found: %s", path), Cause: cause}
}

// NewAnalysisError creates an error for analysis failures
func NewAnalysisError(message string, cause error) error {
	return DomainError{Code: ErrCodeAnalysisError, Message: message, Cause: cause}
}

// NewConfigError creates an error for configuration failures
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}

// NewOutputError creates an error for output failures
func NewOutputError(message string, cause error) error {
	return DomainError{Code: ErrCodeOutputError, Message: message, Cause: cause}
}

// NewUnsupportedFormatError creates an error for an unknown output format
func NewUnsupportedFormatError(format string) error {
	return DomainError{Code: ErrCodeUnsupportedFormat, Message: fmt.Sprintf("unsupported format: %s", format)}
}

// NewSessionError creates an error for session store failures
func NewSessionError(message string, cause error) error {
	return DomainError{Code: ErrCodeSessionError, Message: message, Cause: cause}
}
