package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeConfig        ErrorType = "config"
	ErrorTypePDFParse      ErrorType = "pdf_parse"
	ErrorTypeEmptyContent  ErrorType = "empty_content"
	ErrorTypeUpstream      ErrorType = "upstream"
	ErrorTypeUpstreamEmpty ErrorType = "upstream_empty"
	ErrorTypeExport        ErrorType = "export"
	ErrorTypeInternal      ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error (bad or missing upload)
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewConfigError creates a new configuration error (operator-fixable, not retryable)
func NewConfigError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConfig,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewPDFParseError creates a new PDF parse error
func NewPDFParseError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypePDFParse,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewEmptyContentError creates an error for PDFs with no extractable text
func NewEmptyContentError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeEmptyContent,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamError creates an error for summarization service failures
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstream,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewUpstreamEmptyError creates an error for responses with no usable content
func NewUpstreamEmptyError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamEmpty,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewExportError creates a new DOCX conversion error
func NewExportError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExport,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
