package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn  ErrorCode = "AUTH-002"
	ErrCodeAuthUnauthorized ErrorCode = "AUTH-003"
	ErrCodeAuthValidation   ErrorCode = "AUTH-004"

	// Platform API errors (API-001 to API-099)
	ErrCodeAPIRequestFailed ErrorCode = "API-001"
	ErrCodeAPIBadResponse   ErrorCode = "API-002"
	ErrCodeAPIQueryRejected ErrorCode = "API-003"

	// Credential store errors (STORE-001 to STORE-099)
	ErrCodeStoreReadFailed  ErrorCode = "STORE-001"
	ErrCodeStoreWriteFailed ErrorCode = "STORE-002"
	ErrCodeStoreClearFailed ErrorCode = "STORE-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid   ErrorCode = "CONFIG-001"
	ErrCodeConfigUnmarshal ErrorCode = "CONFIG-002"
)

// ClientError represents an enhanced error with code and recovery suggestions
type ClientError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// New creates a new ClientError
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClientError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestions attaches recovery suggestions to the error
func (e *ClientError) WithSuggestions(suggestions ...string) *ClientError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}
