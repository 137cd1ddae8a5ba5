package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// Session errors
	if strings.Contains(errMsg, "not logged in") {
		return NewErrorWithSuggestion(err,
			"Log in first with 'mentorctl auth login'")
	}

	if strings.Contains(errMsg, "Invalid session") || strings.Contains(errMsg, "expired") {
		return NewErrorWithSuggestion(err,
			"Your session is no longer valid. Run 'mentorctl auth login' to start a new one")
	}

	// Capability errors
	if strings.Contains(errMsg, "requires a mentor account") {
		return NewErrorWithSuggestion(err,
			"Only mentors can manage session requests. Ask an administrator to promote your account")
	}

	if strings.Contains(errMsg, "requires an administrator account") {
		return NewErrorWithSuggestion(err,
			"This command is restricted to platform administrators")
	}

	// Login failures
	if strings.Contains(errMsg, "Login failed") {
		return NewErrorWithSuggestion(err,
			"Double-check your email and password. New users can register with 'mentorctl auth register'")
	}

	// Network errors
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no route to host") {
		return NewErrorWithSuggestion(err,
			"Could not reach the Free Mentors platform. Check your network and the --api-url setting")
	}

	if strings.Contains(errMsg, "context deadline exceeded") || strings.Contains(errMsg, "Client.Timeout") {
		return NewErrorWithSuggestion(err,
			"The platform did not respond in time. Try again, or check the API endpoint with --api-url")
	}

	// Storage errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check the permissions of your ~/.mentorctl directory")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
