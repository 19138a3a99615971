// Package errors provides error types with actionable suggestions for the
// penguins dashboard. Errors carry enough context for a user to fix a bad
// config file, a missing dataset, or an attribute the charts cannot plot.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrDataset indicates the dataset could not be loaded or parsed.
	ErrDataset = errors.New("dataset error")
	// ErrAttribute indicates a request for a column that is not a numeric attribute.
	ErrAttribute = errors.New("attribute error")
	// ErrRender indicates a chart or table could not be rendered.
	ErrRender = errors.New("render error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// PenguinError is the base error type for the dashboard.
// It wraps an underlying error and provides additional context.
type PenguinError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrDataset).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, column name).
	Details map[string]string
}

// Error implements the error interface.
func (e *PenguinError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *PenguinError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *PenguinError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details, suggestion and doc link.
func (e *PenguinError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *PenguinError) WithDetails(key, value string) *PenguinError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *PenguinError) WithCause(cause error) *PenguinError {
	e.Cause = cause
	return e
}

// New creates a new PenguinError with the given kind and message.
func New(kind error, message string) *PenguinError {
	return &PenguinError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *PenguinError {
	return &PenguinError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *PenguinError {
	return &PenguinError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As is a convenience wrapper so callers don't need to import both
// this package and the standard library errors package.
func As(err error) (*PenguinError, bool) {
	var pe *PenguinError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
