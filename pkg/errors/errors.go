package errors

import (
	"fmt"
)

// ParseError represents a failure to interpret a textual value such as a hex
// colour or a state name.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(input string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Input: input, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("parse error: %q", e.Input)
	}
	return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette, theme and settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError indicates a registry or selection failure for a named theme.
type ThemeError struct {
	Theme string
	Err   error
}

// NewThemeError constructs a ThemeError for the given theme name.
func NewThemeError(theme string, err error) error {
	return &ThemeError{Theme: theme, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme != "" {
		return fmt.Sprintf("theme error [%s]: %v", e.Theme, e.Err)
	}
	return fmt.Sprintf("theme error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
