package errors

import (
	"fmt"
)

// ParseError represents a YAML decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
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

// PreferenceError reports a failure reading or writing the persisted theme
// preference.
type PreferenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// NewPreferenceError constructs a PreferenceError.
func NewPreferenceError(op, path string, err error) error {
	return &PreferenceError{Op: op, Path: path, Err: err}
}

func (e *PreferenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("preference %s failed: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("preference %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *PreferenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError reports a failure loading the application configuration file.
type ConfigError struct {
	Path string
	Err  error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(path string, err error) error {
	return &ConfigError{Path: path, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
