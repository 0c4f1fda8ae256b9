package errors

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Error types for the line selector
type ErrorType string

const (
	// Argument errors
	ErrorTypeArgument ErrorType = "argument"

	// Input errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypePermission   ErrorType = "permission"
	ErrorTypeRead         ErrorType = "read"
	ErrorTypeWrite        ErrorType = "write"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Run outcome errors
	ErrorTypeUnseen ErrorType = "unseen"

	// Internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// ArgumentError represents command line tokens that are not valid matchers
type ArgumentError struct {
	Type      ErrorType
	Arguments []string
	Timestamp time.Time
}

// NewArgumentError creates a new argument error for the given tokens
func NewArgumentError(args []string) *ArgumentError {
	return &ArgumentError{
		Type:      ErrorTypeArgument,
		Arguments: append([]string(nil), args...),
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	switch len(e.Arguments) {
	case 0:
		return "No matchers provided"
	case 1:
		return fmt.Sprintf("%q is not a valid line number, offsets start from 1", e.Arguments[0])
	}

	quoted := make([]string, len(e.Arguments))
	for i, arg := range e.Arguments {
		quoted[i] = strconv.Quote(arg)
	}
	quoted[len(quoted)-1] = "and " + quoted[len(quoted)-1]
	return fmt.Sprintf("%s are not valid line numbers, offsets start from 1", strings.Join(quoted, ", "))
}

// InternalError represents a broken invariant, a programming defect rather
// than bad input
type InternalError struct {
	Type      ErrorType
	Component string
	Message   string
	Timestamp time.Time
}

// NewInternalError creates a new internal error
func NewInternalError(component, format string, args ...interface{}) *InternalError {
	return &InternalError{
		Type:      ErrorTypeInternal,
		Component: component,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Component, e.Message)
}

// UnseenIndexesError reports requested indexes that never appeared in the input
type UnseenIndexesError struct {
	Type      ErrorType
	LinesSeen int
	Indexes   []int
	Timestamp time.Time
}

// NewUnseenIndexesError creates a new unseen indexes error
func NewUnseenIndexesError(linesSeen int, indexes []int) *UnseenIndexesError {
	return &UnseenIndexesError{
		Type:      ErrorTypeUnseen,
		LinesSeen: linesSeen,
		Indexes:   append([]int(nil), indexes...),
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *UnseenIndexesError) Error() string {
	parts := make([]string, len(e.Indexes))
	for i, index := range e.Indexes {
		parts[i] = strconv.Itoa(index)
	}
	return fmt.Sprintf("Only saw %d lines of input, can't print lines: %s", e.LinesSeen, strings.Join(parts, ", "))
}

// FileError represents a failure opening or reading the input
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeFileNotFound
	switch {
	case isPermissionError(err):
		errorType = ErrorTypePermission
	case op == "read":
		errorType = ErrorTypeRead
	case op == "write":
		errorType = ErrorTypeWrite
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// isPermissionError checks if the error is a permission error
func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.HasSuffix(errStr, "permission denied") || strings.HasSuffix(errStr, "access denied")
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
