package aggerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrRead indicates the input directory or an input file could not be read.
	ErrRead = errors.New("read error")

	// ErrParse indicates an input file could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrNotObject indicates valid JSON whose top-level value is not an object.
	ErrNotObject = errors.New("top-level value is not an object")

	// ErrWrite indicates the output word list could not be written.
	ErrWrite = errors.New("write error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ReadError represents an I/O failure on the input side.
type ReadError struct {
	// Path is the directory or file that could not be read
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReadError) Error() string {
	msg := "read error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// ParseError represents a dictionary file that is not a JSON object.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// NotObject is true when the document is valid JSON but not an object
	NotObject bool
	// Kind names the JSON type found at the top level when NotObject is set
	Kind string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.NotObject {
		msg += ": top-level value is " + kindOrUnknown(e.Kind) + ", want object"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func kindOrUnknown(kind string) string {
	if kind == "" {
		return "not an object"
	}
	return "a JSON " + kind
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrParse, and ErrNotObject when NotObject is set.
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	return target == ErrNotObject && e.NotObject
}

// WriteError represents a failure to create or write the output word list.
type WriteError struct {
	// Path is the output path
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
