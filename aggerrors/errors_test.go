package aggerrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestReadError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ReadError{Path: "words", Message: "listing directory", Cause: fs.ErrNotExist}
		want := "read error for words: listing directory: file does not exist"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ReadError{}
		if err.Error() != "read error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrRead and the cause", func(t *testing.T) {
		err := &ReadError{Path: "a.json", Cause: fs.ErrPermission}
		if !errors.Is(err, ErrRead) {
			t.Error("ReadError should match ErrRead")
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("ReadError should unwrap to its cause")
		}
		if errors.Is(err, ErrParse) {
			t.Error("ReadError should not match ErrParse")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid character 'n'")
		err := &ParseError{
			Path:    "words/a.json",
			Line:    3,
			Column:  7,
			Message: "invalid JSON",
			Cause:   cause,
		}
		want := "parse error in words/a.json at line 3, column 7: invalid JSON: invalid character 'n'"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for non-object", func(t *testing.T) {
		err := &ParseError{Path: "b.json", NotObject: true, Kind: "array"}
		want := "parse error in b.json: top-level value is a JSON array, want object"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrNotObject) {
			t.Error("ParseError without NotObject should not match ErrNotObject")
		}
	})

	t.Run("Is matches ErrNotObject when flagged", func(t *testing.T) {
		err := &ParseError{NotObject: true}
		if !errors.Is(err, ErrNotObject) {
			t.Error("ParseError with NotObject should match ErrNotObject")
		}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError with NotObject should still match ErrParse")
		}
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("aggregator: %w", &ParseError{Path: "c.json", Line: 2})
		var parseErr *ParseError
		if !errors.As(wrapped, &parseErr) {
			t.Fatal("errors.As should extract ParseError")
		}
		if parseErr.Path != "c.json" || parseErr.Line != 2 {
			t.Errorf("unexpected fields: %+v", parseErr)
		}
	})
}

func TestWriteError(t *testing.T) {
	err := &WriteError{Path: "words.txt", Message: "refusing to write to symlink"}
	if err.Error() != "write error for words.txt: refusing to write to symlink" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrWrite) {
		t.Error("WriteError should match ErrWrite")
	}
	if errors.Is(err, ErrRead) {
		t.Error("WriteError should not match ErrRead")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "fold", Value: "upper", Message: "unknown fold mode"}
	if err.Error() != "configuration error for fold (value: upper): unknown fold mode" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if (&ConfigError{}).Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}
