package aggregator

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/internal/maputil"
)

// ExtractKeys reads the dictionary file at path and returns the keys of its
// top-level JSON object in sorted order.
//
// A file that cannot be read yields a *aggerrors.ReadError. Invalid UTF-8,
// invalid JSON, or a top-level value that is not an object yields a
// *aggerrors.ParseError.
func ExtractKeys(path string) ([]string, error) {
	data, err := readDictionary(path)
	if err != nil {
		return nil, err
	}
	return ExtractKeysBytes(path, data)
}

func readDictionary(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &aggerrors.ReadError{Path: path, Message: "reading dictionary", Cause: err}
	}
	return data, nil
}

// ExtractKeysBytes is like ExtractKeys for an in-memory document.
// name identifies the document in errors.
//
// Values are syntax-checked but never decoded, so any valid JSON value is
// accepted, including numbers outside the float64 range.
func ExtractKeysBytes(name string, data []byte) ([]string, error) {
	if off := invalidUTF8Offset(data); off >= 0 {
		perr := &aggerrors.ParseError{Path: name, Message: "invalid UTF-8"}
		perr.Line, perr.Column = position(data, int64(off)+1)
		return nil, perr
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, syntaxError(name, data, err)
	}
	if kind := jsonKind(raw); kind != "object" {
		return nil, &aggerrors.ParseError{Path: name, NotObject: true, Kind: kind}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, syntaxError(name, data, err)
	}
	return maputil.SortedKeys(obj), nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func syntaxError(name string, data []byte, err error) error {
	perr := &aggerrors.ParseError{Path: name, Message: "invalid JSON", Cause: err}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		perr.Line, perr.Column = position(data, se.Offset)
	}
	return perr
}

// position converts a json.SyntaxError offset, which counts the offending
// byte, into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	column = len(prefix) - bytes.LastIndexByte(prefix, '\n') - 1
	if column < 1 {
		column = 1
	}
	return line, column
}

// jsonKind names the type of a syntactically valid JSON value by its first
// significant byte.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "value"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
