// Package commands provides CLI command handlers for wordagg.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/wordagg/aggregator"
	"github.com/erraggy/wordagg/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", bytes)
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// newLogger returns a debug-level text logger on stderr when verbose is set,
// and a no-op logger otherwise.
func newLogger(verbose bool) aggregator.Logger {
	if !verbose {
		return aggregator.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return aggregator.NewSlogAdapter(slog.New(handler))
}
