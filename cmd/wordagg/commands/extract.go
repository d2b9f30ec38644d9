package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/wordagg/aggregator"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Format string
}

// extractOutput is the structured form of the extract command's output.
type extractOutput struct {
	Path  string   `json:"path"  yaml:"path"`
	Count int      `json:"count" yaml:"count"`
	Keys  []string `json:"keys"  yaml:"keys"`
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: wordagg extract [flags] <file>\n\n")
		Writef(output, "Print the top-level keys of one JSON dictionary, sorted and unnormalized.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  wordagg extract words/en.json\n")
		Writef(output, "  wordagg extract --format json words/en.json\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	path := fs.Arg(0)
	keys, err := aggregator.ExtractKeys(path)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, extractOutput{Path: path, Count: len(keys), Keys: keys}, flags.Format)
	}
	for _, k := range keys {
		Writef(os.Stdout, "%s\n", k)
	}
	return nil
}
