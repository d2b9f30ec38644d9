package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/erraggy/wordagg/aggregator"
	"github.com/erraggy/wordagg/config"
)

// RunFlags contains flags for the run command
type RunFlags struct {
	ConfigPath  string
	InputDir    string
	Output      string
	Extension   string
	Fold        string
	Workers     int
	SkipInvalid bool
	ASCIIOnly   bool
	Length      int
	DryRun      bool
	Quiet       bool
	Verbose     bool
	Format      string
}

// SetupRunFlags creates and configures a FlagSet for the run command.
// Returns the FlagSet and a RunFlags struct with bound flag variables.
func SetupRunFlags() (*flag.FlagSet, *RunFlags) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	flags := &RunFlags{}
	defaults := config.Default()

	fs.StringVar(&flags.ConfigPath, "config", "", "config file (default: "+config.DefaultFile+" if present)")
	fs.StringVar(&flags.InputDir, "input", defaults.InputDir, "directory containing JSON dictionaries")
	fs.StringVar(&flags.InputDir, "i", defaults.InputDir, "directory containing JSON dictionaries")
	fs.StringVar(&flags.Output, "output", defaults.Output, "word list to write")
	fs.StringVar(&flags.Output, "o", defaults.Output, "word list to write")
	fs.StringVar(&flags.Extension, "ext", defaults.Extension, "file name suffix selecting dictionaries")
	fs.StringVar(&flags.Fold, "fold", defaults.Fold, "lowercase mode: lower, simple, ascii, fold")
	fs.IntVar(&flags.Workers, "workers", defaults.Workers, "number of files parsed concurrently")
	fs.BoolVar(&flags.SkipInvalid, "skip-invalid", defaults.SkipInvalid, "skip dictionaries that fail to parse instead of aborting")
	fs.BoolVar(&flags.ASCIIOnly, "ascii-only", defaults.ASCIIOnly, "keep only ASCII words")
	fs.IntVar(&flags.Length, "length", defaults.Length, "keep only words of exactly this many characters (0 = any)")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "compute the word list without writing it")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no progress output")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no progress output")
	fs.BoolVar(&flags.Verbose, "verbose", false, "write debug logs to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "summary format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: wordagg run [flags]\n\n")
		Writef(output, "Collect the keys of every JSON dictionary in a directory into one\n")
		Writef(output, "lowercase, deduplicated, sorted word list.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  wordagg run\n")
		Writef(output, "  wordagg run --input dicts --output vocab.txt\n")
		Writef(output, "  wordagg run --fold fold --workers 4\n")
		Writef(output, "  wordagg run --ascii-only --length 5 --output five.txt\n")
		Writef(output, "  wordagg run --dry-run --format json\n")
		Writef(output, "\nConfiguration:\n")
		Writef(output, "  Settings are read from defaults, then %s (or --config),\n", config.DefaultFile)
		Writef(output, "  then WORDAGG_* environment variables, then flags.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Word list written\n")
		Writef(output, "  1    A dictionary could not be read or parsed, or the output could not be written\n")
	}

	return fs, flags
}

// HandleRun executes the run command
func HandleRun(args []string) error {
	fs, flags := SetupRunFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("run command takes no arguments, got %q", fs.Args())
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	applyRunFlags(fs, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Progress goes to stdout for text output and to stderr when stdout
	// carries a structured summary.
	var progress io.Writer = os.Stdout
	if flags.Format != FormatText {
		progress = os.Stderr
	}
	if flags.Quiet {
		progress = nil
	}

	opts := append(cfg.Options(),
		aggregator.WithDryRun(flags.DryRun),
		aggregator.WithProgress(progress),
		aggregator.WithLogger(newLogger(flags.Verbose)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := aggregator.AggregateWithOptions(ctx, opts...)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, result, flags.Format)
	}
	for _, f := range result.Files {
		if f.Skipped && !flags.Quiet {
			Writef(os.Stderr, "Warning: skipped %s: %s\n", f.Path, f.Error)
		}
	}
	if flags.DryRun && !flags.Quiet {
		Writef(os.Stdout, "Dry run: %s not written\n", result.OutputPath)
	}
	return nil
}

// applyRunFlags copies explicitly set flags onto cfg so flags take
// precedence over the config file and environment.
func applyRunFlags(fs *flag.FlagSet, flags *RunFlags, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input", "i":
			cfg.InputDir = flags.InputDir
		case "output", "o":
			cfg.Output = flags.Output
		case "ext":
			cfg.Extension = flags.Extension
		case "fold":
			cfg.Fold = flags.Fold
		case "workers":
			cfg.Workers = flags.Workers
		case "skip-invalid":
			cfg.SkipInvalid = flags.SkipInvalid
		case "ascii-only":
			cfg.ASCIIOnly = flags.ASCIIOnly
		case "length":
			cfg.Length = flags.Length
		}
	})
}
