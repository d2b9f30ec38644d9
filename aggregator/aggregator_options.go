package aggregator

import (
	"context"
	"fmt"
	"io"

	"github.com/erraggy/wordagg/internal/options"
)

// Option is a function that configures an aggregation run
type Option func(*aggregateConfig) error

// aggregateConfig holds configuration for an aggregation run
type aggregateConfig struct {
	inputDir    string
	outputPath  string
	extension   string
	fold        FoldMode
	skipInvalid bool
	workers     int
	filter      Filter
	dryRun      bool
	progress    io.Writer
	logger      Logger
}

// AggregateWithOptions runs an aggregation configured by functional options.
// Unset options keep the defaults of New.
//
// Example:
//
//	result, err := aggregator.AggregateWithOptions(ctx,
//	    aggregator.WithInputDir("dicts"),
//	    aggregator.WithFoldMode(aggregator.FoldUnicode),
//	)
func AggregateWithOptions(ctx context.Context, opts ...Option) (*AggregateResult, error) {
	a, err := NewWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(ctx)
}

// NewWithOptions returns an Aggregator configured by opts.
func NewWithOptions(opts ...Option) (*Aggregator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("aggregator: invalid options: %w", err)
	}
	return &Aggregator{
		InputDir:    cfg.inputDir,
		OutputPath:  cfg.outputPath,
		Extension:   cfg.extension,
		Fold:        cfg.fold,
		SkipInvalid: cfg.skipInvalid,
		Workers:     cfg.workers,
		Filter:      cfg.filter,
		DryRun:      cfg.dryRun,
		Progress:    cfg.progress,
		Logger:      cfg.logger,
	}, nil
}

// applyOptions applies option functions on top of the defaults
func applyOptions(opts ...Option) (*aggregateConfig, error) {
	cfg := &aggregateConfig{
		inputDir:   DefaultInputDir,
		outputPath: DefaultOutputPath,
		extension:  DefaultExtension,
		fold:       FoldLower,
		logger:     NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithInputDir sets the directory scanned for dictionary files.
// Default: "words"
func WithInputDir(dir string) Option {
	return func(cfg *aggregateConfig) error {
		if err := options.ValidateNonEmpty("input", dir); err != nil {
			return err
		}
		cfg.inputDir = dir
		return nil
	}
}

// WithOutputPath sets the path of the word list.
// Default: "words.txt"
func WithOutputPath(path string) Option {
	return func(cfg *aggregateConfig) error {
		if err := options.ValidateNonEmpty("output", path); err != nil {
			return err
		}
		cfg.outputPath = path
		return nil
	}
}

// WithExtension sets the file name suffix selecting dictionary files.
// Default: "json"
func WithExtension(ext string) Option {
	return func(cfg *aggregateConfig) error {
		if err := options.ValidateNonEmpty("extension", ext); err != nil {
			return err
		}
		cfg.extension = ext
		return nil
	}
}

// WithFoldMode sets how words are lowercased.
// Default: FoldLower
func WithFoldMode(mode FoldMode) Option {
	return func(cfg *aggregateConfig) error {
		m, err := ParseFoldMode(string(mode))
		if err != nil {
			return err
		}
		cfg.fold = m
		return nil
	}
}

// WithSkipInvalid makes files that fail to parse a warning instead of a
// fatal error. Skipped files are listed in AggregateResult.Files.
// Default: false
func WithSkipInvalid(enabled bool) Option {
	return func(cfg *aggregateConfig) error {
		cfg.skipInvalid = enabled
		return nil
	}
}

// WithWorkers sets how many files are parsed concurrently.
// 0 and 1 both mean sequential. Returns an error if n is negative.
func WithWorkers(n int) Option {
	return func(cfg *aggregateConfig) error {
		if err := options.ValidateNonNegative("workers", n); err != nil {
			return err
		}
		cfg.workers = n
		return nil
	}
}

// WithASCIIOnly keeps only words made of ASCII characters.
func WithASCIIOnly(enabled bool) Option {
	return func(cfg *aggregateConfig) error {
		cfg.filter.ASCIIOnly = enabled
		return nil
	}
}

// WithLength keeps only words of exactly n characters. 0 disables the filter.
func WithLength(n int) Option {
	return func(cfg *aggregateConfig) error {
		if err := options.ValidateNonNegative("length", n); err != nil {
			return err
		}
		cfg.filter.Length = n
		return nil
	}
}

// WithDryRun computes the word list without writing the output file.
func WithDryRun(enabled bool) Option {
	return func(cfg *aggregateConfig) error {
		cfg.dryRun = enabled
		return nil
	}
}

// WithProgress sets the writer receiving progress lines such as
// "Loading en.json..." and "Unique words: 42". nil disables them.
func WithProgress(w io.Writer) Option {
	return func(cfg *aggregateConfig) error {
		cfg.progress = w
		return nil
	}
}

// WithLogger sets a structured logger for the run.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *aggregateConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
