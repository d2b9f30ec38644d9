package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/internal/cliutil"
	"github.com/erraggy/wordagg/internal/options"
)

// Conventional locations used when no paths are configured.
const (
	DefaultInputDir   = "words"
	DefaultOutputPath = "words.txt"
)

// Aggregator turns a directory of JSON dictionaries into a word list.
type Aggregator struct {
	// InputDir is the directory scanned for dictionary files.
	InputDir string
	// OutputPath is the word list written at the end of a run.
	OutputPath string
	// Extension is the file name suffix selecting dictionary files.
	Extension string
	// Fold selects the lowercase transform applied to every word.
	Fold FoldMode
	// SkipInvalid skips files that fail to parse instead of aborting.
	// Read errors always abort.
	SkipInvalid bool
	// Workers is the number of files parsed concurrently; 0 or 1 is sequential.
	Workers int
	// Filter drops words from the final list.
	Filter Filter
	// DryRun computes the word list without writing OutputPath.
	DryRun bool
	// Progress receives human-readable progress lines; nil disables them.
	Progress io.Writer
	// Logger receives structured logs; nil uses NopLogger.
	Logger Logger

	progressMu sync.Mutex
}

// FileResult describes one dictionary file of a run.
type FileResult struct {
	// Path is the dictionary file path.
	Path string `json:"path" yaml:"path"`
	// Words is the number of keys in the file's top-level object.
	Words int `json:"words" yaml:"words"`
	// Skipped is set when the file failed to parse and SkipInvalid was enabled.
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// Error holds the parse error of a skipped file.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AggregateResult contains the outcome of an aggregation run.
type AggregateResult struct {
	// InputDir is the scanned directory.
	InputDir string `json:"input_dir" yaml:"input_dir"`
	// OutputPath is the word list path, written unless DryRun was set.
	OutputPath string `json:"output_path" yaml:"output_path"`
	// Files lists every discovered dictionary in discovery order.
	Files []FileResult `json:"files" yaml:"files"`
	// WordsLoaded counts keys across all files before normalization.
	WordsLoaded int `json:"words_loaded" yaml:"words_loaded"`
	// UniqueWords counts the distinct normalized words that were kept.
	UniqueWords int `json:"unique_words" yaml:"unique_words"`
	// Filtered counts distinct words dropped by the filter.
	Filtered int `json:"filtered,omitempty" yaml:"filtered,omitempty"`
	// Words is the final sorted list.
	Words []string `json:"-" yaml:"-"`
	// Written reports whether OutputPath was written.
	Written bool `json:"written" yaml:"written"`
	// LoadTime is the wall time of the run.
	LoadTime time.Duration `json:"load_time" yaml:"load_time"`
}

// SkippedCount returns the number of files skipped as invalid.
func (r *AggregateResult) SkippedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Skipped {
			n++
		}
	}
	return n
}

// New returns an Aggregator with the conventional defaults.
func New() *Aggregator {
	return &Aggregator{
		InputDir:   DefaultInputDir,
		OutputPath: DefaultOutputPath,
		Extension:  DefaultExtension,
		Fold:       FoldLower,
		Logger:     NopLogger{},
	}
}

// Validate checks the configuration and returns a *aggerrors.ConfigError
// describing the first invalid setting.
func (a *Aggregator) Validate() error {
	if err := options.ValidateNonEmpty("input", a.InputDir); err != nil {
		return err
	}
	if !a.DryRun {
		if err := options.ValidateNonEmpty("output", a.OutputPath); err != nil {
			return err
		}
	}
	if _, err := ParseFoldMode(string(a.Fold)); err != nil {
		return err
	}
	if err := options.ValidateNonNegative("workers", a.Workers); err != nil {
		return err
	}
	return options.ValidateNonNegative("length", a.Filter.Length)
}

// extraction is the outcome of parsing one discovered file.
type extraction struct {
	keys []string
	err  error
}

// Aggregate runs discover, extract, normalize, deduplicate, sort, filter and
// write once. The first read, parse or write failure aborts the run, and
// nothing is written when an earlier step fails.
func (a *Aggregator) Aggregate(ctx context.Context) (*AggregateResult, error) {
	start := time.Now()
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("aggregator: %w", err)
	}
	log := a.logger().With("input_dir", a.InputDir)

	paths, err := Discover(a.InputDir, a.Extension)
	if err != nil {
		return nil, fmt.Errorf("aggregator: %w", err)
	}
	log.Debug("discovered dictionaries", "count", len(paths))

	extracted, err := a.extractAll(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("aggregator: %w", err)
	}

	result := &AggregateResult{
		InputDir:   a.InputDir,
		OutputPath: a.OutputPath,
		Files:      make([]FileResult, 0, len(paths)),
	}
	fold := a.Fold.Folder()
	set := NewWordSet()
	for i, path := range paths {
		ex := extracted[i]
		if ex.err != nil {
			log.Warn("skipping invalid dictionary", "path", path, "error", ex.err)
			result.Files = append(result.Files, FileResult{Path: path, Skipped: true, Error: ex.err.Error()})
			continue
		}
		result.Files = append(result.Files, FileResult{Path: path, Words: len(ex.keys)})
		result.WordsLoaded += len(ex.keys)
		for _, key := range ex.keys {
			set.Add(fold(key))
		}
	}
	a.progressf("Loaded %d words.\n", result.WordsLoaded)

	sorted := set.Sorted()
	result.Words = a.Filter.Apply(sorted)
	result.Filtered = len(sorted) - len(result.Words)
	result.UniqueWords = len(result.Words)
	a.progressf("Unique words: %d\n", result.UniqueWords)
	if result.Filtered > 0 {
		log.Debug("filtered words", "dropped", result.Filtered)
	}

	if !a.DryRun {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("aggregator: %w", err)
		}
		if err := WriteWordList(a.OutputPath, result.Words); err != nil {
			return nil, fmt.Errorf("aggregator: %w", err)
		}
		result.Written = true
	}

	result.LoadTime = time.Since(start)
	log.Info("aggregation complete",
		"files", len(result.Files),
		"words_loaded", result.WordsLoaded,
		"unique_words", result.UniqueWords,
		"written", result.Written,
	)
	a.progressf("Done.\n")
	return result, nil
}

// extractAll parses every path and returns the outcomes in path order.
// Parse errors are kept in the outcome when SkipInvalid is set; any other
// error aborts.
func (a *Aggregator) extractAll(ctx context.Context, paths []string) ([]extraction, error) {
	out := make([]extraction, len(paths))
	if a.Workers <= 1 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			ex, err := a.extractOne(path)
			if err != nil {
				return nil, err
			}
			out[i] = ex
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ex, err := a.extractOne(path)
			if err != nil {
				return err
			}
			out[i] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx only on failure; honour a parent cancellation too.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Aggregator) extractOne(path string) (extraction, error) {
	name := filepath.Base(path)
	a.progressf("Loading %s...\n", name)
	a.logger().Debug("loading dictionary", "path", path)

	data, err := readDictionary(path)
	if err != nil {
		return extraction{}, err
	}
	a.progressf("Reading %s...\n", name)

	keys, err := ExtractKeysBytes(path, data)
	if err != nil {
		if a.SkipInvalid && errors.Is(err, aggerrors.ErrParse) {
			return extraction{err: err}, nil
		}
		return extraction{}, err
	}
	a.logger().Debug("extracted keys", "path", path, "count", len(keys))
	return extraction{keys: keys}, nil
}

func (a *Aggregator) progressf(format string, args ...any) {
	if a.Progress == nil {
		return
	}
	a.progressMu.Lock()
	defer a.progressMu.Unlock()
	cliutil.Writef(a.Progress, format, args...)
}

func (a *Aggregator) logger() Logger {
	if a.Logger == nil {
		return NopLogger{}
	}
	return a.Logger
}
