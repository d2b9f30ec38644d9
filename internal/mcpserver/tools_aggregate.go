package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordagg/aggregator"
)

type aggregateInput struct {
	InputDir     string `json:"input_dir,omitempty"     jsonschema:"Directory containing the JSON dictionaries"`
	Output       string `json:"output,omitempty"        jsonschema:"Path of the word list to write"`
	Extension    string `json:"extension,omitempty"     jsonschema:"File name suffix selecting dictionaries"`
	Fold         string `json:"fold,omitempty"          jsonschema:"Lowercase mode: lower or simple or ascii or fold"`
	SkipInvalid  bool   `json:"skip_invalid,omitempty"  jsonschema:"Skip dictionaries that fail to parse instead of failing"`
	ASCIIOnly    bool   `json:"ascii_only,omitempty"    jsonschema:"Keep only ASCII words"`
	Length       int    `json:"length,omitempty"        jsonschema:"Keep only words of exactly this many characters"`
	DryRun       bool   `json:"dry_run,omitempty"       jsonschema:"Compute the list without writing the output file"`
	IncludeWords bool   `json:"include_words,omitempty" jsonschema:"Return a page of the resulting words"`
	Offset       int    `json:"offset,omitempty"        jsonschema:"Index of the first returned word"`
	Limit        int    `json:"limit,omitempty"         jsonschema:"Maximum number of returned words"`
}

type skippedFile struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type aggregateOutput struct {
	InputDir     string        `json:"input_dir"`
	OutputPath   string        `json:"output_path"`
	Written      bool          `json:"written"`
	FilesLoaded  int           `json:"files_loaded"`
	FilesSkipped []skippedFile `json:"files_skipped,omitempty"`
	WordsLoaded  int           `json:"words_loaded"`
	UniqueWords  int           `json:"unique_words"`
	Filtered     int           `json:"filtered,omitempty"`
	Words        []string      `json:"words,omitempty"`
	Returned     int           `json:"returned,omitempty"`
}

func handleAggregate(ctx context.Context, _ *mcp.CallToolRequest, input aggregateInput) (*mcp.CallToolResult, aggregateOutput, error) {
	opts := append(cfg.Run.Options(), input.options()...)

	result, err := aggregator.AggregateWithOptions(ctx, opts...)
	if err != nil {
		return errResult(err), aggregateOutput{}, nil
	}

	output := aggregateOutput{
		InputDir:    result.InputDir,
		OutputPath:  result.OutputPath,
		Written:     result.Written,
		WordsLoaded: result.WordsLoaded,
		UniqueWords: result.UniqueWords,
		Filtered:    result.Filtered,
	}
	for _, f := range result.Files {
		if f.Skipped {
			output.FilesSkipped = append(output.FilesSkipped, skippedFile{Path: f.Path, Error: f.Error})
			continue
		}
		output.FilesLoaded++
	}
	if input.IncludeWords {
		output.Words = paginate(result.Words, input.Offset, input.Limit)
		output.Returned = len(output.Words)
	}
	return nil, output, nil
}

// options returns the aggregator options for the fields set on the input.
// Unset fields keep the server defaults.
func (in aggregateInput) options() []aggregator.Option {
	var opts []aggregator.Option
	if in.InputDir != "" {
		opts = append(opts, aggregator.WithInputDir(in.InputDir))
	}
	if in.Output != "" {
		opts = append(opts, aggregator.WithOutputPath(in.Output))
	}
	if in.Extension != "" {
		opts = append(opts, aggregator.WithExtension(in.Extension))
	}
	if in.Fold != "" {
		opts = append(opts, aggregator.WithFoldMode(aggregator.FoldMode(in.Fold)))
	}
	if in.SkipInvalid {
		opts = append(opts, aggregator.WithSkipInvalid(true))
	}
	if in.ASCIIOnly {
		opts = append(opts, aggregator.WithASCIIOnly(true))
	}
	if in.Length != 0 {
		opts = append(opts, aggregator.WithLength(in.Length))
	}
	if in.DryRun {
		opts = append(opts, aggregator.WithDryRun(true))
	}
	return opts
}
