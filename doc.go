// Package wordagg builds a single vocabulary list out of a directory of JSON
// dictionary files.
//
// Each input file is a JSON object whose keys are headwords; the values are
// ignored. wordagg collects the keys of every file, lowercases them, removes
// duplicates, sorts the result and writes it one word per line.
//
// # Packages
//
//   - aggregator: discovery, key extraction, case folding and the word list writer
//   - aggerrors: typed errors for read, parse, write and configuration failures
//   - config: defaults, YAML config file and WORDAGG_* environment overrides
//
// # Quick Start
//
//	result, err := aggregator.AggregateWithOptions(ctx,
//		aggregator.WithInputDir("words"),
//		aggregator.WithOutputPath("words.txt"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Unique words: %d\n", result.UniqueWords)
//
// # Command Line
//
// The wordagg binary runs the same pipeline with the conventional paths
// ("words" in, "words.txt" out) when invoked without arguments:
//
//	wordagg
//	wordagg run --input dicts --output vocab.txt --fold fold
//	wordagg extract dicts/en.json
//	wordagg mcp
package wordagg
