// Package aggerrors provides structured error types for wordagg.
//
// Import path: github.com/erraggy/wordagg/aggerrors
//
// Every failure of an aggregation run is fatal, but callers still want to tell
// the categories apart: a missing directory, a dictionary that is not JSON, and
// an output file that cannot be written need different messages and fixes.
//
// # Error Types
//
//   - [ReadError]: the input directory or an input file could not be read
//   - [ParseError]: a file is not valid JSON, or its top level is not an object
//   - [WriteError]: the word list could not be written
//   - [ConfigError]: an option or configuration value is invalid
//
// # Sentinel Errors
//
//   - [ErrRead]: Matches any [ReadError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrNotObject]: Matches [ParseError] with NotObject=true
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := aggregator.AggregateWithOptions(ctx, aggregator.WithInputDir("words"))
//	if errors.Is(err, aggerrors.ErrNotObject) {
//	    // a dictionary file holds an array or scalar
//	}
//
//	var parseErr *aggerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s:%d:%d\n", parseErr.Path, parseErr.Line, parseErr.Column)
//	}
package aggerrors
