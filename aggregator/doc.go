// Package aggregator builds a deduplicated, sorted, lowercase word list from a
// directory of JSON dictionary files.
//
// A dictionary file is any file in the input directory whose name ends with
// the configured extension ("json" by default). Its top-level value must be a
// JSON object; the object's keys are the words and its values are ignored, so
// dictionaries with any value schema can be mixed freely.
//
// # Pipeline
//
// An aggregation run performs five steps:
//
//  1. Discover: list the input directory and select dictionary files.
//     Subdirectories and other files are skipped.
//  2. Extract: parse each file and collect the keys of its top-level object.
//  3. Normalize: lowercase every key with the configured [FoldMode].
//  4. Deduplicate and order: collapse equal words and sort them by code point.
//  5. Persist: write the words joined by "\n", without a trailing newline,
//     replacing any previous output.
//
// Any read, parse or write failure aborts the run. Because the output is
// written last, a failed run leaves a previous output file untouched. With
// [WithSkipInvalid], files that fail to parse are reported and skipped instead;
// I/O failures still abort.
//
// # Usage
//
//	result, err := aggregator.AggregateWithOptions(ctx,
//		aggregator.WithInputDir("words"),
//		aggregator.WithOutputPath("words.txt"),
//		aggregator.WithProgress(os.Stdout),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.UniqueWords)
//
// The single-file building blocks are exported as well: [Discover],
// [ExtractKeys], [ExtractKeysBytes], [WordSet] and [WriteWordList].
//
// # Concurrency
//
// Files are processed one at a time by default. [WithWorkers] parses up to n
// files concurrently; the result does not depend on scheduling because words
// are merged in discovery order and sorted before writing.
package aggregator
