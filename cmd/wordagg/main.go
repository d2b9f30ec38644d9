package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/wordagg"
	"github.com/erraggy/wordagg/cmd/wordagg/commands"
	"github.com/erraggy/wordagg/internal/mcpserver"
)

// commandNames lists the top-level commands in the order suggestions prefer them.
var commandNames = []string{"run", "extract", "mcp", "version", "help"}

func main() {
	// Bare invocation and flag-only invocation both mean "run".
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") && !isBuiltinFlag(os.Args[1]) {
		exitOnError(commands.HandleRun(os.Args[1:]))
		return
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("wordagg v%s\n", wordagg.Version())
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(wordagg.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "run":
		exitOnError(commands.HandleRun(os.Args[2:]))
	case "extract":
		exitOnError(commands.HandleExtract(os.Args[2:]))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		exitOnError(err)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func isBuiltinFlag(arg string) bool {
	switch arg {
	case "-v", "--version", "-h", "--help":
		return true
	}
	return false
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`wordagg - JSON dictionary word aggregator

Usage:
  wordagg [run flags]
  wordagg <command> [options]

Commands:
  run         Aggregate dictionary keys into a word list (default)
  extract     Print the keys of a single JSON dictionary
  mcp         Serve the aggregator as MCP tools over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  wordagg
  wordagg run -i words -o words.txt
  wordagg run --ascii-only --length 5 -o wordle.txt
  wordagg run --dry-run --format json
  wordagg extract words/en.json

Configuration is read from wordagg.yaml and WORDAGG_* environment variables;
flags take precedence.

Run 'wordagg <command> --help' for more information on a command.`)
}
