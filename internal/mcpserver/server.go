// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wordagg capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordagg"
)

const serverInstructions = `wordagg MCP server: builds a deduplicated, sorted, lowercase word list from a directory of JSON dictionary files.

Configuration: defaults come from WORDAGG_* environment variables set in your MCP client config.

Key settings:
- WORDAGG_INPUT_DIR (default: words) - directory scanned for dictionaries
- WORDAGG_OUTPUT (default: words.txt) - word list written by aggregate
- WORDAGG_EXTENSION (default: json) - file name suffix of dictionaries
- WORDAGG_FOLD (default: lower) - lower, simple, ascii or fold
- WORDAGG_SKIP_INVALID (default: false) - skip unparseable dictionaries instead of failing
- WORDAGG_MCP_LIMIT (default: 100) - default page size for returned words

Use aggregate with dry_run=true and include_words=true to preview a list without writing it.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordagg", Version: wordagg.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "aggregate",
		Description: "Aggregate the keys of every JSON dictionary in a directory into one lowercase, deduplicated, sorted word list and write it one word per line. Any invalid dictionary aborts the run unless skip_invalid is set. Use dry_run=true to compute without writing, include_words=true with offset/limit to page through the resulting words.",
	}, handleAggregate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_keys",
		Description: "Return the top-level keys of a single JSON dictionary, given either a file path or inline content. Keys are returned sorted and unnormalized. Fails if the document is not a JSON object.",
	}, handleExtractKeys)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.Limit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.Limit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
