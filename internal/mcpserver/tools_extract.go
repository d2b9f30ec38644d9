package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordagg/aggregator"
	"github.com/erraggy/wordagg/internal/options"
)

type extractInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"Path to a JSON dictionary on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON dictionary content"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Index of the first returned key"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum number of returned keys"`
}

type extractOutput struct {
	Count    int      `json:"count"`
	Returned int      `json:"returned"`
	Keys     []string `json:"keys,omitempty"`
}

func handleExtractKeys(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	if err := options.ValidateSingleInputSource(
		"must specify either path or content",
		"must specify only one of path or content",
		input.Path != "", input.Content != "",
	); err != nil {
		return errResult(err), extractOutput{}, nil
	}

	var keys []string
	var err error
	if input.Path != "" {
		keys, err = aggregator.ExtractKeys(input.Path)
	} else {
		keys, err = aggregator.ExtractKeysBytes("content", []byte(input.Content))
	}
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	page := paginate(keys, input.Offset, input.Limit)
	return nil, extractOutput{Count: len(keys), Returned: len(page), Keys: page}, nil
}
