package mcpserver

import (
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/wordagg/internal/testutil"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordagg-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 2)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	assert.True(t, slices.Contains(names, "aggregate"))
	assert.True(t, slices.Contains(names, "extract_keys"))
}

func TestIntegration_CallTool_Aggregate(t *testing.T) {
	session := startTestSession(t)
	dir := testutil.NewDictionaryDir(t, map[string]string{
		"a.json": `{"Cat": 1, "dog": 2}`,
		"b.json": `{"cat": 3, "Bird": 4}`,
	})
	out := filepath.Join(t.TempDir(), "words.txt")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "aggregate",
		Arguments: map[string]any{
			"input_dir":     dir,
			"output":        out,
			"include_words": true,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "aggregate should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), structured["unique_words"])
	assert.Equal(t, true, structured["written"])
	assert.Equal(t, []any{"bird", "cat", "dog"}, structured["words"])
	assert.Equal(t, "bird\ncat\ndog", testutil.ReadFile(t, out))
}

func TestIntegration_CallTool_ExtractKeysError(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "extract_keys",
		Arguments: map[string]any{"content": `[1, 2, 3]`},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// unmarshalStructured converts a tool result into a generic map.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
