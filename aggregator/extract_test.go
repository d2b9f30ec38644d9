package aggregator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/internal/testutil"
)

func TestExtractKeysBytes(t *testing.T) {
	t.Run("returns sorted keys and ignores values", func(t *testing.T) {
		keys, err := ExtractKeysBytes("d.json", []byte(`{"b": [1], "A": {"x": 1}, "c": null}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "b", "c"}, keys)
	})

	t.Run("empty object", func(t *testing.T) {
		keys, err := ExtractKeysBytes("d.json", []byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("duplicate keys collapse", func(t *testing.T) {
		keys, err := ExtractKeysBytes("d.json", []byte(`{"cat": 1, "cat": 2}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, keys)
	})

	t.Run("values outside the float64 range", func(t *testing.T) {
		doc := `{"cat": 1e400, "dog": [-1e999], "owl": {"n": 123456789012345678901234567890e300}}`
		keys, err := ExtractKeysBytes("big.json", []byte(doc))
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "dog", "owl"}, keys)
	})

	t.Run("keys are not normalized", func(t *testing.T) {
		keys, err := ExtractKeysBytes("d.json", []byte(`{" Cat ": 1, "über": 2}`))
		require.NoError(t, err)
		assert.Equal(t, []string{" Cat ", "über"}, keys)
	})
}

func TestExtractKeysBytes_NotObject(t *testing.T) {
	tests := []struct {
		doc  string
		kind string
	}{
		{`["cat"]`, "array"},
		{`"cat"`, "string"},
		{`42`, "number"},
		{`true`, "boolean"},
		{`null`, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			_, err := ExtractKeysBytes("d.json", []byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, aggerrors.ErrNotObject)
			assert.ErrorIs(t, err, aggerrors.ErrParse)

			var parseErr *aggerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.kind, parseErr.Kind)
			assert.Equal(t, "d.json", parseErr.Path)
		})
	}
}

func TestExtractKeysBytes_SyntaxPosition(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		line   int
		column int
	}{
		{name: "first line", doc: `{not valid}`, line: 1, column: 2},
		{name: "third line", doc: "{\n  \"a\": 1,\n  oops\n}", line: 3, column: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractKeysBytes("d.json", []byte(tt.doc))
			require.Error(t, err)
			assert.NotErrorIs(t, err, aggerrors.ErrNotObject)

			var parseErr *aggerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, tt.column, parseErr.Column)
			assert.Equal(t, "invalid JSON", parseErr.Message)
		})
	}
}

func TestExtractKeysBytes_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		line   int
		column int
	}{
		{name: "distinct invalid keys", doc: "{\"a\xff\": 1, \"a\xfe\": 2}", line: 1, column: 4},
		{name: "invalid value", doc: "{\n  \"cat\": \"\xc3\"\n}", line: 2, column: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := ExtractKeysBytes("d.json", []byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, keys)
			assert.ErrorIs(t, err, aggerrors.ErrParse)
			assert.NotErrorIs(t, err, aggerrors.ErrNotObject)

			var parseErr *aggerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "invalid UTF-8", parseErr.Message)
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, tt.column, parseErr.Column)
		})
	}
}

func TestJSONKind(t *testing.T) {
	tests := map[string]string{
		`{}`:       "object",
		` [1]`:     "array",
		`"x"`:      "string",
		"\n-1e400": "number",
		`false`:    "boolean",
		`null`:     "null",
	}
	for doc, want := range tests {
		assert.Equal(t, want, jsonKind([]byte(doc)), "kind of %q", doc)
	}
}

func TestExtractKeys(t *testing.T) {
	dir := testutil.NewDictionaryDir(t, map[string]string{"en.json": `{"Cat": 1, "dog": 2}`})

	keys, err := ExtractKeys(filepath.Join(dir, "en.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "dog"}, keys)

	_, err = ExtractKeys(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, aggerrors.ErrRead)
	assert.NotErrorIs(t, err, aggerrors.ErrParse)
}

func TestPosition(t *testing.T) {
	data := []byte("ab\ncd")
	tests := []struct {
		offset       int64
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 1},
		{2, 1, 2},
		{4, 2, 1},
		{5, 2, 2},
		{99, 2, 2},
	}
	for _, tt := range tests {
		line, column := position(data, tt.offset)
		assert.Equal(t, tt.line, line, "line for offset %d", tt.offset)
		assert.Equal(t, tt.column, column, "column for offset %d", tt.offset)
	}
}
