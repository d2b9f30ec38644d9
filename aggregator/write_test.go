package aggregator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/internal/testutil"
)

func TestFormatWordList(t *testing.T) {
	assert.Equal(t, "", FormatWordList(nil))
	assert.Equal(t, "cat", FormatWordList([]string{"cat"}))
	assert.Equal(t, "bird\ncat\ndog", FormatWordList([]string{"bird", "cat", "dog"}))
}

func TestWriteWordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")

	t.Run("creates file without trailing newline", func(t *testing.T) {
		require.NoError(t, WriteWordList(path, []string{"bird", "cat"}))
		assert.Equal(t, "bird\ncat", testutil.ReadFile(t, path))
	})

	t.Run("overwrites longer content", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("a much longer previous list\nwith lines"), 0o644))
		require.NoError(t, WriteWordList(path, []string{"ox"}))
		assert.Equal(t, "ox", testutil.ReadFile(t, path))
	})

	t.Run("empty list yields empty file", func(t *testing.T) {
		require.NoError(t, WriteWordList(path, nil))
		assert.Equal(t, "", testutil.ReadFile(t, path))
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "words.txt", entries[0].Name())
	})
}

func TestWriteWordList_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("keep"), 0o644))
	link := filepath.Join(dir, "words.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	err := WriteWordList(link, []string{"cat"})
	assert.ErrorIs(t, err, aggerrors.ErrWrite)
	assert.Equal(t, "keep", testutil.ReadFile(t, target))
}
