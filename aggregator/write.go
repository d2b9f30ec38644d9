package aggregator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/wordagg/aggerrors"
	"github.com/erraggy/wordagg/internal/fileutil"
)

// FormatWordList joins words with "\n". There is no trailing newline, and an
// empty list formats as the empty string.
func FormatWordList(words []string) string {
	return strings.Join(words, "\n")
}

// WriteWordList writes words to path in FormatWordList form, replacing any
// existing file. The list is written to a temporary file in the same
// directory and renamed into place, so readers never observe a partial list.
// Symlinked output paths are rejected.
func WriteWordList(path string, words []string) error {
	if err := fileutil.RejectSymlink(path); err != nil {
		return &aggerrors.WriteError{Path: path, Cause: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &aggerrors.WriteError{Path: path, Message: "creating temporary file", Cause: err}
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(FormatWordList(words)); err != nil {
		_ = tmp.Close()
		return &aggerrors.WriteError{Path: path, Message: "writing word list", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &aggerrors.WriteError{Path: path, Message: "closing word list", Cause: err}
	}
	if err := os.Chmod(tmpPath, fileutil.ReadableByAll); err != nil {
		return &aggerrors.WriteError{Path: path, Message: "setting permissions", Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &aggerrors.WriteError{Path: path, Message: "replacing output file", Cause: err}
	}
	committed = true
	return nil
}
