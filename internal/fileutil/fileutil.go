// Package fileutil holds file permission constants and output path checks.
package fileutil

import (
	"fmt"
	"os"
)

// ReadableByAll is the file permission mode for the generated word list,
// which downstream tools read as plain text.
const ReadableByAll os.FileMode = 0o644

// RejectSymlink returns an error if path exists and is a symlink.
// A path that does not exist yet is accepted.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write to symlink: %s", path)
	}
	return nil
}
