package aggregator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/wordagg/aggerrors"
)

// DefaultExtension is the file name suffix that marks a dictionary file.
const DefaultExtension = "json"

// Discover returns the paths of the dictionary files directly inside dir:
// regular files, or symlinks to regular files, whose name ends with ext.
// Directories, pipes, sockets and devices are ignored. The match is a
// plain suffix match, so ext "json" also accepts "words.geojson".
// Paths are returned in name order.
func Discover(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &aggerrors.ReadError{Path: dir, Message: "listing input directory", Cause: err}
	}

	var paths []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		regular, err := entryIsRegular(path, entry)
		if err != nil {
			return nil, &aggerrors.ReadError{Path: path, Message: "inspecting entry", Cause: err}
		}
		if !regular {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// entryIsRegular follows symlinks so a link is judged by its target.
// A dangling link is an error.
func entryIsRegular(path string, entry os.DirEntry) (bool, error) {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
