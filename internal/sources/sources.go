package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// ErrRootNotFound is returned when the tree to scan does not exist.
var ErrRootNotFound = errors.New("source root not found")

// IgnoreFunc reports whether a file should be skipped. rel is the slash-separated
// path relative to the scanned root.
type IgnoreFunc func(rel string, info fs.FileInfo) bool

// FindFiles returns the regular files below root whose names end in ext, sorted.
// Files for which ignore returns true are left out; ignore may be nil.
func FindFiles(root, ext string, ignore IgnoreFunc) ([]string, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	pattern := "**/*" + escapeMeta(ext)
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	var files []string
	for _, match := range matches {
		path := filepath.Join(root, filepath.FromSlash(match))

		fi, err := os.Lstat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if ignore != nil && ignore(match, fi) {
			logrus.WithField("path", path).Debug("ignored by config")
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

func escapeMeta(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
