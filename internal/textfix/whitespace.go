package textfix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Result describes the outcome of a single-file cleanup. Errors are reported
// here instead of being returned to the caller.
type Result struct {
	Path    string
	OK      bool
	Changed bool
	Message string
	Err     error
}

// StripTrailingWhitespace removes whitespace after the last non-space character of
// every line. Line terminators (LF or CRLF) and the presence or absence of a final
// newline are kept as they were.
func StripTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	last := len(lines) - 1

	for i, line := range lines {
		if i == last {
			lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
			continue
		}
		if body, ok := strings.CutSuffix(line, "\r"); ok {
			lines[i] = strings.TrimRightFunc(body, unicode.IsSpace) + "\r"
			continue
		}
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	return strings.Join(lines, "\n")
}

// RemoveTrailingSpaces strips trailing whitespace from the file at path in place.
func RemoveTrailingSpaces(path string) Result {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Result{
			Path:    path,
			Message: fmt.Sprintf("File not found: %s", path),
			Err:     err,
		}
	}
	return RewriteTrailingSpaces(path)
}

// RewriteTrailingSpaces is RemoveTrailingSpaces without the existence check;
// a missing file surfaces as a processing error.
func RewriteTrailingSpaces(path string) Result {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return failed(result, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failed(result, err)
	}

	original := string(data)
	cleaned := StripTrailingWhitespace(original)
	if cleaned != original {
		if err := WriteFileAtomic(path, []byte(cleaned), info.Mode().Perm()); err != nil {
			return failed(result, err)
		}
		result.Changed = true
	}

	result.OK = true
	result.Message = fmt.Sprintf("Removed trailing spaces from %s", filepath.Base(path))
	return result
}

func failed(result Result, err error) Result {
	result.OK = false
	result.Err = err
	result.Message = fmt.Sprintf("Error processing %s: %v", result.Path, err)
	return result
}
