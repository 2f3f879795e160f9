package checkstyle

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"checktidy/internal/types"
)

// DefaultLineLimit is the maximum line length checkstyle reports against.
const DefaultLineLimit = 80

// SampleLog is a captured checkstyle run used by the inline counter.
//
//go:embed samples/linelength.log
var SampleLog string

var looseFilePattern = regexp.MustCompile(`[\\/]([\w.]+\.java):`)

// lineLengthPattern builds the warning matcher for the given limit. The match is
// unanchored so build-tool prefixes such as "[ant:checkstyle] " are accepted.
func lineLengthPattern(limit int) *regexp.Regexp {
	if limit <= 0 {
		limit = DefaultLineLimit
	}
	return regexp.MustCompile(`\[WARN\] (.+):(\d+): Line is longer than ` +
		regexp.QuoteMeta(strconv.Itoa(limit)) +
		` characters \(found (\d+)\)\. \[LineLength\]`)
}

// ParseLineLength returns one violation per LineLength warning in text, in log order.
func ParseLineLength(text string, limit int) []types.Violation {
	re := lineLengthPattern(limit)

	var violations []types.Violation
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		line, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		chars, err := strconv.Atoi(match[3])
		if err != nil {
			continue
		}

		violations = append(violations, types.Violation{
			File:  NormalizeFileName(match[1]),
			Line:  line,
			Chars: chars,
		})
	}

	return violations
}

// ReadLineLengthLog reads the whole log at path and parses it.
func ReadLineLengthLog(path string, limit int) ([]types.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	return ParseLineLength(string(data), limit), nil
}

// NormalizeFileName keeps the final path segment, treating both / and \ as separators.
func NormalizeFileName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// CountLineLengthFiles is the quick filename-only counter. It only looks at lines
// tagged [LineLength] and does not capture line or character numbers.
func CountLineLengthFiles(text string) []types.FileCount {
	index := make(map[string]int)
	var counts []types.FileCount

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "[LineLength]") {
			continue
		}
		match := looseFilePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := match[1]
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, types.FileCount{File: name, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}
