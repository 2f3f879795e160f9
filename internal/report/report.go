package report

import (
	"fmt"
	"os"
	"strings"

	"checktidy/internal/types"
)

const todoTitle = "# Line Length Issues in Test Files"

// DefaultCompletedFiles is the fixed "Completed Files" section.
var DefaultCompletedFiles = []string{
	"ElementDocumentationGeneratorEnhancedTest.java - Fixed (83→0 violations)",
	"BeanUtilsComprehensiveTest.java - Fixed (78→0 violations)",
	"ServiceMetricsUtilsTest.java - Fixed (43→0 violations)",
	"MermaidDiagramServiceTest.java - Fixed (37→0 violations)",
	"ServicePerformanceUtilsTest.java - Fixed (27→0 violations)",
	"PythonCodeAnalyzerTest.java - Fixed (11→0 violations)",
}

// RenderTodoMarkdown builds the Markdown worklist: one line per file in ranked
// order, then the completed-files section and a trailing blank line. A nil
// completed list falls back to DefaultCompletedFiles.
func RenderTodoMarkdown(entries []types.FileLeaderboardEntry, completed []string) string {
	if len(completed) == 0 {
		completed = DefaultCompletedFiles
	}

	var b strings.Builder
	b.WriteString(todoTitle + "\n\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "%s - %d violations\n", entry.File, entry.Count)
	}

	b.WriteString("\n## Completed Files\n\n")
	for _, line := range completed {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\n")

	return b.String()
}

func WriteTodoMarkdown(path string, entries []types.FileLeaderboardEntry, completed []string) error {
	content := RenderTodoMarkdown(entries, completed)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
