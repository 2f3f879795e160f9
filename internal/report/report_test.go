package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"checktidy/internal/types"
)

func TestRenderTodoMarkdown(t *testing.T) {
	entries := []types.FileLeaderboardEntry{
		{Rank: 1, File: "FileA.java", Count: 3},
		{Rank: 2, File: "FileB.java", Count: 1},
	}

	got := RenderTodoMarkdown(entries, []string{"Done.java - Fixed (2→0 violations)"})

	want := "# Line Length Issues in Test Files\n\n" +
		"FileA.java - 3 violations\n" +
		"FileB.java - 1 violations\n" +
		"\n## Completed Files\n\n" +
		"- Done.java - Fixed (2→0 violations)\n" +
		"\n"

	if got != want {
		t.Errorf("Markdown mismatch:\nExpected:\n%q\nGot:\n%q", want, got)
	}
}

func TestRenderTodoMarkdownDefaults(t *testing.T) {
	got := RenderTodoMarkdown(nil, nil)

	if !strings.HasPrefix(got, "# Line Length Issues in Test Files\n\n\n## Completed Files\n\n") {
		t.Errorf("Expected empty worklist followed by completed section, but got:\n%q", got)
	}

	for _, line := range DefaultCompletedFiles {
		if !strings.Contains(got, "- "+line+"\n") {
			t.Errorf("Expected completed entry %q", line)
		}
	}

	if !strings.HasSuffix(got, "violations)\n\n") {
		t.Errorf("Expected a trailing blank line, but got %q", got[len(got)-20:])
	}
}

func TestWriteTodoMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo-long.md")
	entries := []types.FileLeaderboardEntry{{Rank: 1, File: "A.java", Count: 2}}

	if err := WriteTodoMarkdown(path, entries, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != RenderTodoMarkdown(entries, nil) {
		t.Errorf("Written file does not match rendered Markdown")
	}
}

func TestWriteTodoMarkdownBadPath(t *testing.T) {
	err := WriteTodoMarkdown(filepath.Join(t.TempDir(), "missing", "todo.md"), nil, nil)
	if err == nil || !strings.Contains(err.Error(), "failed to write") {
		t.Errorf("Expected 'failed to write' error, got: %v", err)
	}
}
