package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"checktidy/internal/types"
)

func readSingleCSV(t *testing.T, dir, prefix string) string {
	t.Helper()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read temp dir: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected 1 file in temp dir, got %d", len(files))
	}

	name := files[0].Name()
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("Generated filename %s does not match expected pattern %s*.csv", name, prefix)
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read generated CSV file: %v", err)
	}
	return string(content)
}

func TestWriteLineLengthLeaderboardCSV(t *testing.T) {
	tmpDir := t.TempDir()

	entries := []types.FileLeaderboardEntry{
		{Rank: 1, File: "PythonRegexAnalyzerTest.java", Count: 18, Longest: 99, LongestLine: 74},
		{Rank: 2, File: "ServiceUtilsTest.java", Count: 1, Longest: 81, LongestLine: 56},
	}

	if err := WriteLineLengthLeaderboardCSV(tmpDir, entries); err != nil {
		t.Fatalf("WriteLineLengthLeaderboardCSV failed: %v", err)
	}

	expectedContent := "Rank,File,Violations,Longest,LongestLine\n" +
		"1,PythonRegexAnalyzerTest.java,18,99,74\n" +
		"2,ServiceUtilsTest.java,1,81,56\n"

	if got := readSingleCSV(t, tmpDir, "linelength_leaderboard_"); got != expectedContent {
		t.Errorf("CSV content mismatch:\nExpected:\n%s\nGot:\n%s", expectedContent, got)
	}
}

func TestWriteRepairLogCSV(t *testing.T) {
	tmpDir := t.TempDir()

	summary := types.NewRepairSummary("escaped-newlines", "src/test/java")
	summary.Fixed = append(summary.Fixed, "src/test/java/ATest.java")
	summary.Failed["src/test/java/BTest.java"] = errors.New("permission denied")

	if err := WriteRepairLogCSV(tmpDir, summary); err != nil {
		t.Fatalf("WriteRepairLogCSV failed: %v", err)
	}

	expectedContent := "Path,Status,Error\n" +
		"src/test/java/ATest.java,fixed,\n" +
		"src/test/java/BTest.java,failed,permission denied\n"

	if got := readSingleCSV(t, tmpDir, "escaped-newlines_repairs_"); got != expectedContent {
		t.Errorf("CSV content mismatch:\nExpected:\n%s\nGot:\n%s", expectedContent, got)
	}
}

func TestWriteLeaderboardToCSV_ErrorHandling(t *testing.T) {
	err := WriteLeaderboardToCSV("", "test.csv", []string{"Header"}, [][]string{{"Data"}})
	if err == nil || !strings.Contains(err.Error(), "log directory not specified") {
		t.Errorf("Expected 'log directory not specified' error, got: %v", err)
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err = WriteLeaderboardToCSV(filepath.Join(blocker, "sub"), "test.csv", []string{"Header"}, [][]string{{"Data"}})
	if err == nil || !strings.Contains(err.Error(), "failed to create log directory") {
		t.Errorf("Expected 'failed to create log directory' error, got: %v", err)
	}
}
