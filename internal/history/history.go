package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"checktidy/internal/types"
)

const timestampFormat = "20060102_150405"

// WriteLeaderboardToCSV writes a generic table to dir/filename.
func WriteLeaderboardToCSV(dir, filename string, header []string, data [][]string) error {
	if dir == "" {
		return fmt.Errorf("log directory not specified")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file %s: %w", filePath, err)
	}
	return nil
}

// WriteLineLengthLeaderboardCSV records one extraction run.
func WriteLineLengthLeaderboardCSV(dir string, entries []types.FileLeaderboardEntry) error {
	filename := fmt.Sprintf("linelength_leaderboard_%s.csv", time.Now().Format(timestampFormat))
	header := []string{"Rank", "File", "Violations", "Longest", "LongestLine"}
	data := make([][]string, len(entries))
	for i, entry := range entries {
		data[i] = []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.File,
			fmt.Sprintf("%d", entry.Count),
			fmt.Sprintf("%d", entry.Longest),
			fmt.Sprintf("%d", entry.LongestLine),
		}
	}
	return WriteLeaderboardToCSV(dir, filename, header, data)
}

// WriteRepairLogCSV records which files a repair run fixed or failed on.
func WriteRepairLogCSV(dir string, summary *types.RepairSummary) error {
	filename := fmt.Sprintf("%s_repairs_%s.csv", summary.Kind, time.Now().Format(timestampFormat))
	header := []string{"Path", "Status", "Error"}

	data := make([][]string, 0, len(summary.Fixed)+len(summary.Failed))
	for _, path := range summary.Fixed {
		data = append(data, []string{path, "fixed", ""})
	}

	failed := make([]string, 0, len(summary.Failed))
	for path := range summary.Failed {
		failed = append(failed, path)
	}
	sort.Strings(failed)
	for _, path := range failed {
		data = append(data, []string{path, "failed", summary.Failed[path].Error()})
	}

	return WriteLeaderboardToCSV(dir, filename, header, data)
}
