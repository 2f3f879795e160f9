package leaderboard

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"checktidy/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/sajari/fuzzy"
)

// GenerateFileLeaderboard ranks files by violation count, highest first. Files with
// equal counts keep the order they were given in.
func GenerateFileLeaderboard(files []*types.FileStats) []types.FileLeaderboardEntry {
	entries := make([]types.FileLeaderboardEntry, 0, len(files))
	for _, stats := range files {
		entry := types.FileLeaderboardEntry{
			File:  stats.File,
			Count: stats.Count(),
		}
		if longest, ok := stats.Longest(); ok {
			entry.Longest = longest.Chars
			entry.LongestLine = longest.Line
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// TotalViolations sums the per-file counts.
func TotalViolations(entries []types.FileLeaderboardEntry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Count
	}
	return total
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5d5d5d"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#878787"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d75f00"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd700"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#878787"))
)

// PrintTotals prints the overall violation and file counts.
func PrintTotals(w io.Writer, entries []types.FileLeaderboardEntry) {
	fmt.Fprintf(w, "Found %s LineLength violations across %s files\n",
		countStyle.Render(fmt.Sprintf("%d", TotalViolations(entries))),
		countStyle.Render(fmt.Sprintf("%d", len(entries))))
}

// PrintTopFiles prints the topN worst files.
func PrintTopFiles(w io.Writer, entries []types.FileLeaderboardEntry, topN int) {
	if topN <= 0 || len(entries) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", titleStyle.Render("Top files with most violations:"))

	maxEntries := topN
	if len(entries) < maxEntries {
		maxEntries = len(entries)
	}

	for _, entry := range entries[:maxEntries] {
		fmt.Fprintf(w, "%s %s - %d violations\n",
			rankStyle.Render(fmt.Sprintf("%d.", entry.Rank)),
			fileStyle.Render(entry.File),
			entry.Count)
	}
}

// PrintFileCounts prints the output of the filename-only counter.
func PrintFileCounts(w io.Writer, counts []types.FileCount) {
	fmt.Fprintln(w, titleStyle.Render("LineLength violations by file:"))
	for _, c := range counts {
		fmt.Fprintf(w, "%s - %d violations\n", fileStyle.Render(c.File), c.Count)
	}
}

// PrintFileDetails lists every violation recorded for one file and how far each
// line runs past limit.
func PrintFileDetails(w io.Writer, stats *types.FileStats, limit int) {
	fmt.Fprintf(w, "%s\n", titleStyle.Render(fmt.Sprintf("%s - %d violations", stats.File, stats.Count())))
	for _, v := range stats.Violations {
		fmt.Fprintf(w, "  line %s: %d characters %s\n",
			countStyle.Render(fmt.Sprintf("%d", v.Line)),
			v.Chars,
			dimStyle.Render(fmt.Sprintf("(+%d)", v.Chars-limit)))
	}
}

// SuggestFiles returns file names close to query, for "did you mean" hints.
func SuggestFiles(names []string, query string) []string {
	if len(names) == 0 || query == "" {
		return nil
	}

	byLower := make(map[string]string, len(names))
	words := make([]string, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, seen := byLower[lower]; !seen {
			byLower[lower] = name
			words = append(words, lower)
		}
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)

	var suggestions []string
	for _, s := range model.Suggestions(strings.ToLower(query), false) {
		if name, ok := byLower[s]; ok {
			suggestions = append(suggestions, name)
		}
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}
