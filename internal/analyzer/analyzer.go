package analyzer

import (
	"checktidy/internal/config"
	"checktidy/internal/types"
)

// Analyzer groups violations by file name, keeping files in the order they
// first appear in the log.
type Analyzer struct {
	order []*types.FileStats
	index map[string]*types.FileStats
	total int
}

func New() *Analyzer {
	return &Analyzer{
		index: make(map[string]*types.FileStats),
	}
}

func (a *Analyzer) Add(v types.Violation) {
	stats, exists := a.index[v.File]
	if !exists {
		stats = &types.FileStats{File: v.File}
		a.index[v.File] = stats
		a.order = append(a.order, stats)
	}
	stats.Violations = append(stats.Violations, v)
	a.total++
}

func (a *Analyzer) AddAll(violations []types.Violation) {
	for _, v := range violations {
		a.Add(v)
	}
}

// AddWithConfig skips violations whose file matches an ignore pattern.
// It reports whether the violation was recorded.
func (a *Analyzer) AddWithConfig(v types.Violation, cfg *config.Config) bool {
	if cfg != nil && cfg.ShouldIgnoreFile(v.File) {
		return false
	}
	a.Add(v)
	return true
}

// Files returns the per-file groups in first-appearance order.
func (a *Analyzer) Files() []*types.FileStats {
	return a.order
}

func (a *Analyzer) Lookup(file string) (*types.FileStats, bool) {
	stats, ok := a.index[file]
	return stats, ok
}

func (a *Analyzer) FileNames() []string {
	names := make([]string, len(a.order))
	for i, stats := range a.order {
		names[i] = stats.File
	}
	return names
}

// Total is the number of recorded violations across all files.
func (a *Analyzer) Total() int {
	return a.total
}
