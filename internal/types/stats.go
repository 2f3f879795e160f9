package types

type FileStats struct {
	File       string
	Violations []Violation
}

func (s *FileStats) Count() int {
	return len(s.Violations)
}

// Longest returns the violation with the highest character count.
func (s *FileStats) Longest() (Violation, bool) {
	var longest Violation
	if len(s.Violations) == 0 {
		return longest, false
	}
	longest = s.Violations[0]
	for _, v := range s.Violations[1:] {
		if v.Chars > longest.Chars {
			longest = v
		}
	}
	return longest, true
}

type FileLeaderboardEntry struct {
	Rank        int
	File        string
	Count       int
	Longest     int
	LongestLine int
}

// Repair run types
type RepairSummary struct {
	Kind    string
	Root    string
	Scanned int
	Fixed   []string
	Failed  map[string]error
}

func NewRepairSummary(kind, root string) *RepairSummary {
	return &RepairSummary{
		Kind:   kind,
		Root:   root,
		Fixed:  []string{},
		Failed: make(map[string]error),
	}
}
