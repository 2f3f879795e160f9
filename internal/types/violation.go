package types

// Violation is a single LineLength warning taken from a checkstyle log.
type Violation struct {
	File  string // normalized file name, no directories
	Line  int    // 1-based
	Chars int    // length reported by checkstyle
}

// FileCount is produced by the loose filename-only counter.
type FileCount struct {
	File  string
	Count int
}
