package textfix

import "strings"

const (
	escapedCRLF = `\r\n`
	escapedLF   = `\n`
	crlf        = "\r\n"
)

// RepairEscapedNewlines turns literal `\r\n` and `\n` sequences into real CRLF
// line breaks. The four-character form is replaced first so it becomes a single
// break. It reports whether the content changed.
func RepairEscapedNewlines(content string) (string, bool) {
	if !HasEscapedNewlines(content) {
		return content, false
	}
	repaired := strings.ReplaceAll(content, escapedCRLF, crlf)
	repaired = strings.ReplaceAll(repaired, escapedLF, crlf)
	return repaired, repaired != content
}

func HasEscapedNewlines(content string) bool {
	return strings.Contains(content, escapedCRLF) || strings.Contains(content, escapedLF)
}

// NormalizeLineEndings rewrites every LF or CRLF line ending as eol.
// Lone carriage returns are left alone.
func NormalizeLineEndings(content, eol string) string {
	lf := strings.ReplaceAll(content, crlf, "\n")
	if eol == "\n" {
		return lf
	}
	return strings.ReplaceAll(lf, "\n", eol)
}
