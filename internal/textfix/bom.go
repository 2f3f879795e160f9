package textfix

import "strings"

const byteOrderMark = "\ufeff"

// RepairByteOrderMark fixes the first line of a Java source whose package keyword
// lost its "p" to a byte order mark, and strips a stray BOM otherwise.
func RepairByteOrderMark(content string) (string, bool) {
	first, rest, hasRest := strings.Cut(content, "\n")

	var fixed string
	switch {
	case strings.HasPrefix(first, byteOrderMark+"ackage"):
		fixed = strings.ReplaceAll(first, byteOrderMark+"ackage", "package")
	case strings.HasPrefix(first, "ackage"):
		fixed = "package" + first[len("ackage"):]
	case strings.Contains(first, byteOrderMark):
		fixed = strings.ReplaceAll(first, byteOrderMark, "")
	default:
		return content, false
	}

	if hasRest {
		fixed += "\n" + rest
	}
	return fixed, fixed != content
}
