package linefilter

import "strings"

// Matches reports whether line contains substring.
// The check is a case-sensitive literal containment test against the
// line including its terminator.
func Matches(line, substring string) bool {
	return strings.Contains(line, substring)
}

// Fragment returns the first charCount characters of line, terminated by
// exactly one newline. Characters are Unicode code points, not bytes.
// A line shorter than charCount is returned whole.
func Fragment(line string, charCount int) string {
	frag := line
	n := 0
	for i := range line {
		if n == charCount {
			frag = line[:i]
			break
		}
		n++
	}
	if !strings.HasSuffix(frag, "\n") {
		frag += "\n"
	}
	return frag
}

// Process returns the fragment to write for line and whether line matched.
func Process(line, substring string, charCount int) (string, bool) {
	if !Matches(line, substring) {
		return "", false
	}
	return Fragment(line, charCount), true
}
