package rawtext

// Position is a half-open source span. Lines are 1-based; columns are
// 0-based byte offsets into the (untrimmed) line content, per spec §3.
type Position struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// FullLine returns a Position spanning an entire line of the given byte
// length, used when a tighter span isn't available (§7 "user-visible
// failure").
func FullLine(lineNumber, length int) Position {
	return Position{
		StartLine:   lineNumber,
		StartColumn: 0,
		EndLine:     lineNumber,
		EndColumn:   length,
	}
}

// IsWhitespace reports whether b is an ASCII space or tab, the only two
// characters the line classifier treats as insignificant leading/trailing
// whitespace.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// TrimLeadingWhitespace returns the byte offset of the first non-whitespace
// character in s, or len(s) if s is entirely whitespace.
func TrimLeadingWhitespace(s string) int {
	i := 0
	for i < len(s) && IsWhitespace(s[i]) {
		i++
	}
	return i
}

// TrimTrailingWhitespace returns the byte offset one past the last
// non-whitespace character in s, or 0 if s is entirely whitespace.
func TrimTrailingWhitespace(s string) int {
	i := len(s)
	for i > 0 && IsWhitespace(s[i-1]) {
		i--
	}
	return i
}
