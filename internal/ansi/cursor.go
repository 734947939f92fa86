// Package ansi recognizes the cursor-position escape sequence found in
// terminal captures.
package ansi

import "strings"

// matchCursorPosition matches a cursor-position sequence
// (ESC '[' digits ';' digits 'H', either run of digits possibly empty)
// starting at position i. Returns the position after the sequence.
func matchCursorPosition(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != 0x1b {
		return i, false
	}

	j := i + 1
	if j >= len(s) || s[j] != '[' {
		return i, false
	}
	j++
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j >= len(s) || s[j] != ';' {
		return i, false
	}
	j++
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j >= len(s) || s[j] != 'H' {
		return i, false
	}
	return j + 1, true
}

// StripCursorMoves removes all cursor-position sequences from the string.
// Every other byte passes through unchanged, including escape sequences
// that are not cursor-position codes.
func StripCursorMoves(s string) string {
	if strings.IndexByte(s, 0x1b) < 0 {
		return s
	}
	var result []byte
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			if next, ok := matchCursorPosition(s, i); ok {
				i = next
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

// CleanLine strips cursor-position sequences from the line, then trims
// leading and trailing whitespace.
func CleanLine(s string) string {
	return strings.TrimSpace(StripCursorMoves(s))
}
