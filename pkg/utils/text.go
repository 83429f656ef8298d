package utils

import "unicode/utf8"

// Truncate shortens s to at most n bytes, backing off to the previous rune
// boundary, and appends suffix when anything was cut.
func Truncate(s string, n int, suffix string) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + suffix
}
