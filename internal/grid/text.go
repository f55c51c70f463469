package grid

const ellipsis = "..."

// Truncate shortens s to n characters followed by "..." when s is longer
// than n characters. Shorter values are returned unchanged.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + ellipsis
}

// Abbreviate returns the first n characters of s followed by "...".
// The suffix is always appended, even when s is already short.
func Abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + ellipsis
}
