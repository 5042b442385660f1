//go:build !amd64

package utf8

import "github.com/Abdalla-Eldoumani/stringops/ascii"

// Valid reports whether b is valid UTF-8.
func Valid(b []byte) bool {
	// speed up the common case
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 {
		return true
	}
	return validRange(b[idx:])
}

// ValidString reports whether s is valid UTF-8.
func ValidString(s string) bool {
	idx := ascii.IndexMaskString(s, 0x80)
	if idx == -1 {
		return true
	}
	return validRange(s[idx:])
}
