//go:build !amd64

package ascii

// Valid reports whether every byte in b is ASCII (< 0x80).
func Valid(b []byte) bool {
	return isASCIIGo(b)
}

// ValidString reports whether every byte in s is ASCII (< 0x80).
func ValidString(s string) bool {
	return isASCIIGo(s)
}
