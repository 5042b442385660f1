package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX = cpu.X86.HasAVX

// Valid reports whether every byte in b is ASCII (< 0x80).
func Valid(b []byte) bool {
	if hasAVX {
		return segascii.Valid(b)
	}
	return isASCIIGo(b)
}

// ValidString reports whether every byte in s is ASCII (< 0x80).
func ValidString(s string) bool {
	if hasAVX {
		return segascii.ValidString(s)
	}
	return isASCIIGo(s)
}
