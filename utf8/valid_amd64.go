package utf8

import (
	"unsafe"

	segutf8 "github.com/segmentio/asm/utf8"
	"golang.org/x/sys/cpu"

	"github.com/Abdalla-Eldoumani/stringops/ascii"
)

var hasAVX = cpu.X86.HasAVX

// Valid reports whether b is valid UTF-8.
func Valid(b []byte) bool {
	if hasAVX {
		return segutf8.Validate(b).IsUTF8()
	}

	// speed up the common case
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 {
		return true
	}
	return validRange(b[idx:])
}

// ValidString reports whether s is valid UTF-8.
func ValidString(s string) bool {
	if hasAVX {
		// zero-copy view; Validate never mutates its input
		b := unsafe.Slice(unsafe.StringData(s), len(s))
		return segutf8.Validate(b).IsUTF8()
	}

	idx := ascii.IndexMaskString(s, 0x80)
	if idx == -1 {
		return true
	}
	return validRange(s[idx:])
}
