package utf8

import "github.com/Abdalla-Eldoumani/stringops/internal/swar"

// RuneCount returns the number of runes encoded in b. It counts sequence
// start bytes (everything that is not a continuation byte) without decoding,
// so it is cheaper than validation. For well-formed UTF-8 the result is the
// number of Unicode scalar values; for malformed input it is exactly the
// count of non-continuation bytes, which callers must not treat as a rune
// count unless they validated b separately.
func RuneCount(b []byte) int {
	return runeCount(b)
}

// RuneCountString is RuneCount for strings.
func RuneCountString(s string) int {
	return runeCount(s)
}

func runeCount[T string | []byte](s T) int {
	n := len(s)
	cont := 0

	pos := 0
	for n-pos >= swar.BlockSize {
		w0 := swar.LoadAt(s, pos)
		w1 := swar.LoadAt(s, pos+8)
		w2 := swar.LoadAt(s, pos+16)
		w3 := swar.LoadAt(s, pos+24)
		pos += swar.BlockSize
		if (w0|w1|w2|w3)&swar.HiBits == 0 {
			// all ASCII, nothing to subtract
			continue
		}
		cont += swar.CountFlagged(swar.Continuations(w0))
		cont += swar.CountFlagged(swar.Continuations(w1))
		cont += swar.CountFlagged(swar.Continuations(w2))
		cont += swar.CountFlagged(swar.Continuations(w3))
	}
	for n-pos >= swar.WordSize {
		if w := swar.LoadAt(s, pos); w&swar.HiBits != 0 {
			cont += swar.CountFlagged(swar.Continuations(w))
		}
		pos += swar.WordSize
	}
	for ; pos < n; pos++ {
		if s[pos]&0xC0 == 0x80 {
			cont++
		}
	}

	return n - cont
}
