package utf8

import "github.com/Abdalla-Eldoumani/stringops/internal/swar"

// validRange checks UTF-8 well-formedness of s, which must start at a
// sequence boundary. It is the shared slow path: callers first rule out the
// all-ASCII case and hand over the remainder starting at the first byte
// >= 0x80. Interior ASCII runs are skipped a word at a time, so mostly-ASCII
// input stays cheap even after the fast path has bailed.
func validRange[T string | []byte](s T) bool {
	i, n := 0, len(s)
	for i < n {
		c := s[i]
		if c < 0x80 {
			i++
			for n-i >= swar.WordSize && swar.LoadAt(s, i)&swar.HiBits == 0 {
				i += swar.WordSize
			}
			for i < n && s[i] < 0x80 {
				i++
			}
			continue
		}

		switch {
		case c < 0xC2:
			// continuation byte without a lead, or overlong 2-byte lead
			return false
		case c < 0xE0:
			if n-i < 2 || !isCont(s[i+1]) {
				return false
			}
			i += 2
		case c < 0xF0:
			if n-i < 3 || !isCont(s[i+1]) || !isCont(s[i+2]) {
				return false
			}
			if c == 0xE0 && s[i+1] < 0xA0 {
				return false // overlong
			}
			if c == 0xED && s[i+1] >= 0xA0 {
				return false // surrogate U+D800..U+DFFF
			}
			i += 3
		case c <= 0xF4:
			if n-i < 4 || !isCont(s[i+1]) || !isCont(s[i+2]) || !isCont(s[i+3]) {
				return false
			}
			if c == 0xF0 && s[i+1] < 0x90 {
				return false // overlong
			}
			if c == 0xF4 && s[i+1] > 0x8F {
				return false // above U+10FFFF
			}
			i += 4
		default:
			// 0xF5..0xFF never start a sequence
			return false
		}
	}
	return true
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}
