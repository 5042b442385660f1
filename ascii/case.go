package ascii

import "github.com/Abdalla-Eldoumani/stringops/internal/swar"

// ToUpper uppercases ASCII letters in b, in place. Every byte outside
// 'a'..'z' — including all bytes >= 0x80 — is left untouched, so the
// conversion is safe on UTF-8 data. ToUpper is idempotent and never changes
// the length of b.
func ToUpper(b []byte) {
	convertCase(b, 'a', 'z')
}

// ToLower lowercases ASCII letters in b, in place, with the same guarantees
// as ToUpper.
func ToLower(b []byte) {
	convertCase(b, 'A', 'Z')
}

// ToUpperString returns s with ASCII letters uppercased.
func ToUpperString(s string) string {
	b := []byte(s)
	ToUpper(b)
	return string(b)
}

// ToLowerString returns s with ASCII letters lowercased.
func ToLowerString(s string) string {
	b := []byte(s)
	ToLower(b)
	return string(b)
}

// caseWord toggles the case bit of every byte lane of x holding a letter in
// lo..hi. HasBetween yields 0x80 per matching lane; shifted down two bits
// that is the 0x20 case bit.
func caseWord(x uint64, lo, hi byte) uint64 {
	mask := swar.HasBetween(x, lo-1, hi+1)
	return x ^ mask>>2
}

func convertCase(b []byte, lo, hi byte) {
	for len(b) >= swar.BlockSize {
		swar.StoreAt(b, 0, caseWord(swar.LoadAt(b, 0), lo, hi))
		swar.StoreAt(b, 8, caseWord(swar.LoadAt(b, 8), lo, hi))
		swar.StoreAt(b, 16, caseWord(swar.LoadAt(b, 16), lo, hi))
		swar.StoreAt(b, 24, caseWord(swar.LoadAt(b, 24), lo, hi))
		b = b[swar.BlockSize:]
	}
	for len(b) >= swar.WordSize {
		swar.StoreAt(b, 0, caseWord(swar.LoadAt(b, 0), lo, hi))
		b = b[swar.WordSize:]
	}
	for i := 0; i < len(b); i++ {
		if c := b[i]; c >= lo && c <= hi {
			b[i] = c ^ 0x20
		}
	}
}
