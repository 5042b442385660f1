package ascii

import "github.com/Abdalla-Eldoumani/stringops/internal/swar"

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask64 := swar.Broadcast(mask)

	pos := 0
	for ; len(s) >= swar.BlockSize; pos, s = pos+swar.BlockSize, s[swar.BlockSize:] {
		w0 := swar.LoadAt(s, 0)
		w1 := swar.LoadAt(s, 8)
		w2 := swar.LoadAt(s, 16)
		w3 := swar.LoadAt(s, 24)
		if (w0|w1|w2|w3)&mask64 == 0 {
			continue
		}
		if hit := w0 & mask64; hit != 0 {
			return pos + swar.IndexFlagged(hit)
		}
		if hit := w1 & mask64; hit != 0 {
			return pos + 8 + swar.IndexFlagged(hit)
		}
		if hit := w2 & mask64; hit != 0 {
			return pos + 16 + swar.IndexFlagged(hit)
		}
		return pos + 24 + swar.IndexFlagged(w3&mask64)
	}

	for ; len(s) >= swar.WordSize; pos, s = pos+swar.WordSize, s[swar.WordSize:] {
		if hit := swar.LoadAt(s, 0) & mask64; hit != 0 {
			return pos + swar.IndexFlagged(hit)
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isASCIIGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}
