// Package swar provides the word-at-a-time primitives shared by the ascii
// and utf8 kernels. Every operation built on it processes 64-bit words (and
// 32-byte blocks of four words) with compare/select masks instead of per-byte
// branches, and finishes sub-word tails with an equivalent scalar loop.
package swar

import (
	"encoding/binary"
	"math/bits"
)

const (
	// WordSize is the minimum batch width, in bytes.
	WordSize = 8
	// BlockSize is the width of the unrolled main loops, in bytes.
	BlockSize = 32
)

const (
	// HiBits has the sign bit of every byte lane set.
	HiBits uint64 = 0x8080808080808080
	// LoBits has the low bit of every byte lane set.
	LoBits uint64 = 0x0101010101010101
)

// Broadcast replicates b into every byte lane of a word.
func Broadcast(b byte) uint64 {
	return uint64(b) * LoBits
}

// HasBetween returns a word with 0x80 set in every byte lane of x whose value
// v satisfies m < v < 128 and m < v < n. Lanes with the sign bit set are never
// flagged. Requires m <= 127 and n <= 128.
// Based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func HasBetween(x uint64, m, n byte) uint64 {
	a := LoBits * uint64(127+n)
	b := x & (LoBits * 127)
	d := LoBits * uint64(127-m)
	return (a - b) & ^x & (b + d) & HiBits
}

// Continuations returns a word with 0x80 set in every byte lane of x holding
// a UTF-8 continuation byte (0b10xxxxxx).
func Continuations(x uint64) uint64 {
	return x & HiBits &^ (x << 1)
}

// CountFlagged returns the number of byte lanes with their 0x80 flag set in
// mask. mask must only carry lane flags, as produced by HasBetween or
// Continuations.
func CountFlagged(mask uint64) int {
	return bits.OnesCount64(mask)
}

// IndexFlagged returns the index of the lowest byte lane with any bit set in
// mask. mask must be non-zero.
func IndexFlagged(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// LoadAt reads the little-endian word at s[i : i+8]. The load is byte-wise,
// so unaligned offsets are always safe; the compiler lowers it to a single
// 64-bit load where the target allows.
func LoadAt[T string | []byte](s T, i int) uint64 {
	s = s[i:]
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// StoreAt writes the little-endian word x to b[i : i+8].
func StoreAt(b []byte, i int, x uint64) {
	binary.LittleEndian.PutUint64(b[i:], x)
}
