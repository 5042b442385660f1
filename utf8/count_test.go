package utf8

import (
	"math/rand"
	"strings"
	"testing"
	stdlib "unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// runeCountScalar counts non-continuation bytes one byte at a time. The batch
// kernel must agree with it on every input, valid UTF-8 or not.
func runeCountScalar(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}

func TestRuneCount(t *testing.T) {
	tests := []struct {
		in  string
		exp int
	}{
		{"", 0},
		{"a", 1},
		{"Hello", 5},
		{"Hello World", 11},
		{"Hello ASCII World", 17},
		{"Hello ASCII World!", 18},
		{"café", 4}, // 5 bytes
		{"日本語", 3},
		{"日本語日本語日本語日", 10},
		{"\xF0\x9F\x98\x80", 1}, // 4-byte emoji
		{"a\xF0\x9F\x98\x80b", 3},
		{strings.Repeat("é", 100), 100},
		{strings.Repeat("0123456789", 10), 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, RuneCountString(tt.in), "RuneCountString(%q)", tt.in)
		assert.Equal(t, tt.exp, RuneCount([]byte(tt.in)), "RuneCount(%q)", tt.in)
		// sanity against the stdlib on valid input
		assert.Equal(t, stdlib.RuneCountInString(tt.in), tt.exp, "stdlib disagrees for %q", tt.in)
	}
}

func TestRuneCountASCIIFastPath(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 31, 32, 33, 1023} {
		s := strings.Repeat("x", n)
		if got := RuneCountString(s); got != n {
			t.Errorf("RuneCountString(%d ASCII bytes) = %d", n, got)
		}
	}
}

// On malformed input the result is the non-continuation byte count, nothing
// more; pin that contract.
func TestRuneCountMalformed(t *testing.T) {
	tests := []struct {
		in  string
		exp int
	}{
		{"\x80", 0}, // lone continuation
		{"\x80\x80\x80", 0},
		{"\xC3", 1}, // truncated sequence: one start byte
		{"\xFF", 1}, // 0xFF is not a continuation byte
		{"a\x80b", 2},
		{"\xE2\x82", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exp, RuneCountString(tt.in), "RuneCountString(%q)", tt.in)
	}
}

func TestRuneCountRandomLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 1023, 100_000} {
		for iter := 0; iter < 20; iter++ {
			data := make([]byte, n)
			rng.Read(data)
			exp := runeCountScalar(data)
			if got := RuneCount(data); got != exp {
				t.Fatalf("RuneCount([%d bytes]) = %d; want %d", n, got, exp)
			}
			if stdlib.Valid(data) {
				if got := RuneCount(data); got != stdlib.RuneCount(data) {
					t.Fatalf("RuneCount disagrees with stdlib on valid input of len %d", n)
				}
			}
		}
	}
}

func FuzzRuneCount(f *testing.F) {
	f.Add([]byte("Hello ASCII World"))
	f.Add([]byte("café"))
	f.Add([]byte("日本語日本語日本語日"))
	f.Add([]byte{0x80, 0xFF, 0xC3})

	f.Fuzz(func(t *testing.T, in []byte) {
		exp := runeCountScalar(in)
		if got := RuneCount(in); got != exp {
			t.Fatalf("RuneCount(%q) = %d; want %d", in, got, exp)
		}
		if stdlib.Valid(in) && exp != stdlib.RuneCount(in) {
			t.Fatalf("scalar reference disagrees with stdlib on valid input %q", in)
		}
	})
}

func BenchmarkRuneCount(b *testing.B) {
	inputs := []struct {
		name string
		data string
	}{
		{"TenASCII", "0123456789"},
		{"100KASCII", ascii100000},
		{"MostlyASCII", longStringMostlyASCII},
		{"Japanese", longStringJapanese},
	}

	for _, in := range inputs {
		b.Run(in.name+"/std", func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				stdlib.RuneCountInString(in.data)
			}
		})
		b.Run(in.name+"/simd", func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				RuneCountString(in.data)
			}
		})
	}
}
