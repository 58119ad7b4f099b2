package words

import (
	"math/bits"
	"strings"
)

// Mask is a set of letters a–z packed into the low 26 bits.
type Mask uint32

// MaskOf returns the set of letters occurring in s. Non a–z bytes are ignored.
func MaskOf(s string) Mask {
	var m Mask
	for i := 0; i < len(s); i++ {
		m = m.Add(s[i])
	}
	return m
}

// Add returns m with letter b added.
func (m Mask) Add(b byte) Mask {
	if b < 'a' || b > 'z' {
		return m
	}
	return m | 1<<(b-'a')
}

// Has reports whether letter b is in m.
func (m Mask) Has(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return m&(1<<(b-'a')) != 0
}

// Covers reports whether every letter of other is also in m.
func (m Mask) Covers(other Mask) bool { return m&other == other }

// Count returns the number of letters in m.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Letters returns the members of m in alphabetical order.
func (m Mask) Letters() []byte {
	out := make([]byte, 0, m.Count())
	for c := byte('a'); c <= 'z'; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m Mask) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.Write(m.Letters())
	b.WriteByte('}')
	return b.String()
}
