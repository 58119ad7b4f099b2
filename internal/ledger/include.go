package ledger

import (
	"encoding/json"

	"github.com/robalobadob/wordlehelper/internal/words"
)

// IncludeMap maps each letter confirmed present to its signed position markers.
// A positive marker p means "at position p" (1-based, HIT); a negative marker
// -p means "present but not at position p" (PRESENT).
//
// Keys keep the order in which letters were first confirmed, which is the
// order the letter-set generator places them in.
type IncludeMap struct {
	keys    []byte
	markers map[byte][]int
}

func newIncludeMap() *IncludeMap {
	return &IncludeMap{markers: make(map[byte][]int)}
}

func (m *IncludeMap) add(letter byte, marker int) {
	if _, ok := m.markers[letter]; !ok {
		m.keys = append(m.keys, letter)
	}
	m.markers[letter] = append(m.markers[letter], marker)
}

// Len returns the number of distinct included letters.
func (m *IncludeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the included letters in first-confirmed order.
func (m *IncludeMap) Keys() []byte {
	if m == nil {
		return nil
	}
	return append([]byte(nil), m.keys...)
}

// Markers returns the signed markers recorded for letter.
func (m *IncludeMap) Markers(letter byte) []int {
	if m == nil {
		return nil
	}
	return m.markers[letter]
}

// Mask returns the included letters as a set.
func (m *IncludeMap) Mask() words.Mask {
	var out words.Mask
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out = out.Add(k)
	}
	return out
}

// MarshalJSON encodes the map as {"b":[2],"e":[-1,4]}.
func (m *IncludeMap) MarshalJSON() ([]byte, error) {
	out := make(map[string][]int, m.Len())
	if m != nil {
		for _, k := range m.keys {
			out[string(k)] = m.markers[k]
		}
	}
	return json.Marshal(out)
}
