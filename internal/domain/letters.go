package domain

import (
	"math/bits"
	"strings"
)

// PuzzleLetterCount is the number of letters a puzzle offers.
const PuzzleLetterCount = 7

// LetterSet is a set of ASCII letters stored as a 26-bit mask, bit 0 = 'A'.
// The zero value is the empty set, which callers treat as "letters unknown".
type LetterSet uint32

func letterBit(r rune) (LetterSet, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return 1 << (r - 'A'), true
	case r >= 'a' && r <= 'z':
		return 1 << (r - 'a'), true
	}
	return 0, false
}

// NewLetterSet returns the set of ASCII letters that occur in s.
// Any other rune is ignored.
func NewLetterSet(s string) LetterSet {
	var set LetterSet
	for _, r := range s {
		if b, ok := letterBit(r); ok {
			set |= b
		}
	}
	return set
}

// WordLetters returns the letters of word. ok is false when word contains
// anything other than ASCII letters.
func WordLetters(word string) (set LetterSet, ok bool) {
	for _, r := range word {
		b, isLetter := letterBit(r)
		if !isLetter {
			return set, false
		}
		set |= b
	}
	return set, true
}

// Has reports whether r (either case) is in the set.
func (s LetterSet) Has(r rune) bool {
	b, ok := letterBit(r)
	return ok && s&b != 0
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// IsEmpty reports whether no letters are known.
func (s LetterSet) IsEmpty() bool { return s == 0 }

// Covers reports whether every letter of other is also in s.
func (s LetterSet) Covers(other LetterSet) bool { return other&^s == 0 }

// Letters returns the members as single uppercase strings in alphabetical order.
func (s LetterSet) Letters() []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < 26; i++ {
		if s&(1<<i) != 0 {
			out = append(out, string(rune('A'+i)))
		}
	}
	return out
}

// String returns the letters concatenated in alphabetical order, the form
// used for persistence.
func (s LetterSet) String() string {
	return strings.Join(s.Letters(), "")
}
