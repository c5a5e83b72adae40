package domain

import (
	"slices"
	"sort"
)

// HintsGrid maps a starting letter to word length to the number of solution
// words. Zero counts are never stored.
type HintsGrid map[string]map[int]int

// Set stores count for the (letter, length) cell. Non-positive counts remove
// the cell instead, keeping the no-zero invariant.
func (g HintsGrid) Set(letter string, length, count int) {
	if count <= 0 {
		if row, ok := g[letter]; ok {
			delete(row, length)
			if len(row) == 0 {
				delete(g, letter)
			}
		}
		return
	}
	row, ok := g[letter]
	if !ok {
		row = make(map[int]int)
		g[letter] = row
	}
	row[length] = count
}

// Count returns the count stored for a cell, 0 when absent.
func (g HintsGrid) Count(letter string, length int) int {
	return g[letter][length]
}

// Total returns the sum of all cells.
func (g HintsGrid) Total() int {
	total := 0
	for _, row := range g {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// LetterTotal returns the sum of one letter's row.
func (g HintsGrid) LetterTotal(letter string) int {
	total := 0
	for _, n := range g[letter] {
		total += n
	}
	return total
}

// LengthTotal returns the sum of one length column.
func (g HintsGrid) LengthTotal(length int) int {
	total := 0
	for _, row := range g {
		total += row[length]
	}
	return total
}

// Letters returns the row letters in alphabetical order.
func (g HintsGrid) Letters() []string {
	out := make([]string, 0, len(g))
	for l := range g {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Lengths returns every length that has at least one cell, ascending.
func (g HintsGrid) Lengths() []int {
	seen := make(map[int]struct{})
	for _, row := range g {
		for n := range row {
			seen[n] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy.
func (g HintsGrid) Clone() HintsGrid {
	out := make(HintsGrid, len(g))
	for l, row := range g {
		cp := make(map[int]int, len(row))
		for n, c := range row {
			cp[n] = c
		}
		out[l] = cp
	}
	return out
}

// TwoLetterEntry counts solution words that start with Combo.
// A zero Count means the combo is known to exist but its count is not.
type TwoLetterEntry struct {
	Combo string
	Count int
}

// TwoLetterList holds at most one entry per combo.
type TwoLetterList []TwoLetterEntry

// Add records count for combo, summing into an existing entry.
func (l *TwoLetterList) Add(combo string, count int) {
	if count < 0 {
		count = 0
	}
	for i := range *l {
		if (*l)[i].Combo == combo {
			(*l)[i].Count += count
			return
		}
	}
	*l = append(*l, TwoLetterEntry{Combo: combo, Count: count})
}

// Lookup returns the count recorded for combo.
func (l TwoLetterList) Lookup(combo string) (int, bool) {
	for _, e := range l {
		if e.Combo == combo {
			return e.Count, true
		}
	}
	return 0, false
}

// Clone returns a copy of the list.
func (l TwoLetterList) Clone() TwoLetterList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// ParsedHints is everything one successful parse of a hints page yields.
// The fields are created together and replaced together.
type ParsedHints struct {
	Grid           HintsGrid
	TotalWords     int
	PangramCount   int
	AllowedLetters LetterSet
	TwoLetters     TwoLetterList
	TargetPoints   int
}
