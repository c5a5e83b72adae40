package progress

import "github.com/heartmarshall/beetracker-backend/internal/domain"

// TwoLetterProgress is one two-letter entry with the found words taken off.
type TwoLetterProgress struct {
	Combo     string
	Original  int
	Found     int
	Remaining int
}

// RemainingGrid returns a copy of grid with one count taken off the
// (first letter, length) cell of every distinct found word. Cells never go
// below zero and empty cells are removed. grid is not modified.
func RemainingGrid(grid domain.HintsGrid, found []string) domain.HintsGrid {
	out := grid.Clone()
	for _, w := range distinct(found) {
		letter, length := w[:1], len(w)
		out.Set(letter, length, out.Count(letter, length)-1)
	}
	return out
}

// RemainingTwoLetters pairs every entry of list with the number of distinct
// found words starting with its combo. Order follows list.
func RemainingTwoLetters(list domain.TwoLetterList, found []string) []TwoLetterProgress {
	byCombo := make(map[string]int)
	for _, w := range distinct(found) {
		if len(w) >= 2 {
			byCombo[w[:2]]++
		}
	}

	out := make([]TwoLetterProgress, 0, len(list))
	for _, e := range list {
		n := byCombo[e.Combo]
		out = append(out, TwoLetterProgress{
			Combo:     e.Combo,
			Original:  e.Count,
			Found:     n,
			Remaining: max(0, e.Count-n),
		})
	}
	return out
}

// distinct normalises words and drops empties and repeats.
func distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = domain.NormalizeWord(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
