package progress

import (
	"math"
	"slices"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// State records which submitted words were found and which were rejected
// for one set of hints. Once classified a word keeps its classification
// until it is removed or the state is reset.
//
// A State is not safe for concurrent use.
type State struct {
	hints   domain.ParsedHints
	found   []string
	invalid []string
	words   map[string]bool
}

// NewState returns an empty State for hints. The grid and two-letter list
// are copied, so later changes by the caller do not reach the State.
func NewState(hints domain.ParsedHints) *State {
	hints.Grid = hints.Grid.Clone()
	hints.TwoLetters = hints.TwoLetters.Clone()
	return &State{
		hints: hints,
		words: make(map[string]bool),
	}
}

// Restore rebuilds a State from persisted words in their stored order.
// Stored validity wins over the current letters.
func Restore(hints domain.ParsedHints, words []domain.SessionWord) *State {
	s := NewState(hints)
	for _, w := range words {
		word := domain.NormalizeWord(w.Word)
		if word == "" {
			continue
		}
		if _, ok := s.words[word]; ok {
			continue
		}
		s.record(word, w.IsValid)
	}
	return s
}

// Classification is the outcome of submitting one word.
type Classification struct {
	Word    string
	Valid   bool
	Pangram bool
	// Added is false when the word had already been recorded.
	Added  bool
	Points int
}

// Classify records word as found or invalid. Submitting a recorded word
// again changes nothing and returns its existing classification.
func (s *State) Classify(word string) Classification {
	w := domain.NormalizeWord(word)
	if w == "" {
		return Classification{}
	}
	if valid, ok := s.words[w]; ok {
		return s.classification(w, valid, false)
	}
	valid := IsValidWord(w, s.hints.AllowedLetters)
	s.record(w, valid)
	return s.classification(w, valid, true)
}

// Remove drops word from whichever set holds it.
func (s *State) Remove(word string) bool {
	w := domain.NormalizeWord(word)
	valid, ok := s.words[w]
	if !ok {
		return false
	}
	delete(s.words, w)
	if valid {
		s.found = slices.DeleteFunc(s.found, func(x string) bool { return x == w })
	} else {
		s.invalid = slices.DeleteFunc(s.invalid, func(x string) bool { return x == w })
	}
	return true
}

// Reset clears both word sets and keeps the hints.
func (s *State) Reset() {
	s.found = nil
	s.invalid = nil
	s.words = make(map[string]bool)
}

// Lookup reports whether word is recorded and, if so, whether it was valid.
func (s *State) Lookup(word string) (valid, ok bool) {
	valid, ok = s.words[domain.NormalizeWord(word)]
	return valid, ok
}

// FoundWords returns the valid words in submission order.
func (s *State) FoundWords() []string { return slices.Clone(s.found) }

// InvalidWords returns the rejected words in submission order.
func (s *State) InvalidWords() []string { return slices.Clone(s.invalid) }

func (s *State) record(word string, valid bool) {
	s.words[word] = valid
	if valid {
		s.found = append(s.found, word)
	} else {
		s.invalid = append(s.invalid, word)
	}
}

func (s *State) classification(word string, valid, added bool) Classification {
	c := Classification{Word: word, Valid: valid, Added: added}
	if valid {
		c.Pangram = IsPangram(word, s.hints.AllowedLetters)
		c.Points = PointsForWord(word, c.Pangram)
	}
	return c
}

// View is everything derived from a State for display.
type View struct {
	AllowedLetters      []string
	Grid                domain.HintsGrid
	RemainingGrid       domain.HintsGrid
	RemainingTwoLetters []TwoLetterProgress
	FoundWords          []string
	InvalidWords        []string
	Pangrams            []string
	PangramsFound       int
	PangramsTotal       int
	TotalPoints         int
	TargetPoints        int
	TotalWords          int
	ProgressPercentage  int
}

// View derives the display values. Only found words reduce the counts.
func (s *State) View() View {
	allowed := s.hints.AllowedLetters
	v := View{
		AllowedLetters:      allowed.Letters(),
		Grid:                s.hints.Grid.Clone(),
		RemainingGrid:       RemainingGrid(s.hints.Grid, s.found),
		RemainingTwoLetters: RemainingTwoLetters(s.hints.TwoLetters, s.found),
		FoundWords:          s.FoundWords(),
		InvalidWords:        s.InvalidWords(),
		PangramsTotal:       s.hints.PangramCount,
		TargetPoints:        s.hints.TargetPoints,
		TotalWords:          s.hints.TotalWords,
	}

	pangrams := make(map[string]bool)
	for _, w := range s.found {
		if IsPangram(w, allowed) {
			pangrams[w] = true
			v.Pangrams = append(v.Pangrams, w)
		}
	}
	v.PangramsFound = len(v.Pangrams)
	v.TotalPoints = TotalPoints(s.found, pangrams)
	v.ProgressPercentage = percentage(len(s.found), s.hints.TotalWords)
	return v
}

func percentage(found, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(found) / float64(total) * 100))
}
