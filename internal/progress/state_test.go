package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

func testHints() domain.ParsedHints {
	return domain.ParsedHints{
		Grid:           domain.HintsGrid{"D": {4: 2, 5: 1}, "P": {4: 3, 6: 1}, "U": {8: 1}},
		TotalWords:     8,
		PangramCount:   1,
		AllowedLetters: domain.NewLetterSet("DELMNPU"),
		TwoLetters:     domain.TwoLetterList{{Combo: "DU", Count: 2}, {Combo: "PU", Count: 3}},
		TargetPoints:   40,
	}
}

func TestState_Classify(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())

	c := s.Classify("dune")
	assert.Equal(t, Classification{Word: "DUNE", Valid: true, Added: true, Points: 1}, c)

	c = s.Classify("PUZZLE")
	assert.Equal(t, Classification{Word: "PUZZLE", Valid: false, Added: true}, c)

	c = s.Classify("undplemm")
	assert.True(t, c.Pangram)
	assert.Equal(t, 15, c.Points)

	assert.Equal(t, []string{"DUNE", "UNDPLEMM"}, s.FoundWords())
	assert.Equal(t, []string{"PUZZLE"}, s.InvalidWords())
}

func TestState_ClassifyIdempotent(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())
	first := s.Classify("DUNE")
	before := s.View()

	again := s.Classify(" dune ")
	assert.False(t, again.Added)
	assert.Equal(t, first.Valid, again.Valid)
	assert.Equal(t, before, s.View())

	s.Classify("PUZZLE")
	assert.False(t, s.Classify("puzzle").Added)
	assert.Equal(t, []string{"PUZZLE"}, s.InvalidWords())
}

func TestState_ClassifyEmpty(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())
	assert.Equal(t, Classification{}, s.Classify("   "))
	assert.Empty(t, s.FoundWords())
}

func TestState_ClassifyLettersUnknown(t *testing.T) {
	t.Parallel()

	h := testHints()
	h.AllowedLetters = 0
	s := NewState(h)

	c := s.Classify("ZEBRA")
	assert.True(t, c.Valid)
	assert.False(t, c.Pangram)
}

func TestState_ClassifyNonLetterWordsRejected(t *testing.T) {
	t.Parallel()

	h := testHints()
	h.AllowedLetters = 0
	h.Grid = domain.HintsGrid{"I": {9: 1}, "E": {6: 1}}
	h.TotalWords = 2
	s := NewState(h)

	for _, w := range []string{"ice cream", "ÉCLAIR"} {
		c := s.Classify(w)
		assert.False(t, c.Valid, w)
		assert.Zero(t, c.Points, w)
	}

	v := s.View()
	assert.Equal(t, h.Grid, v.RemainingGrid)
	assert.Zero(t, v.ProgressPercentage)
	assert.Empty(t, v.FoundWords)
}

func TestState_Remove(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())
	s.Classify("DUNE")
	s.Classify("PUZZLE")

	assert.True(t, s.Remove("dune"))
	assert.True(t, s.Remove("PUZZLE"))
	assert.False(t, s.Remove("DUNE"))
	assert.Empty(t, s.FoundWords())
	assert.Empty(t, s.InvalidWords())

	_, ok := s.Lookup("DUNE")
	assert.False(t, ok)
}

func TestState_Reset(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())
	s.Classify("DUNE")
	s.Classify("PUZZLE")
	s.Reset()

	v := s.View()
	assert.Empty(t, v.FoundWords)
	assert.Empty(t, v.InvalidWords)
	assert.Equal(t, testHints().Grid, v.RemainingGrid)
	assert.Equal(t, testHints().TotalWords, v.TotalWords)
}

func TestNewState_CopiesHints(t *testing.T) {
	t.Parallel()

	h := testHints()
	s := NewState(h)

	h.Grid.Set("D", 4, 0)
	h.TwoLetters[0].Count = 99

	v := s.View()
	assert.Equal(t, testHints().Grid, v.Grid)
	assert.Equal(t, 2, v.RemainingTwoLetters[0].Original)
}

func TestState_View(t *testing.T) {
	t.Parallel()

	s := NewState(testHints())
	for _, w := range []string{"DUNE", "DUNED", "PULP", "UNDPLEMM", "PUZZLE"} {
		s.Classify(w)
	}

	v := s.View()
	assert.Equal(t, []string{"D", "E", "L", "M", "N", "P", "U"}, v.AllowedLetters)
	assert.Equal(t, domain.HintsGrid{"D": {4: 1}, "P": {4: 2, 6: 1}}, v.RemainingGrid)
	assert.Equal(t, testHints().Grid, v.Grid)
	assert.Equal(t, []TwoLetterProgress{
		{Combo: "DU", Original: 2, Found: 2, Remaining: 0},
		{Combo: "PU", Original: 3, Found: 1, Remaining: 2},
	}, v.RemainingTwoLetters)
	assert.Equal(t, []string{"UNDPLEMM"}, v.Pangrams)
	assert.Equal(t, 1, v.PangramsFound)
	assert.Equal(t, 1, v.PangramsTotal)
	assert.Equal(t, 1+5+1+15, v.TotalPoints)
	assert.Equal(t, 40, v.TargetPoints)
	assert.Equal(t, 8, v.TotalWords)
	assert.Equal(t, 50, v.ProgressPercentage)
	assert.Equal(t, []string{"PUZZLE"}, v.InvalidWords)
}

func TestState_ViewNoWords(t *testing.T) {
	t.Parallel()

	s := NewState(domain.ParsedHints{Grid: domain.HintsGrid{}})
	v := s.View()
	assert.Equal(t, 0, v.ProgressPercentage)
	assert.Equal(t, 0, v.TotalPoints)
	assert.Empty(t, v.AllowedLetters)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	sessionID := uuid.New()
	now := time.Now()
	words := []domain.SessionWord{
		{SessionID: sessionID, Word: "DUNE", IsValid: true, CreatedAt: now},
		{SessionID: sessionID, Word: "PUZZLE", IsValid: false, CreatedAt: now},
		{SessionID: sessionID, Word: "PULP", IsValid: true, CreatedAt: now},
		{SessionID: sessionID, Word: "dune", IsValid: true, CreatedAt: now},
	}

	s := Restore(testHints(), words)
	assert.Equal(t, []string{"DUNE", "PULP"}, s.FoundWords())
	assert.Equal(t, []string{"PUZZLE"}, s.InvalidWords())

	fresh := NewState(testHints())
	for _, w := range words {
		fresh.Classify(w.Word)
	}
	require.Equal(t, fresh.View(), s.View())
}
