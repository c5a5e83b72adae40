package progress

import (
	"testing"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

func TestIsValidWord(t *testing.T) {
	t.Parallel()

	allowed := domain.NewLetterSet("DELMNPU")
	tests := []struct {
		name    string
		word    string
		allowed domain.LetterSet
		want    bool
	}{
		{name: "all letters allowed", word: "PUDDLE", allowed: allowed, want: true},
		{name: "lowercase", word: "puddle", allowed: allowed, want: true},
		{name: "foreign letter", word: "PUZZLE", allowed: allowed, want: false},
		{name: "digit", word: "PUD1", allowed: allowed, want: false},
		{name: "letters unknown", word: "ANYTHING", allowed: 0, want: true},
		{name: "letters unknown, space", word: "ICE CREAM", allowed: 0, want: false},
		{name: "letters unknown, accent", word: "ÉCLAIR", allowed: 0, want: false},
		{name: "letters unknown, digit", word: "PUD1", allowed: 0, want: false},
		{name: "empty", word: "  ", allowed: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidWord(tt.word, tt.allowed); got != tt.want {
				t.Errorf("IsValidWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestIsPangram(t *testing.T) {
	t.Parallel()

	allowed := domain.NewLetterSet("DELMNPU")
	tests := []struct {
		name    string
		word    string
		allowed domain.LetterSet
		want    bool
	}{
		{name: "uses every letter", word: "UNDPLEMM", allowed: allowed, want: true},
		{name: "missing letters", word: "PUDDLE", allowed: allowed, want: false},
		{name: "extra letter", word: "UNDPLEMMX", allowed: allowed, want: false},
		{name: "letters unknown", word: "UNDPLEMM", allowed: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IsPangram(tt.word, tt.allowed)
			if got != tt.want {
				t.Errorf("IsPangram(%q) = %v, want %v", tt.word, got, tt.want)
			}
			if got && !IsValidWord(tt.word, tt.allowed) {
				t.Errorf("IsPangram(%q) true for an invalid word", tt.word)
			}
		})
	}
}
