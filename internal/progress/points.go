package progress

import (
	"unicode"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

const (
	minScoringLength = 4
	pangramBonus     = 7
)

// PointsForWord scores one word: 1 point for four letters, one point per
// letter beyond that, plus 7 for a pangram. Shorter words score nothing.
func PointsForWord(word string, pangram bool) int {
	n := letterCount(domain.NormalizeWord(word))
	if n < minScoringLength {
		return 0
	}
	points := n
	if n == minScoringLength {
		points = 1
	}
	if pangram {
		points += pangramBonus
	}
	return points
}

// TotalPoints sums PointsForWord over words; pangrams holds the words that
// earn the bonus.
func TotalPoints(words []string, pangrams map[string]bool) int {
	total := 0
	for _, w := range words {
		total += PointsForWord(w, pangrams[domain.NormalizeWord(w)])
	}
	return total
}

func letterCount(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
