package progress

import "github.com/heartmarshall/beetracker-backend/internal/domain"

// IsValidWord reports whether word is made of ASCII letters only and every
// letter is a puzzle letter. With allowed unknown any such word is valid.
func IsValidWord(word string, allowed domain.LetterSet) bool {
	w := domain.NormalizeWord(word)
	letters, ok := domain.WordLetters(w)
	if !ok || w == "" {
		return false
	}
	return allowed.IsEmpty() || allowed.Covers(letters)
}

// IsPangram reports whether word is valid and uses all the puzzle letters.
// It is always false while the letters are unknown.
func IsPangram(word string, allowed domain.LetterSet) bool {
	if allowed.IsEmpty() {
		return false
	}
	letters, ok := domain.WordLetters(domain.NormalizeWord(word))
	return ok && letters == allowed
}
