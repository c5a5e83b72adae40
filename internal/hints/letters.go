package hints

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// DetectAllowedLetters reads the puzzle letters from a line such as
// "D E L M N P U", "d, e, l, m, n, p, u" or "PUDELMN". An optional
// "Letters:" style label is skipped. The detection is accepted only when the
// line holds exactly seven distinct letters.
func DetectAllowedLetters(line string) (domain.LetterSet, bool) {
	if label, rest, ok := strings.Cut(line, ":"); ok && isLabel(label) {
		line = rest
	}

	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return 0, false
	}

	var letters string
	if len(fields) == 1 {
		letters = fields[0]
	} else {
		var b strings.Builder
		for _, f := range fields {
			if utf8.RuneCountInString(f) != 1 {
				return 0, false
			}
			b.WriteString(f)
		}
		letters = b.String()
	}

	set, ok := domain.WordLetters(letters)
	if !ok || len(letters) != domain.PuzzleLetterCount || set.Len() != domain.PuzzleLetterCount {
		return 0, false
	}
	return set, true
}

// looksLikeLetterLine reports whether line is made only of letters,
// separators and an optional label, so a failed detection can be reported.
func looksLikeLetterLine(line string) bool {
	if label, rest, ok := strings.Cut(line, ":"); ok && isLabel(label) {
		line = rest
	}
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 1 {
			return false
		}
		if _, ok := domain.WordLetters(f); !ok {
			return false
		}
	}
	return true
}

func isLabel(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return false
	}
	_, ok := domain.WordLetters(strings.ReplaceAll(s, " ", ""))
	return ok
}
