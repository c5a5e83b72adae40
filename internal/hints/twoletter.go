package hints

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// twoLetterRe matches "DE-3", "de: 3", "DE 3" and "DE (3)".
var twoLetterRe = regexp.MustCompile(`\b([A-Za-z]{2})(?:\s*[:\-–—]\s*|\s*\(\s*|\s+)(\d+)`)

// ExtractTwoLetters collects two-letter prefix counts from lines. Repeated
// combos are summed. A combo is kept only when both letters are in allowed,
// or, with allowed unknown, when it is written in uppercase.
//
// When no counted combo is found, lines made only of two-letter tokens
// ("DE DU EL") are read as combos with an unknown (zero) count.
func ExtractTwoLetters(lines []string, allowed domain.LetterSet) domain.TwoLetterList {
	var list domain.TwoLetterList
	for _, line := range lines {
		for _, m := range twoLetterRe.FindAllStringSubmatch(line, -1) {
			combo, ok := acceptCombo(m[1], allowed)
			if !ok {
				continue
			}
			n, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			list.Add(combo, n)
		}
	}
	if len(list) > 0 {
		return list
	}

	for _, line := range lines {
		if !isBareComboLine(line) {
			continue
		}
		for _, tok := range comboTokens(line) {
			combo, ok := acceptCombo(tok, allowed)
			if !ok {
				continue
			}
			if _, seen := list.Lookup(combo); !seen {
				list.Add(combo, 0)
			}
		}
	}
	return list
}

func acceptCombo(raw string, allowed domain.LetterSet) (string, bool) {
	combo := strings.ToUpper(raw)
	if allowed.IsEmpty() {
		return combo, raw == combo
	}
	return combo, allowed.Has(rune(combo[0])) && allowed.Has(rune(combo[1]))
}

// isTwoLetterLine reports whether line carries two-letter list content.
func isTwoLetterLine(line string) bool {
	return twoLetterRe.MatchString(line) || isBareComboLine(line)
}

func isBareComboLine(line string) bool {
	toks := comboTokens(line)
	if len(toks) == 0 {
		return false
	}
	for _, tok := range toks {
		if len(tok) != 2 {
			return false
		}
		if _, ok := domain.WordLetters(tok); !ok {
			return false
		}
	}
	return true
}

func comboTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
}
