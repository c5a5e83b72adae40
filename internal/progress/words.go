package progress

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var letterRunRe = regexp.MustCompile(`[A-Za-z]+`)

// ExtractWords pulls candidate words out of pasted or OCR text: runs of
// ASCII letters at least four long, uppercased, first occurrence kept.
func ExtractWords(text string) []string {
	text = norm.NFKC.String(text)

	var out []string
	seen := make(map[string]struct{})
	for _, run := range letterRunRe.FindAllString(text, -1) {
		if len(run) < minScoringLength {
			continue
		}
		w := strings.ToUpper(run)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
