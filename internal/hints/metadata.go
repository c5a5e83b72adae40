package hints

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pangramRe = regexp.MustCompile(`(?i)\bpangrams?\b\s*[:\-]?\s*(\d+)`)
	wordsRe   = regexp.MustCompile(`(?i)\bwords\b\s*[:\-]?\s*(\d+)`)
	pointsRe  = regexp.MustCompile(`(?i)\bpoints\b\s*[:\-]?\s*(\d+)`)
)

// Metadata holds the summary counts printed above the grid, as in
// "WORDS: 42, POINTS: 180, PANGRAMS: 2".
type Metadata struct {
	Words       int
	Points      int
	Pangrams    int
	HasWords    bool
	HasPoints   bool
	HasPangrams bool
}

// ExtractPangramCount returns the pangram count from a line such as
// "Pangrams: 2". A "Perfect pangrams" count is not the pangram count.
func ExtractPangramCount(line string) (int, bool) {
	for _, m := range pangramRe.FindAllStringSubmatchIndex(line, -1) {
		if isPerfectQualifier(line[:m[0]]) {
			continue
		}
		n, err := strconv.Atoi(line[m[2]:m[3]])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

func isPerfectQualifier(prefix string) bool {
	return strings.HasSuffix(strings.ToUpper(strings.TrimRight(prefix, " ")), "PERFECT")
}

// readMetadata merges any summary counts found in line into md and reports
// whether the line was a summary line. Summary lines never hold grid rows.
func readMetadata(line string, md *Metadata) bool {
	matched := false

	if n, ok := ExtractPangramCount(line); ok {
		md.Pangrams, md.HasPangrams = n, true
		matched = true
	} else if pangramRe.MatchString(line) {
		matched = true
	}

	if m := wordsRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			md.Words, md.HasWords = n, true
			matched = true
		}
	}

	if m := pointsRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			md.Points, md.HasPoints = n, true
			matched = true
		}
	}

	return matched
}
