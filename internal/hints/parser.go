package hints

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// ErrNoGrid is returned when the text holds no letter row with a count.
var ErrNoGrid = errors.New("no recognizable hints grid")

// Result is a successful parse plus the notes collected on the way.
type Result struct {
	domain.ParsedHints

	// Header is the column layout that was used.
	Header Header
	// Metadata is what the summary lines declared.
	Metadata Metadata
	// Warnings describe input that was skipped or inferred.
	Warnings []string
}

// Parse runs every stage over raw and assembles ParsedHints.
// TotalWords is always the grid sum; a declared WORDS count that disagrees
// only adds a warning.
func Parse(raw string) (*Result, error) {
	lines := NormalizeLines(raw)
	if len(lines) == 0 {
		return nil, ErrNoGrid
	}

	res := &Result{ParsedHints: domain.ParsedHints{Grid: make(domain.HintsGrid)}}
	sections := Separate(lines)
	gridLines := sections.Grid

	if set, ok := DetectAllowedLetters(lines[0]); ok {
		res.AllowedLetters = set
		if len(gridLines) > 0 && gridLines[0] == lines[0] {
			gridLines = gridLines[1:]
		}
	} else if looksLikeLetterLine(lines[0]) {
		res.warnf("first line %q is not seven distinct letters; letters unknown", lines[0])
	}

	gridLines = res.takeMetadata(gridLines)
	twoLetterLines := res.takeMetadata(sections.TwoLetter)

	header, at := DetectHeader(gridLines)
	res.Header = header
	if at >= 0 {
		gridLines = append(gridLines[:at:at], gridLines[at+1:]...)
	} else {
		res.warnf("no header row; assuming columns start at length %d", defaultFirstLength)
	}

	seen := make(map[string]bool)
	for _, line := range gridLines {
		letter, values, ok := splitRow(line)
		if !ok || len(values) == 0 {
			continue
		}
		if !res.AllowedLetters.IsEmpty() && !res.AllowedLetters.Has(rune(letter[0])) {
			res.warnf("row %q skipped: %s is not a puzzle letter", line, letter)
			continue
		}
		row, _ := ParseRow(line, header, res.AllowedLetters)
		if seen[row.Letter] {
			res.warnf("duplicate row for %s ignored", row.Letter)
			continue
		}
		seen[row.Letter] = true
		if row.Extra > 0 {
			res.warnf("row %s has %d value(s) beyond the header", row.Letter, row.Extra)
		}
		for length, count := range row.Cells {
			res.Grid.Set(row.Letter, length, count)
		}
	}

	if len(res.Grid) == 0 {
		return nil, ErrNoGrid
	}

	res.TotalWords = res.Grid.Total()
	res.PangramCount = res.Metadata.Pangrams
	res.TargetPoints = res.Metadata.Points
	if res.Metadata.HasWords && res.Metadata.Words != res.TotalWords {
		res.warnf("declared %d words but the grid sums to %d", res.Metadata.Words, res.TotalWords)
	}

	res.TwoLetters = ExtractTwoLetters(twoLetterLines, res.AllowedLetters)
	return res, nil
}

// takeMetadata reads summary lines into res.Metadata and returns the rest.
func (r *Result) takeMetadata(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if readMetadata(line, &r.Metadata) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
