package hints

import "strings"

// Sections is the input split into grid lines and two-letter list lines,
// each in original order.
type Sections struct {
	Grid      []string
	TwoLetter []string
}

// Separate assigns every line to a section. Lines that look like grid rows
// stay in the grid; lines carrying two-letter entries go to the list;
// anything else defaults to the grid.
func Separate(lines []string) Sections {
	var s Sections
	for _, line := range lines {
		switch {
		case isGridRow(line):
			s.Grid = append(s.Grid, line)
		case isTwoLetterLine(line):
			s.TwoLetter = append(s.TwoLetter, line)
		default:
			s.Grid = append(s.Grid, line)
		}
	}
	return s
}

// SeparateText is Separate on raw text, returning both sections as
// newline-joined text.
func SeparateText(raw string) (grid, twoLetter string) {
	s := Separate(NormalizeLines(raw))
	return strings.Join(s.Grid, "\n"), strings.Join(s.TwoLetter, "\n")
}
