package hints

import (
	"strconv"
	"strings"
)

const (
	minColumnLength     = 3
	maxColumnLength     = 20
	defaultFirstLength  = 4
	headerLabel         = "LETTER"
	minUnlabelledColumn = 2
)

// Header holds the word length of each grid column, left to right.
// A zero Header (Explicit false) is the fallback layout: column i is
// length 4+i with no upper bound.
type Header struct {
	Lengths  []int
	Explicit bool
}

// Length returns the word length for column i. ok is false when an explicit
// header has fewer columns.
func (h Header) Length(i int) (int, bool) {
	if i < len(h.Lengths) {
		return h.Lengths[i], true
	}
	if h.Explicit {
		return 0, false
	}
	return defaultFirstLength + i, true
}

// DetectHeader finds the first header line and returns it together with
// its index in lines, or a fallback Header and -1.
func DetectHeader(lines []string) (Header, int) {
	for i, line := range lines {
		if lengths, ok := parseHeaderLine(line); ok {
			return Header{Lengths: lengths, Explicit: true}, i
		}
	}
	return Header{}, -1
}

// parseHeaderLine accepts "4 5 6 7 8", "4 5 6 7 Σ" and "LETTER 4 5 6".
// Lengths must be in range and strictly increasing.
func parseHeaderLine(line string) ([]int, bool) {
	fields := strings.Fields(line)
	labelled := false
	if len(fields) > 0 && strings.EqualFold(strings.TrimRight(fields[0], ":"), headerLabel) {
		fields = fields[1:]
		labelled = true
	}
	if len(fields) > 0 && isTotalMarker(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}

	if len(fields) == 0 || (!labelled && len(fields) < minUnlabelledColumn) {
		return nil, false
	}

	lengths := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < minColumnLength || n > maxColumnLength {
			return nil, false
		}
		if len(lengths) > 0 && n <= lengths[len(lengths)-1] {
			return nil, false
		}
		lengths = append(lengths, n)
	}
	return lengths, true
}

// isTotalMarker matches the column/row total label of a hints grid.
func isTotalMarker(s string) bool {
	switch strings.ToUpper(strings.TrimRight(s, ":")) {
	case "Σ", "∑", "TOT", "TOTAL":
		return true
	}
	return false
}
