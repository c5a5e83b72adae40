package hints

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// rowRe matches "d: 2 1 -", "D - 2 3", "P 4 3 1 8". A hyphen directly after
// the letter is a separator; one after a space is a zero marker.
var rowRe = regexp.MustCompile(`^([A-Za-z])(?:\s*:|-|\s)\s*(.*)$`)

// maxCellCount bounds a single cell. Larger numbers are OCR noise and are
// treated as absent so totals stay small and non-negative.
const maxCellCount = 999

// Row is one grid row mapped onto word lengths.
type Row struct {
	Letter string
	Cells  map[int]int
	// TotalStripped is set when a trailing row total was recognised and removed.
	TotalStripped bool
	// Extra counts values that fell beyond an explicit header.
	Extra int
}

// ParseRow maps a grid row onto the header columns. Tokens that are not
// integers or zero markers are skipped, not treated as zero. A trailing value
// equal to the sum of the others is a row total and is discarded.
// ok is false when the line is not a letter row with at least one value, or
// the letter is outside a known allowed set.
func ParseRow(line string, header Header, allowed domain.LetterSet) (Row, bool) {
	letter, values, ok := splitRow(line)
	if !ok || len(values) == 0 {
		return Row{}, false
	}
	if !allowed.IsEmpty() && !allowed.Has(rune(letter[0])) {
		return Row{}, false
	}

	row := Row{Letter: letter, Cells: make(map[int]int)}
	values, row.TotalStripped = stripRowTotal(values, header)

	for i, v := range values {
		length, ok := header.Length(i)
		if !ok {
			row.Extra++
			continue
		}
		if v > 0 {
			row.Cells[length] = v
		}
	}
	return row, true
}

// splitRow returns the uppercased row letter and its numeric values.
func splitRow(line string) (string, []int, bool) {
	m := rowRe.FindStringSubmatch(line)
	if m == nil {
		return "", nil, false
	}
	var values []int
	for _, tok := range rowTokens(m[2]) {
		if v, ok := cellValue(tok); ok {
			values = append(values, v)
		}
	}
	return strings.ToUpper(m[1]), values, true
}

// isGridRow reports whether line is a letter followed only by cell values.
func isGridRow(line string) bool {
	m := rowRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	toks := rowTokens(m[2])
	if len(toks) == 0 {
		return false
	}
	for _, tok := range toks {
		if _, ok := cellValue(tok); !ok {
			return false
		}
	}
	return true
}

func rowTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|' || r == ';'
	})
}

func cellValue(tok string) (int, bool) {
	tok = strings.TrimRight(tok, ".:")
	if isZeroMarker(tok) {
		return 0, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > maxCellCount {
		return 0, false
	}
	return n, true
}

func isZeroMarker(tok string) bool {
	switch tok {
	case "-", "—", "–", "O", "o", "0":
		return true
	}
	return false
}

// stripRowTotal drops a trailing row total. Under an explicit header a row
// that fits the columns exactly is kept whole, since its last cell is a real
// column and may equal the sum by coincidence.
func stripRowTotal(values []int, header Header) ([]int, bool) {
	if len(values) < 2 {
		return values, false
	}
	if header.Explicit && len(values) <= len(header.Lengths) {
		return values, false
	}
	last := values[len(values)-1]
	sum := 0
	for _, v := range values[:len(values)-1] {
		sum += v
	}
	if last != sum {
		return values, false
	}
	return values[:len(values)-1], true
}
