// Package hints turns the text of a Spelling Bee hints page into a
// domain.ParsedHints value.
//
// The text may come from a paste or from OCR of a screenshot; both go through
// the same stages:
//
//	NormalizeLines       clean unicode and whitespace, drop empty lines
//	Separate             split grid lines from two-letter list lines
//	DetectAllowedLetters first line as the seven puzzle letters
//	ExtractPangramCount  PANGRAMS / WORDS / POINTS summary lines
//	DetectHeader         column word lengths, or the default 4, 5, 6, ...
//	ParseRow             one letter row mapped onto the columns
//	ExtractTwoLetters    two-letter prefix counts
//
// Parse runs them in order. When no letter row yields a cell it returns
// ErrNoGrid; it never invents a grid.
package hints
