package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "only whitespace", input: " \n\t\n  ", want: nil},
		{name: "trim and collapse", input: "  d:   2\t1  - ", want: []string{"d: 2 1 -"}},
		{name: "crlf and blank lines", input: "D E L M N P U\r\n\r\nd: 2 1 -\r\n", want: []string{"D E L M N P U", "d: 2 1 -"}},
		{name: "bare carriage returns", input: "a: 1\rb: 2", want: []string{"a: 1", "b: 2"}},
		{name: "non-breaking space", input: "d:\u00a02\u00a01", want: []string{"d: 2 1"}},
		{name: "full-width digits", input: "p: ３ ２", want: []string{"p: 3 2"}},
		{name: "zero-width runes dropped", input: "p\u200b: 3\ufeff", want: []string{"p: 3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeLines(tt.input))
		})
	}
}
