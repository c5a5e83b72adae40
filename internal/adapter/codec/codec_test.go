package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

func TestGrid(t *testing.T) {
	t.Parallel()

	grid := domain.HintsGrid{"D": {4: 2, 5: 1}, "P": {7: 8}}
	data, err := EncodeGrid(grid)
	require.NoError(t, err)
	assert.JSONEq(t, `{"D":{"4":2,"5":1},"P":{"7":8}}`, string(data))

	got, err := DecodeGrid(data)
	require.NoError(t, err)
	assert.Equal(t, grid, got)
}

func TestDecodeGrid_DropsZeroCells(t *testing.T) {
	t.Parallel()

	got, err := DecodeGrid([]byte(`{"D":{"4":0,"5":1},"E":{"4":0}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.HintsGrid{"D": {5: 1}}, got)
}

func TestDecodeGrid_Invalid(t *testing.T) {
	t.Parallel()

	_, err := DecodeGrid([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestTwoLetters(t *testing.T) {
	t.Parallel()

	list := domain.TwoLetterList{{Combo: "DE", Count: 3}, {Combo: "DU"}}
	data, err := EncodeTwoLetters(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"combo":"DE","count":3},{"combo":"DU","count":0}]`, string(data))

	got, err := DecodeTwoLetters(data)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	empty, err := EncodeTwoLetters(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
