package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

func fieldErrors(t *testing.T, err error) []domain.FieldError {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve.Errors
}

func TestLoadHintsInput_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, LoadHintsInput{Text: hintsPage}.Validate(4096))

	errs := fieldErrors(t, LoadHintsInput{Text: " \n\t"}.Validate(4096))
	assert.Equal(t, []domain.FieldError{{Field: "text", Message: "required"}}, errs)

	errs = fieldErrors(t, LoadHintsInput{Text: strings.Repeat("A", 11)}.Validate(10))
	assert.Equal(t, "text too long", errs[0].Message)
}

func TestParseInput_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ParseInput{Text: "D E L"}.Validate(0))
	assert.ErrorIs(t, ParseInput{}.Validate(10), domain.ErrValidation)
}

func TestSubmitWordsInput_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   SubmitWordsInput
		wantMsg string
	}{
		{"words only", SubmitWordsInput{Words: []string{"DUNE"}}, ""},
		{"text only", SubmitWordsInput{Text: "dune plume"}, ""},
		{"nothing", SubmitWordsInput{Text: "  "}, "required"},
		{"too many", SubmitWordsInput{Words: []string{"A", "B", "C", "D"}}, "too many words"},
		{"too long word", SubmitWordsInput{Words: []string{strings.Repeat("E", maxWordLen+1)}}, "word too long"},
		{"space inside word", SubmitWordsInput{Words: []string{"ice cream"}}, "words may only contain letters A-Z"},
		{"accented letter", SubmitWordsInput{Words: []string{"ÉCLAIR"}}, "words may only contain letters A-Z"},
		{"digit", SubmitWordsInput{Words: []string{"DUNE", "PUD1"}}, "words may only contain letters A-Z"},
		{"surrounding spaces", SubmitWordsInput{Words: []string{" dune "}}, ""},
		{"too long text", SubmitWordsInput{Text: strings.Repeat("e", 101)}, "text too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate(3, 100)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestImageInput_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ImageInput{Image: strings.NewReader("x"), Size: 1}.Validate(10))
	assert.NoError(t, ImageInput{Image: strings.NewReader("x")}.Validate(10), "unknown size is allowed")

	errs := fieldErrors(t, ImageInput{}.Validate(10))
	assert.Equal(t, "required", errs[0].Message)

	errs = fieldErrors(t, ImageInput{Image: strings.NewReader("x"), Size: 11}.Validate(10))
	assert.Equal(t, "image too large", errs[0].Message)
}

func TestNormalizeWords(t *testing.T) {
	t.Parallel()
	got := normalizeWords([]string{" dune", "DUNE", "", "Plume ", "dune"})
	assert.Equal(t, []string{"DUNE", "PLUME"}, got)
}
