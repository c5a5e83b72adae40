package game

import (
	"io"
	"strings"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// maxWordLen bounds a single submitted word.
const maxWordLen = 64

// ParseInput holds hints text to preview.
type ParseInput struct {
	Text string
}

// Validate checks the text is present and within maxBytes.
func (i ParseInput) Validate(maxBytes int) error {
	return toValidationError(textErrors("text", i.Text, maxBytes, true))
}

// LoadHintsInput holds hints text that replaces the current session.
type LoadHintsInput struct {
	Text string
}

// Validate checks the text is present and within maxBytes.
func (i LoadHintsInput) Validate(maxBytes int) error {
	return toValidationError(textErrors("text", i.Text, maxBytes, true))
}

// ImageInput holds an uploaded screenshot.
type ImageInput struct {
	Image    io.Reader
	Filename string
	// Size is the declared upload size; 0 when unknown.
	Size int64
}

// Validate checks an image is attached and not larger than maxBytes.
func (i ImageInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	if i.Image == nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	if i.Size < 0 {
		errs = append(errs, domain.FieldError{Field: "image", Message: "invalid size"})
	}
	if maxBytes > 0 && i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "image", Message: "image too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitWordsInput holds words typed one by one and/or a pasted block of text.
type SubmitWordsInput struct {
	Words []string
	Text  string
}

// Validate checks that something was submitted and every limit holds.
func (i SubmitWordsInput) Validate(maxWords, maxBytes int) error {
	var errs []domain.FieldError

	if len(i.Words) == 0 && strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required"})
	}
	if maxWords > 0 && len(i.Words) > maxWords {
		errs = append(errs, domain.FieldError{Field: "words", Message: "too many words"})
	}
	for _, w := range i.Words {
		if len(w) > maxWordLen {
			errs = append(errs, domain.FieldError{Field: "words", Message: "word too long"})
			break
		}
	}
	for _, w := range i.Words {
		w = strings.TrimSpace(w)
		if _, ok := domain.WordLetters(w); w != "" && !ok {
			errs = append(errs, domain.FieldError{Field: "words", Message: "words may only contain letters A-Z"})
			break
		}
	}
	errs = append(errs, textErrors("text", i.Text, maxBytes, false)...)

	return toValidationError(errs)
}

func textErrors(field, text string, maxBytes int, required bool) []domain.FieldError {
	var errs []domain.FieldError
	if required && strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if maxBytes > 0 && len(text) > maxBytes {
		errs = append(errs, domain.FieldError{Field: field, Message: "text too long"})
	}
	return errs
}

func toValidationError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
