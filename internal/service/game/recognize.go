package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// recognize runs OCR on input. One job per user may be in flight; a second
// concurrent request fails with domain.ErrConflict.
func (s *Service) recognize(ctx context.Context, userID uuid.UUID, input ImageInput) (string, error) {
	if !s.ocrGate.acquire(userID) {
		return "", fmt.Errorf("a screenshot is already being processed: %w", domain.ErrConflict)
	}
	defer s.ocrGate.release(userID)

	image := input.Image
	if s.cfg.MaxImageBytes > 0 {
		image = io.LimitReader(image, s.cfg.MaxImageBytes)
	}

	start := time.Now()
	text, err := s.ocr.ExtractText(ctx, image, input.Filename)
	if err != nil {
		s.log.WarnContext(ctx, "ocr failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("recognize screenshot: %w", err)
	}

	s.log.InfoContext(ctx, "screenshot recognised",
		slog.String("user_id", userID.String()),
		slog.Int("chars", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("image", "no text recognised; try a clearer screenshot or paste the text")
	}
	return text, nil
}
