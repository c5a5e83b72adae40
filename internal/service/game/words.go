package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
	"github.com/heartmarshall/beetracker-backend/pkg/ctxutil"
)

// SubmitWords classifies typed words and words found in pasted text.
// Newly recorded words are saved in the background.
func (s *Service) SubmitWords(ctx context.Context, input SubmitWordsInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxWordsPerRequest, s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	words := make([]string, 0, len(input.Words))
	words = append(words, input.Words...)
	if input.Text != "" {
		words = append(words, progress.ExtractWords(input.Text)...)
	}

	return s.submit(ctx, userID, words)
}

// SubmitScreenshot recognises the words in a screenshot of a found-words
// list and submits them.
func (s *Service) SubmitScreenshot(ctx context.Context, input ImageInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxImageBytes); err != nil {
		return nil, err
	}

	// Fail before running OCR when there is nothing to submit to.
	if _, err := s.sessionTracker(ctx, userID); err != nil {
		return nil, err
	}

	text, err := s.recognize(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	words := progress.ExtractWords(text)
	if len(words) == 0 {
		return nil, domain.NewValidationError("image", "no words recognised; try a clearer screenshot or type the words")
	}

	return s.submit(ctx, userID, words)
}

func (s *Service) submit(ctx context.Context, userID uuid.UUID, words []string) (*SubmitResult, error) {
	words = normalizeWords(words)
	if len(words) == 0 {
		return nil, domain.NewValidationError("words", "no words found")
	}
	if limit := s.cfg.MaxWordsPerRequest; limit > 0 && len(words) > limit {
		return nil, domain.NewValidationError("words", "too many words")
	}

	t, err := s.sessionTracker(ctx, userID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now().UTC()
	results := make([]progress.Classification, 0, len(words))
	var rows []domain.SessionWord
	for _, w := range words {
		c := t.state.Classify(w)
		results = append(results, c)
		if c.Added {
			rows = append(rows, domain.SessionWord{
				SessionID: t.session.ID,
				Word:      c.Word,
				IsValid:   c.Valid,
				CreatedAt: now.Add(time.Duration(len(rows)) * time.Microsecond),
			})
		}
	}

	if len(rows) > 0 {
		s.persist(ctx, t, mirrorJob{op: opUpsert, sessionID: t.session.ID, words: rows, tracker: t})
	}

	s.log.InfoContext(ctx, "words submitted",
		slog.String("user_id", userID.String()),
		slog.Int("submitted", len(words)),
		slog.Int("added", len(rows)),
	)

	return &SubmitResult{Classifications: results, Progress: t.viewLocked()}, nil
}

// RemoveWord drops a recorded word. Returns domain.ErrNotFound when the word
// was never recorded.
func (s *Service) RemoveWord(ctx context.Context, word string) (*ProgressView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w := domain.NormalizeWord(word)
	if w == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if len(w) > maxWordLen {
		return nil, domain.NewValidationError("word", "word too long")
	}

	t, err := s.sessionTracker(ctx, userID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.state.Remove(w) {
		return nil, fmt.Errorf("word %s: %w", w, domain.ErrNotFound)
	}
	s.persist(ctx, t, mirrorJob{op: opDelete, sessionID: t.session.ID, word: w, tracker: t})

	s.log.InfoContext(ctx, "word removed",
		slog.String("user_id", userID.String()),
		slog.String("word", w),
	)

	return t.viewLocked(), nil
}

// ResetWords clears found and invalid words but keeps the hints.
func (s *Service) ResetWords(ctx context.Context) (*ProgressView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.sessionTracker(ctx, userID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Reset()
	s.persist(ctx, t, mirrorJob{op: opClear, sessionID: t.session.ID, tracker: t})

	s.log.InfoContext(ctx, "words reset", slog.String("user_id", userID.String()))

	return t.viewLocked(), nil
}

// persist queues a write. A write that cannot be queued is reported the
// same way as one that fails.
func (s *Service) persist(ctx context.Context, t *tracker, job mirrorJob) {
	if err := s.mirror.enqueue(ctx, job); err != nil {
		s.log.WarnContext(ctx, "word write not queued",
			slog.String("session_id", job.sessionID.String()),
			slog.String("error", err.Error()),
		)
		t.addNotice(job.notice())
	}
}

// normalizeWords uppercases, trims and de-duplicates while keeping order.
func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		n := domain.NormalizeWord(w)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
