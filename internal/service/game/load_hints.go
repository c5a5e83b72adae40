package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
	"github.com/heartmarshall/beetracker-backend/pkg/ctxutil"
)

// Parse previews hints text without touching any session.
func (s *Service) Parse(ctx context.Context, input ParseInput) (*hints.Result, error) {
	if err := input.Validate(s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	res, err := hints.Parse(input.Text)
	if err != nil {
		return nil, parseFailure(err)
	}
	return res, nil
}

// LoadHints parses text and replaces the user's session with it. On a parse
// failure the existing session is left untouched.
func (s *Service) LoadHints(ctx context.Context, input LoadHintsInput) (*LoadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTextBytes); err != nil {
		return nil, err
	}

	return s.loadText(ctx, userID, input.Text)
}

// LoadHintsFromImage recognises the text of a hints screenshot and loads it.
func (s *Service) LoadHintsFromImage(ctx context.Context, input ImageInput) (*LoadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxImageBytes); err != nil {
		return nil, err
	}

	text, err := s.recognize(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	return s.loadText(ctx, userID, text)
}

func (s *Service) loadText(ctx context.Context, userID uuid.UUID, text string) (*LoadResult, error) {
	res, err := hints.Parse(text)
	if err != nil {
		s.log.InfoContext(ctx, "hints not recognised", slog.String("user_id", userID.String()))
		return nil, parseFailure(err)
	}

	session := &domain.GameSession{
		ID:        uuid.New(),
		UserID:    userID,
		Hints:     res.ParsedHints,
		CreatedAt: time.Now().UTC(),
	}

	var created *domain.GameSession
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteSessionByUser(ctx, userID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete previous session: %w", err)
		}
		var err error
		created, err = s.repo.CreateSession(ctx, session)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("replace session: %w", err)
	}

	t := newTracker(created, progress.NewState(created.Hints))
	s.trackers.Add(userID, t)

	s.log.InfoContext(ctx, "hints loaded",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.Int("total_words", created.Hints.TotalWords),
		slog.Int("warnings", len(res.Warnings)),
	)

	t.mu.Lock()
	view := t.viewLocked()
	t.mu.Unlock()

	return &LoadResult{Parse: res, Progress: view}, nil
}

// parseFailure turns hints.ErrNoGrid into a validation error that still
// matches hints.ErrNoGrid.
func parseFailure(err error) error {
	if !errors.Is(err, hints.ErrNoGrid) {
		return err
	}
	return fmt.Errorf("%w: %w", hints.ErrNoGrid, domain.NewValidationError("text",
		"could not find a hints grid; check the text or try a clearer screenshot"))
}
