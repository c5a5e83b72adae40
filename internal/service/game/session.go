package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/pkg/ctxutil"
)

// Progress returns the current view of the user's session.
func (s *Service) Progress(ctx context.Context) (*ProgressView, error) {
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
	return t.viewLocked(), nil
}

// DeleteSession removes the user's session and its words.
func (s *Service) DeleteSession(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.DeleteSessionByUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNoSession
		}
		return fmt.Errorf("delete session: %w", err)
	}
	s.trackers.Remove(userID)

	s.log.InfoContext(ctx, "session deleted", slog.String("user_id", userID.String()))
	return nil
}
