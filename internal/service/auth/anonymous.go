package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// SignInAnonymous creates a new anonymous user and issues its access token.
func (s *Service) SignInAnonymous(ctx context.Context) (*AuthResult, error) {
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:          uuid.New(),
		IsAnonymous: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.SignInAnonymous: create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role())
	if err != nil {
		return nil, fmt.Errorf("auth.SignInAnonymous: generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "anonymous user signed in", slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired, or if its user
// no longer exists (removed by cleanup).
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	if err := s.users.Touch(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}

	return userID, nil
}
