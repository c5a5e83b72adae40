package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/codec"
	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// SeedUser creates an anonymous user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserAt(t, pool, time.Now())
}

// SeedUserAt creates an anonymous user last seen at updatedAt.
func SeedUserAt(t *testing.T, pool *pgxpool.Pool, updatedAt time.Time) domain.User {
	t.Helper()
	ctx := context.Background()

	ts := updatedAt.UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		IsAnonymous: true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, is_anonymous, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.IsAnonymous, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedSession creates a game session for userID with a small D/P grid
// over the letters DELMNPU.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.GameSession {
	t.Helper()
	ctx := context.Background()

	session := domain.GameSession{
		ID:     uuid.New(),
		UserID: userID,
		Hints: domain.ParsedHints{
			Grid:           domain.HintsGrid{"D": {4: 2, 5: 1}, "P": {4: 3, 6: 1}},
			TotalWords:     7,
			PangramCount:   1,
			AllowedLetters: domain.NewLetterSet("DELMNPU"),
			TwoLetters:     domain.TwoLetterList{{Combo: "DU", Count: 3}, {Combo: "PU", Count: 4}},
			TargetPoints:   40,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	grid, err := codec.EncodeGrid(session.Hints.Grid)
	if err != nil {
		t.Fatalf("testhelper: SeedSession encode grid: %v", err)
	}
	twoLetters, err := codec.EncodeTwoLetters(session.Hints.TwoLetters)
	if err != nil {
		t.Fatalf("testhelper: SeedSession encode two-letter list: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO game_sessions (id, user_id, allowed_letters, total_words, pangram_count, target_points, hints_grid, two_letter_list, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		session.ID, session.UserID, session.Hints.AllowedLetters.String(),
		session.Hints.TotalWords, session.Hints.PangramCount, session.Hints.TargetPoints,
		grid, twoLetters, session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return session
}
