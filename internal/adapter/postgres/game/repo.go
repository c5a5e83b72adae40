// Package game implements the game session and session word repository
// using PostgreSQL. Session rows use raw SQL because the grid and two-letter
// list are JSONB; word rows are built with squirrel and scanned with scany.
package game

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/codec"
	postgres "github.com/heartmarshall/beetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// Repo provides game persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new game repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, allowed_letters, total_words, pangram_count, target_points, hints_grid, two_letter_list, created_at`

const createSessionSQL = `
INSERT INTO game_sessions (id, user_id, allowed_letters, total_words, pangram_count, target_points, hints_grid, two_letter_list, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + sessionColumns

const getSessionByUserSQL = `
SELECT ` + sessionColumns + `
FROM game_sessions
WHERE user_id = $1`

const deleteSessionByUserSQL = `
DELETE FROM game_sessions WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// GetSessionByUser returns the user's current session.
// Returns domain.ErrNotFound when the user has none.
func (r *Repo) GetSessionByUser(ctx context.Context, userID uuid.UUID) (*domain.GameSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	session, err := scanSession(querier.QueryRow(ctx, getSessionByUserSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "game_session", userID)
	}

	return session, nil
}

// CreateSession inserts a session. A user may hold one session; a second
// insert fails with domain.ErrAlreadyExists.
func (r *Repo) CreateSession(ctx context.Context, s *domain.GameSession) (*domain.GameSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	grid, err := codec.EncodeGrid(s.Hints.Grid)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", s.ID, err)
	}
	twoLetters, err := codec.EncodeTwoLetters(s.Hints.TwoLetters)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", s.ID, err)
	}

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := querier.QueryRow(ctx, createSessionSQL,
		s.ID,
		s.UserID,
		s.Hints.AllowedLetters.String(),
		s.Hints.TotalWords,
		s.Hints.PangramCount,
		s.Hints.TargetPoints,
		grid,
		twoLetters,
		createdAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "game_session", s.ID)
	}

	return created, nil
}

// DeleteSessionByUser removes the user's session and, by cascade, its words.
// Returns domain.ErrNotFound when there was nothing to delete.
func (r *Repo) DeleteSessionByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteSessionByUserSQL, userID)
	if err != nil {
		return postgres.MapError(err, "game_session", userID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("game_session %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

type wordRow struct {
	SessionID uuid.UUID `db:"session_id"`
	Word      string    `db:"word"`
	IsValid   bool      `db:"is_valid"`
	CreatedAt time.Time `db:"created_at"`
}

// ListWordsByUser returns the words of the user's current session in
// submission order.
func (r *Repo) ListWordsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionWord, error) {
	query, args, err := psql.
		Select("w.session_id", "w.word", "w.is_valid", "w.created_at").
		From("session_words w").
		Join("game_sessions s ON s.id = w.session_id").
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("w.created_at", "w.word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words query: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "session_words", userID)
	}

	words := make([]domain.SessionWord, 0, len(rows))
	for _, row := range rows {
		words = append(words, domain.SessionWord(row))
	}
	return words, nil
}

// UpsertWords inserts words, updating validity for words already present.
func (r *Repo) UpsertWords(ctx context.Context, words []domain.SessionWord) error {
	if len(words) == 0 {
		return nil
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := psql.
		Insert("session_words").
		Columns("session_id", "word", "is_valid", "created_at").
		Suffix("ON CONFLICT (session_id, word) DO UPDATE SET is_valid = EXCLUDED.is_valid")
	for i, w := range words {
		createdAt := w.CreatedAt
		if createdAt.IsZero() {
			// Keep batch order stable under ORDER BY created_at.
			createdAt = now.Add(time.Duration(i) * time.Microsecond)
		}
		b = b.Values(w.SessionID, w.Word, w.IsValid, createdAt.UTC().Truncate(time.Microsecond))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert words query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session_words", words[0].SessionID)
	}
	return nil
}

// DeleteWord removes one word. Removing an absent word is not an error.
func (r *Repo) DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error {
	query, args, err := psql.
		Delete("session_words").
		Where(sq.Eq{"session_id": sessionID, "word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete word query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session_word", sessionID)
	}
	return nil
}

// ClearWords removes every word of the session.
func (r *Repo) ClearWords(ctx context.Context, sessionID uuid.UUID) error {
	query, args, err := psql.
		Delete("session_words").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear words query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "session_words", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.GameSession, error) {
	var (
		id           uuid.UUID
		userID       uuid.UUID
		letters      string
		totalWords   int
		pangramCount int
		targetPoints int
		gridJSON     []byte
		twoJSON      []byte
		createdAt    time.Time
	)

	if err := row.Scan(&id, &userID, &letters, &totalWords, &pangramCount, &targetPoints, &gridJSON, &twoJSON, &createdAt); err != nil {
		return nil, err
	}

	grid, err := codec.DecodeGrid(gridJSON)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", id, err)
	}
	twoLetters, err := codec.DecodeTwoLetters(twoJSON)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", id, err)
	}

	return &domain.GameSession{
		ID:     id,
		UserID: userID,
		Hints: domain.ParsedHints{
			Grid:           grid,
			TotalWords:     totalWords,
			PangramCount:   pangramCount,
			AllowedLetters: domain.NewLetterSet(letters),
			TwoLetters:     twoLetters,
			TargetPoints:   targetPoints,
		},
		CreatedAt: createdAt,
	}, nil
}
