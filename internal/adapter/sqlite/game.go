package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/adapter/codec"
	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

const sessionColumns = `id, user_id, allowed_letters, total_words, pangram_count, target_points, hints_grid, two_letter_list, created_at`

// SQLite extended result codes for constraint failures.
const (
	codeConstraint           = 19
	codeConstraintForeignKey = 787
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// GetSessionByUser returns the user's current session.
// Returns domain.ErrNotFound when the user has none.
func (s *Store) GetSessionByUser(ctx context.Context, userID uuid.UUID) (*domain.GameSession, error) {
	row := s.querier(ctx).QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM game_sessions WHERE user_id = ?`,
		userID.String(),
	)
	session, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "game_session", userID)
	}
	return session, nil
}

// CreateSession inserts a session. A second session for the same user fails
// with domain.ErrAlreadyExists.
func (s *Store) CreateSession(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error) {
	grid, err := codec.EncodeGrid(session.Hints.Grid)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", session.ID, err)
	}
	twoLetters, err := codec.EncodeTwoLetters(session.Hints.TwoLetters)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", session.ID, err)
	}

	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.execWithRetry(ctx,
		`INSERT INTO game_sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID.String(),
		session.UserID.String(),
		session.Hints.AllowedLetters.String(),
		session.Hints.TotalWords,
		session.Hints.PangramCount,
		session.Hints.TargetPoints,
		string(grid),
		string(twoLetters),
		formatTime(createdAt),
	)
	if err != nil {
		return nil, mapError(err, "game_session", session.ID)
	}

	return s.GetSessionByUser(ctx, session.UserID)
}

// DeleteSessionByUser removes the user's session and its words.
// Returns domain.ErrNotFound when there was nothing to delete.
func (s *Store) DeleteSessionByUser(ctx context.Context, userID uuid.UUID) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM game_sessions WHERE user_id = ?`, userID.String())
	if err != nil {
		return mapError(err, "game_session", userID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("game_session %s: rows affected: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("game_session %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// ListWordsByUser returns the words of the user's current session in
// submission order.
func (s *Store) ListWordsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionWord, error) {
	rows, err := s.querier(ctx).QueryContext(ctx,
		`SELECT w.session_id, w.word, w.is_valid, w.created_at
		 FROM session_words w
		 JOIN game_sessions s ON s.id = w.session_id
		 WHERE s.user_id = ?
		 ORDER BY w.created_at, w.rowid`,
		userID.String(),
	)
	if err != nil {
		return nil, mapError(err, "session_words", userID)
	}
	defer rows.Close()

	var words []domain.SessionWord
	for rows.Next() {
		var (
			w                    domain.SessionWord
			sessionID, createdAt string
		)
		if err := rows.Scan(&sessionID, &w.Word, &w.IsValid, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session word: %w", err)
		}
		if w.SessionID, err = uuid.Parse(sessionID); err != nil {
			return nil, fmt.Errorf("session word %q: parse session id: %w", w.Word, err)
		}
		if w.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("session word %q: %w", w.Word, err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session words: %w", err)
	}
	return words, nil
}

// UpsertWords inserts words, updating validity for words already present.
func (s *Store) UpsertWords(ctx context.Context, words []domain.SessionWord) error {
	if len(words) == 0 {
		return nil
	}

	now := time.Now()
	placeholders := make([]string, 0, len(words))
	args := make([]any, 0, len(words)*4)
	for i, w := range words {
		createdAt := w.CreatedAt
		if createdAt.IsZero() {
			createdAt = now.Add(time.Duration(i) * time.Microsecond)
		}
		placeholders = append(placeholders, "(?, ?, ?, ?)")
		args = append(args, w.SessionID.String(), w.Word, w.IsValid, formatTime(createdAt))
	}

	query := `INSERT INTO session_words (session_id, word, is_valid, created_at) VALUES ` +
		strings.Join(placeholders, ", ") +
		` ON CONFLICT (session_id, word) DO UPDATE SET is_valid = excluded.is_valid`

	if _, err := s.execWithRetry(ctx, query, args...); err != nil {
		return mapError(err, "session_words", words[0].SessionID)
	}
	return nil
}

// DeleteWord removes one word. Removing an absent word is not an error.
func (s *Store) DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error {
	if _, err := s.execWithRetry(ctx,
		`DELETE FROM session_words WHERE session_id = ? AND word = ?`,
		sessionID.String(), word,
	); err != nil {
		return mapError(err, "session_word", sessionID)
	}
	return nil
}

// ClearWords removes every word of the session.
func (s *Store) ClearWords(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM session_words WHERE session_id = ?`, sessionID.String()); err != nil {
		return mapError(err, "session_words", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanSession(row *sql.Row) (*domain.GameSession, error) {
	var (
		id, userID, letters  string
		totalWords, pangrams int
		targetPoints         int
		gridJSON, twoJSON    string
		createdAt            string
	)
	if err := row.Scan(&id, &userID, &letters, &totalWords, &pangrams, &targetPoints, &gridJSON, &twoJSON, &createdAt); err != nil {
		return nil, err
	}

	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse session id: %w", err)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	grid, err := codec.DecodeGrid([]byte(gridJSON))
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", sessionID, err)
	}
	twoLetters, err := codec.DecodeTwoLetters([]byte(twoJSON))
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", sessionID, err)
	}
	created, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("game_session %s: %w", sessionID, err)
	}

	return &domain.GameSession{
		ID:     sessionID,
		UserID: uid,
		Hints: domain.ParsedHints{
			Grid:           grid,
			TotalWords:     totalWords,
			PangramCount:   pangrams,
			AllowedLetters: domain.NewLetterSet(letters),
			TwoLetters:     twoLetters,
			TargetPoints:   targetPoints,
		},
		CreatedAt: created,
	}, nil
}

// mapError converts database/sql and SQLite errors to domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code()&0xff == codeConstraint {
		msg := err.Error()
		switch {
		case coder.Code() == codeConstraintForeignKey || strings.Contains(msg, "FOREIGN KEY"):
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case coder.Code() == codeConstraintUnique || coder.Code() == codeConstraintPrimaryKey,
			strings.Contains(msg, "UNIQUE"):
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// timeLayout has fixed-width fractions so stored strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
