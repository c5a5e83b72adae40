package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GameSession is one user's tracker for one puzzle. A new hints load
// replaces the session and all of its words.
type GameSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Hints     ParsedHints
	CreatedAt time.Time
}

// SessionWord is a submitted word recorded against a session. The pair
// (SessionID, Word) is unique.
type SessionWord struct {
	SessionID uuid.UUID
	Word      string
	IsValid   bool
	CreatedAt time.Time
}

// NormalizeWord trims surrounding whitespace and uppercases the word.
func NormalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
