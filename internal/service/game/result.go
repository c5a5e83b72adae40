package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
)

// ProgressView is the derived state of a session plus pending notices about
// failed background writes.
type ProgressView struct {
	SessionID uuid.UUID
	LoadedAt  time.Time
	progress.View
	Notices []string
}

// LoadResult is returned by LoadHints and LoadHintsFromImage.
type LoadResult struct {
	Parse    *hints.Result
	Progress *ProgressView
}

// SubmitResult is returned by SubmitWords and SubmitScreenshot.
type SubmitResult struct {
	Classifications []progress.Classification
	Progress        *ProgressView
}
