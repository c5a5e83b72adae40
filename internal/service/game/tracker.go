package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
)

// tracker is the live state of one user's session. session is nil when the
// user has not loaded hints yet and never changes; a new load installs a new
// tracker. mu guards state.
type tracker struct {
	mu      sync.Mutex
	session *domain.GameSession
	state   *progress.State

	noticeMu sync.Mutex
	notices  []string
}

func newTracker(session *domain.GameSession, state *progress.State) *tracker {
	return &tracker{session: session, state: state}
}

// addNotice records a message to show with the next view.
func (t *tracker) addNotice(msg string) {
	t.noticeMu.Lock()
	t.notices = append(t.notices, msg)
	t.noticeMu.Unlock()
}

func (t *tracker) takeNotices() []string {
	t.noticeMu.Lock()
	defer t.noticeMu.Unlock()
	out := t.notices
	t.notices = nil
	return out
}

// viewLocked builds the progress view. The caller holds t.mu.
func (t *tracker) viewLocked() *ProgressView {
	return &ProgressView{
		SessionID: t.session.ID,
		LoadedAt:  t.session.CreatedAt,
		View:      t.state.View(),
		Notices:   t.takeNotices(),
	}
}

// tracker returns the cached tracker for userID, restoring it from storage
// on a miss. Concurrent misses for one user share a single restore.
func (s *Service) tracker(ctx context.Context, userID uuid.UUID) (*tracker, error) {
	if t, ok := s.trackers.Get(userID); ok {
		return t, nil
	}

	v, err, _ := s.loads.Do(userID.String(), func() (any, error) {
		if t, ok := s.trackers.Get(userID); ok {
			return t, nil
		}
		t, err := s.restore(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.trackers.Add(userID, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tracker), nil
}

// sessionTracker is tracker but fails with ErrNoSession when no hints are loaded.
func (s *Service) sessionTracker(ctx context.Context, userID uuid.UUID) (*tracker, error) {
	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	if t.session == nil {
		return nil, ErrNoSession
	}
	return t, nil
}

// restore rebuilds a tracker from the stored session and words, read in parallel.
func (s *Service) restore(ctx context.Context, userID uuid.UUID) (*tracker, error) {
	start := time.Now()

	var (
		session *domain.GameSession
		words   []domain.SessionWord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		session, err = s.repo.GetSessionByUser(gctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			session = nil
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		words, err = s.repo.ListWordsByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	if session == nil {
		return newTracker(nil, nil), nil
	}

	// A replace between the two reads can leave words of another session.
	current := words[:0]
	for _, w := range words {
		if w.SessionID == session.ID {
			current = append(current, w)
		}
	}

	s.log.DebugContext(ctx, "tracker restored",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("words", len(current)),
		slog.Duration("duration", time.Since(start)),
	)

	return newTracker(session, progress.Restore(session.Hints, current)), nil
}
