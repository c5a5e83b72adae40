package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// recordingRepo logs every write in the order the mirror applies it.
type recordingRepo struct {
	mu    sync.Mutex
	calls []string
	gate  chan struct{}
	fail  error
}

func (r *recordingRepo) record(call string) error {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	return r.fail
}

func (r *recordingRepo) UpsertWords(ctx context.Context, words []domain.SessionWord) error {
	return r.record("upsert:" + words[0].Word)
}

func (r *recordingRepo) DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error {
	return r.record("delete:" + word)
}

func (r *recordingRepo) ClearWords(ctx context.Context, sessionID uuid.UUID) error {
	return r.record("clear")
}

func (r *recordingRepo) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestMirror_AppliesInOrder(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{}
	m := newMirror(newTestLogger(), repo, 4)
	ctx := context.Background()
	sessionID := uuid.New()

	jobs := []mirrorJob{
		{op: opUpsert, sessionID: sessionID, words: []domain.SessionWord{{Word: "DUNE"}}},
		{op: opDelete, sessionID: sessionID, word: "DUNE"},
		{op: opUpsert, sessionID: sessionID, words: []domain.SessionWord{{Word: "PLUME"}}},
		{op: opClear, sessionID: sessionID},
	}
	for _, j := range jobs {
		require.NoError(t, m.enqueue(ctx, j))
	}
	require.NoError(t, m.close(ctx))

	assert.Equal(t, []string{"upsert:DUNE", "delete:DUNE", "upsert:PLUME", "clear"}, repo.snapshot())
}

func TestMirror_CloseDrainsQueue(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{gate: make(chan struct{})}
	m := newMirror(newTestLogger(), repo, 8)
	ctx := context.Background()

	for _, w := range []string{"DUNE", "PLUME", "UNDUE"} {
		require.NoError(t, m.enqueue(ctx, mirrorJob{op: opUpsert, words: []domain.SessionWord{{Word: w}}}))
	}
	close(repo.gate)

	require.NoError(t, m.close(ctx))
	assert.Len(t, repo.snapshot(), 3)
}

func TestMirror_EnqueueAfterClose(t *testing.T) {
	t.Parallel()
	m := newMirror(newTestLogger(), &recordingRepo{}, 1)
	require.NoError(t, m.close(context.Background()))

	err := m.enqueue(context.Background(), mirrorJob{op: opClear})
	assert.ErrorIs(t, err, errMirrorClosed)

	// A second close is harmless.
	assert.NoError(t, m.close(context.Background()))
}

func TestMirror_CloseHonoursDeadline(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{gate: make(chan struct{})}
	m := newMirror(newTestLogger(), repo, 1)
	require.NoError(t, m.enqueue(context.Background(), mirrorJob{op: opClear}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := m.close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(repo.gate)
}

func TestMirror_FailureAddsNotice(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{fail: errors.New("locked")}
	m := newMirror(newTestLogger(), repo, 2)
	tr := newTracker(&domain.GameSession{ID: uuid.New()}, nil)

	require.NoError(t, m.enqueue(context.Background(), mirrorJob{op: opDelete, word: "DUNE", tracker: tr}))
	require.NoError(t, m.close(context.Background()))

	assert.Equal(t, []string{"could not remove word DUNE, retry"}, tr.takeNotices())
	assert.Empty(t, tr.takeNotices())
}

func TestMirrorJob_Notice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		job  mirrorJob
		want string
	}{
		{"one word", mirrorJob{op: opUpsert, words: []domain.SessionWord{{Word: "DUNE"}}}, "could not save word DUNE, retry"},
		{"many words", mirrorJob{op: opUpsert, words: make([]domain.SessionWord, 3)}, "could not save 3 words, retry"},
		{"delete", mirrorJob{op: opDelete, word: "PLUME"}, "could not remove word PLUME, retry"},
		{"clear", mirrorJob{op: opClear}, "could not clear words, retry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.job.notice())
		})
	}
}

func TestGate(t *testing.T) {
	t.Parallel()
	g := newGate()
	a, b := uuid.New(), uuid.New()

	assert.True(t, g.acquire(a))
	assert.False(t, g.acquire(a))
	assert.True(t, g.acquire(b))

	g.release(a)
	assert.True(t, g.acquire(a))
}
