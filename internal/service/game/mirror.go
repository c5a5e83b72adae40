package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

const (
	defaultMirrorQueueSize = 256
	mirrorWriteTimeout     = 10 * time.Second
)

// errMirrorClosed is returned by enqueue after close.
var errMirrorClosed = errors.New("mirror closed")

type mirrorRepo interface {
	UpsertWords(ctx context.Context, words []domain.SessionWord) error
	DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error
	ClearWords(ctx context.Context, sessionID uuid.UUID) error
}

type mirrorOp int

const (
	opUpsert mirrorOp = iota
	opDelete
	opClear
)

// mirrorJob is one pending word write. Failures are reported to tracker.
type mirrorJob struct {
	op        mirrorOp
	sessionID uuid.UUID
	words     []domain.SessionWord
	word      string
	tracker   *tracker
}

// notice is the user-facing message for a failed job.
func (j mirrorJob) notice() string {
	switch j.op {
	case opUpsert:
		if len(j.words) == 1 {
			return fmt.Sprintf("could not save word %s, retry", j.words[0].Word)
		}
		return fmt.Sprintf("could not save %d words, retry", len(j.words))
	case opDelete:
		return fmt.Sprintf("could not remove word %s, retry", j.word)
	default:
		return "could not clear words, retry"
	}
}

// mirror applies word writes to storage in FIFO order on one goroutine.
// The in-memory tracker is already updated when a job is queued.
type mirror struct {
	log  *slog.Logger
	repo mirrorRepo
	jobs chan mirrorJob
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newMirror(logger *slog.Logger, repo mirrorRepo, size int) *mirror {
	if size <= 0 {
		size = defaultMirrorQueueSize
	}
	m := &mirror{
		log:  logger,
		repo: repo,
		jobs: make(chan mirrorJob, size),
		done: make(chan struct{}),
	}
	go m.run()
	return m
}

// enqueue queues job, blocking while the queue is full.
func (m *mirror) enqueue(ctx context.Context, job mirrorJob) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return errMirrorClosed
	}
	select {
	case m.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mirror) run() {
	defer close(m.done)
	for job := range m.jobs {
		m.apply(job)
	}
}

func (m *mirror) apply(job mirrorJob) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
	defer cancel()

	var err error
	switch job.op {
	case opUpsert:
		err = m.repo.UpsertWords(ctx, job.words)
	case opDelete:
		err = m.repo.DeleteWord(ctx, job.sessionID, job.word)
	case opClear:
		err = m.repo.ClearWords(ctx, job.sessionID)
	}
	if err == nil {
		return
	}

	m.log.Warn("word write failed",
		slog.String("session_id", job.sessionID.String()),
		slog.String("error", err.Error()),
	)
	if job.tracker != nil {
		job.tracker.addNotice(job.notice())
	}
}

// close stops intake and waits for the queue to drain.
func (m *mirror) close(ctx context.Context) error {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.jobs)
	}
	m.mu.Unlock()

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mirror drain: %w", ctx.Err())
	}
}
