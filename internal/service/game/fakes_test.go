package game

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (func fields override an in-memory default)
// ===========================================================================

var _ gameRepo = &memRepo{}

type memRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.GameSession  // by user
	words    map[uuid.UUID][]domain.SessionWord // by session

	GetSessionByUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.GameSession, error)
	CreateSessionFunc    func(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error)
	ListWordsByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.SessionWord, error)
	UpsertWordsFunc      func(ctx context.Context, words []domain.SessionWord) error
	DeleteWordFunc       func(ctx context.Context, sessionID uuid.UUID, word string) error
	ClearWordsFunc       func(ctx context.Context, sessionID uuid.UUID) error
}

func newMemRepo() *memRepo {
	return &memRepo{
		sessions: make(map[uuid.UUID]*domain.GameSession),
		words:    make(map[uuid.UUID][]domain.SessionWord),
	}
}

func (m *memRepo) GetSessionByUser(ctx context.Context, userID uuid.UUID) (*domain.GameSession, error) {
	if m.GetSessionByUserFunc != nil {
		return m.GetSessionByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memRepo) CreateSession(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.UserID]; ok {
		return nil, domain.ErrAlreadyExists
	}
	cp := *session
	m.sessions[session.UserID] = &cp
	out := cp
	return &out, nil
}

func (m *memRepo) DeleteSessionByUser(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.words, s.ID)
	delete(m.sessions, userID)
	return nil
}

func (m *memRepo) ListWordsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionWord, error) {
	if m.ListWordsByUserFunc != nil {
		return m.ListWordsByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	return slices.Clone(m.words[s.ID]), nil
}

func (m *memRepo) UpsertWords(ctx context.Context, words []domain.SessionWord) error {
	if m.UpsertWordsFunc != nil {
		return m.UpsertWordsFunc(ctx, words)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range words {
		if !m.hasSession(w.SessionID) {
			return domain.ErrNotFound
		}
		list := m.words[w.SessionID]
		if i := slices.IndexFunc(list, func(x domain.SessionWord) bool { return x.Word == w.Word }); i >= 0 {
			list[i].IsValid = w.IsValid
			continue
		}
		m.words[w.SessionID] = append(list, w)
	}
	return nil
}

func (m *memRepo) DeleteWord(ctx context.Context, sessionID uuid.UUID, word string) error {
	if m.DeleteWordFunc != nil {
		return m.DeleteWordFunc(ctx, sessionID, word)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[sessionID] = slices.DeleteFunc(m.words[sessionID], func(x domain.SessionWord) bool { return x.Word == word })
	return nil
}

func (m *memRepo) ClearWords(ctx context.Context, sessionID uuid.UUID) error {
	if m.ClearWordsFunc != nil {
		return m.ClearWordsFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.words, sessionID)
	return nil
}

func (m *memRepo) hasSession(id uuid.UUID) bool {
	for _, s := range m.sessions {
		if s.ID == id {
			return true
		}
	}
	return false
}

// storedWords returns the persisted words of the user's session.
func (m *memRepo) storedWords(userID uuid.UUID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	var out []string
	for _, w := range m.words[s.ID] {
		out = append(out, w.Word)
	}
	return out
}

func (m *memRepo) sessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type mockTxManager struct{}

func (mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockOCR struct {
	ExtractTextFunc func(ctx context.Context, image io.Reader, filename string) (string, error)
}

func (m *mockOCR) ExtractText(ctx context.Context, image io.Reader, filename string) (string, error) {
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, image, filename)
	}
	return "", nil
}
