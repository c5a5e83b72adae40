package game

import (
	"sync"

	"github.com/google/uuid"
)

// gate admits at most one holder per user.
type gate struct {
	mu   sync.Mutex
	busy map[uuid.UUID]struct{}
}

func newGate() *gate {
	return &gate{busy: make(map[uuid.UUID]struct{})}
}

// acquire reports false when userID already holds the gate.
func (g *gate) acquire(userID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[userID]; ok {
		return false
	}
	g.busy[userID] = struct{}{}
	return true
}

func (g *gate) release(userID uuid.UUID) {
	g.mu.Lock()
	delete(g.busy, userID)
	g.mu.Unlock()
}
