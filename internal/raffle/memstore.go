package raffle

import (
	"context"
	"sync"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

// MemoryStore keeps the state in process. Used by tests and when no database is configured.
type MemoryStore struct {
	mu    sync.Mutex
	state *models.RaffleState
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (*models.RaffleState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	return m.state.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, state *models.RaffleState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state.Clone()
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
