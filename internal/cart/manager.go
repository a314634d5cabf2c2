package cart

import (
	"log/slog"
	"sync"
)

// Manager hands out one cart store per session key. The owning instance is
// created once at application start and passed explicitly to every consuming
// surface; there is no ambient global cart.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
	logger    *slog.Logger
}

// NewManager creates a manager whose stores write through to the given
// persister.
func NewManager(persister Persister, logger *slog.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: persister,
		logger:    logger,
	}
}

// Cart returns the store for the given session key, creating and hydrating it
// on first use.
func (m *Manager) Cart(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(sessionID, m.persister, m.logger)
		m.stores[sessionID] = store
	}
	return store
}
