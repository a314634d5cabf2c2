package cart

import "sync"

// Persister is the durable key-value collaborator the cart writes through to.
// The full serialized line collection is stored under one fixed key per cart.
type Persister interface {
	// Load returns the payload stored under key, and whether one was found.
	Load(key string) (payload []byte, found bool, err error)
	// Save stores the payload under key, replacing any previous value.
	Save(key string, payload []byte) error
}

// MemoryPersister keeps cart payloads in process memory. It backs tests and
// serves as the fallback when no durable store is configured.
type MemoryPersister struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{m: make(map[string][]byte)}
}

func (p *MemoryPersister) Load(key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	payload, found := p.m[key]
	return payload, found, nil
}

func (p *MemoryPersister) Save(key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	p.m[key] = stored
	return nil
}
