package decisionprotocol

import (
	"context"
	"sync"

	id "komek/pkg/domain"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	protocols map[id.ApplicationID][]Protocol
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{protocols: make(map[id.ApplicationID][]Protocol)}
}

func (s *InMemoryStore) Save(_ context.Context, protocol Protocol) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.protocols[protocol.ApplicationID] = append(s.protocols[protocol.ApplicationID], protocol)
	return nil
}

func (s *InMemoryStore) ListByApplication(_ context.Context, appID id.ApplicationID) ([]Protocol, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Protocol{}, s.protocols[appID]...), nil
}

// Reset clears all protocols. Reserved for test fixtures.
func (s *InMemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.protocols = make(map[id.ApplicationID][]Protocol)
	return nil
}
