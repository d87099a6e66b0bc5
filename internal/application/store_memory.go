package application

import (
	"context"
	"sync"

	id "komek/pkg/domain"
	"komek/pkg/platform/sentinel"
)

// InMemory keeps applications in a map. Copies go in and out so callers
// cannot mutate stored state behind the store's back.
type InMemory struct {
	mu   sync.RWMutex
	apps map[id.ApplicationID]*Application
}

func NewInMemory() *InMemory {
	return &InMemory{apps: make(map[id.ApplicationID]*Application)}
}

func (s *InMemory) Create(_ context.Context, app *Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.apps[app.ID]; exists {
		return sentinel.ErrConflict
	}
	stored := *app
	s.apps[app.ID] = &stored
	return nil
}

func (s *InMemory) FindByID(_ context.Context, appID id.ApplicationID) (*Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, exists := s.apps[appID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	found := *app
	return &found, nil
}

func (s *InMemory) Update(_ context.Context, app *Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.apps[app.ID]; !exists {
		return sentinel.ErrNotFound
	}
	stored := *app
	s.apps[app.ID] = &stored
	return nil
}

func (s *InMemory) ListByStatus(_ context.Context, status Status) ([]*Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Application
	for _, app := range s.apps {
		if app.Status == status {
			found := *app
			out = append(out, &found)
		}
	}
	return out, nil
}
