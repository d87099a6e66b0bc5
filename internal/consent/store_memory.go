package consent

import (
	"context"
	"sync"
	"time"

	id "komek/pkg/domain"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	records map[id.ApplicantID][]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[id.ApplicantID][]Record)}
}

func (s *InMemoryStore) Save(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ApplicantID] = append(s.records[record.ApplicantID], record)
	return nil
}

func (s *InMemoryStore) ListByApplicant(_ context.Context, applicantID id.ApplicantID) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records[applicantID]...), nil
}

func (s *InMemoryStore) Revoke(_ context.Context, applicantID id.ApplicantID, purpose Purpose, revokedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.records[applicantID]
	for i := range records {
		if records[i].Purpose == purpose {
			records[i].RevokedAt = &revokedAt
		}
	}
	s.records[applicantID] = records
	return nil
}
