package store

import (
	"context"
	"sync"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

// MemStore keeps records in process memory, for session-scoped visitors
// and tests. Records are stored encoded, like the durable store.
type MemStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: map[string][]byte{}}
}

func (s *MemStore) Load(_ context.Context, visitorID string) model.VisitorMemory {
	s.mu.RLock()
	raw := s.records[visitorID]
	s.mu.RUnlock()
	return Decode(raw)
}

func (s *MemStore) Save(_ context.Context, visitorID string, m model.VisitorMemory) error {
	b, err := Encode(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[visitorID] = b
	s.mu.Unlock()
	return nil
}

// SetRaw stores an already encoded record as is.
func (s *MemStore) SetRaw(visitorID string, raw []byte) {
	s.mu.Lock()
	s.records[visitorID] = raw
	s.mu.Unlock()
}

// Len returns the number of stored records.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemStore) Close() error {
	return nil
}
