package store

import (
	"context"
	"sync"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

// MemoryStore holds the snapshot in process memory. It is the default
// backend when no durable store is configured, and what the tests use.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *domain.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Close() {}

func (s *MemoryStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNoSnapshot
	}
	sections, err := encodeSections(s.snap)
	if err != nil {
		return nil, err
	}
	return decodeSections(sections)
}

func (s *MemoryStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Round-trip through the section encoding so the stored copy is
	// detached from the caller's slices.
	sections, err := encodeSections(snap)
	if err != nil {
		return err
	}
	copied, err := decodeSections(sections)
	if err != nil {
		return err
	}
	s.snap = copied
	return nil
}
