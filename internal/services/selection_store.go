package services

import (
	"context"
	"sync"

	"fitstudio/internal/domain"
)

type selectionKey struct {
	userID    string
	trainerID string
}

type memorySelectionStore struct {
	mu         sync.Mutex
	selections map[selectionKey]*domain.ListedSessions
}

// NewMemorySelectionStore returns a SelectionStore that keeps selections in
// process memory. Selections are lost on restart.
func NewMemorySelectionStore() domain.SelectionStore {
	return &memorySelectionStore{selections: make(map[selectionKey]*domain.ListedSessions)}
}

func (s *memorySelectionStore) Update(ctx context.Context, userID, trainerID string, fn func(*domain.ListedSessions) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := selectionKey{userID: userID, trainerID: trainerID}
	listed, ok := s.selections[key]
	if !ok {
		listed = domain.NewListedSessions()
	}
	if err := fn(listed); err != nil {
		return err
	}
	if listed.Len() == 0 {
		delete(s.selections, key)
		return nil
	}
	s.selections[key] = listed
	return nil
}
