package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"fitstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySelectionStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySelectionStore()
	slot := &domain.SessionSlot{Day: "Monday", TimeStart: "09:00", TimeEnd: "10:00", ClassType: "Private Training"}

	require.NoError(t, store.Update(ctx, "u1", "tr-1", func(l *domain.ListedSessions) error {
		l.Add(slot)
		return nil
	}))

	var got int
	require.NoError(t, store.Update(ctx, "u1", "tr-1", func(l *domain.ListedSessions) error {
		got = l.Len()
		return nil
	}))
	assert.Equal(t, 1, got)

	// Selections are scoped per user and trainer.
	require.NoError(t, store.Update(ctx, "u2", "tr-1", func(l *domain.ListedSessions) error {
		got = l.Len()
		return nil
	}))
	assert.Equal(t, 0, got)
}

func TestMemorySelectionStore_Errors(t *testing.T) {
	store := NewMemorySelectionStore()
	boom := errors.New("boom")

	err := store.Update(context.Background(), "u1", "tr-1", func(*domain.ListedSessions) error { return boom })
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = store.Update(ctx, "u1", "tr-1", func(*domain.ListedSessions) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemorySelectionStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySelectionStore()

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func(h int) {
			defer wg.Done()
			slot := &domain.SessionSlot{Day: "Tuesday", TimeStart: fmt.Sprintf("%02d:00", h), TimeEnd: fmt.Sprintf("%02d:30", h), ClassType: "Private Training"}
			_ = store.Update(ctx, "u1", "tr-1", func(l *domain.ListedSessions) error {
				l.Add(slot)
				return nil
			})
		}(i)
	}
	wg.Wait()

	var n int
	require.NoError(t, store.Update(ctx, "u1", "tr-1", func(l *domain.ListedSessions) error {
		n = l.Len()
		return nil
	}))
	assert.Equal(t, 24, n)
}
