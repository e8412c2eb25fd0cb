package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
)

// ErrInjected is the default error returned by FailingStore.
var ErrInjected = errors.New("injected storage failure")

// FailingStore is a MemoryStore whose writes can be made to fail per key.
type FailingStore struct {
	*kv.MemoryStore

	mu    sync.Mutex
	fails map[string]error
}

// NewFailingStore creates an empty FailingStore.
func NewFailingStore() *FailingStore {
	return &FailingStore{
		MemoryStore: kv.NewMemoryStore(),
		fails:       make(map[string]error),
	}
}

// FailWrites makes every Put and Delete of key return ErrInjected.
func (s *FailingStore) FailWrites(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[key] = ErrInjected
}

// Heal clears every injected failure.
func (s *FailingStore) Heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails = make(map[string]error)
}

func (s *FailingStore) failure(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fails[key]
}

// Put fails when key is configured to fail.
func (s *FailingStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.failure(key); err != nil {
		return err
	}
	return s.MemoryStore.Put(ctx, key, value)
}

// Delete fails when key is configured to fail.
func (s *FailingStore) Delete(ctx context.Context, key string) error {
	if err := s.failure(key); err != nil {
		return err
	}
	return s.MemoryStore.Delete(ctx, key)
}
