package kv

import (
	"context"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/platform/cache"
)

// MemoryStore is an in-process primary tier for local runs and tests.
type MemoryStore struct {
	store *cache.Store
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{store: cache.NewStore(defaultTTL)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := s.store.Get(ctx, key)
	if !ok {
		return nil, false, nil
	}
	raw, _ := v.([]byte)
	return append([]byte(nil), raw...), true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.store.SetWithTTL(ctx, key, append([]byte(nil), value...), ttl)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := s.store.Get(ctx, key)
	return ok, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.store.Delete(ctx, key)
	return nil
}
