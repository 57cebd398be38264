package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
)

func TestMemoryStore_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(0)
	value := []byte("abc")
	if err := store.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'z'

	got, found, err := store.Get(ctx, "k")
	if err != nil || !found || string(got) != "abc" {
		t.Fatalf("unexpected get: %s found=%v err=%v", got, found, err)
	}
	if ok, _ := store.Exists(ctx, "k"); !ok {
		t.Fatalf("expected key to exist")
	}
	_ = store.Delete(ctx, "k")
	if ok, _ := store.Exists(ctx, "k"); ok {
		t.Fatalf("expected key deleted")
	}
}

func TestRedisStore_DisabledWithoutURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewRedisStore(ctx, "  ")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	if store.Enabled() {
		t.Fatalf("expected disabled store")
	}
	if _, _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := store.Set(ctx, "k", nil, 0); !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close disabled store: %v", err)
	}
}

func TestNewRedisStore_RejectsBadURL(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(context.Background(), "http://not-redis"); err == nil {
		t.Fatalf("expected parse error")
	}
}
