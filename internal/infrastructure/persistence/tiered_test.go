package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/blob"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/kv"
	storagemock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestBlobPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"agg:2024:3:ppr:weekly:k:none": "cache/agg_2024_3_ppr_weekly_k_none.json",
		"ds/Stats 2024":                "cache/ds_stats_2024.json",
		"a.b-c_d":                      "cache/a.b-c_d.json",
	}
	for key, want := range tests {
		if got := BlobPath(key); got != want {
			t.Fatalf("BlobPath(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestTiered_SkipsWhenPrimaryHasEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := storagemock.NewKeyValueStore(t)
	fallback := storagemock.NewBlobStore(t)
	primary.On("Exists", ctx, "agg:1").Return(true, nil).Once()

	result, err := NewTiered(primary, fallback, logging.NewNop()).Persist(ctx, "agg:1", []byte("v"), storage.PersistOptions{TTL: time.Hour})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if !result.Skipped || result.Stored || result.Backend != storage.BackendPrimary {
		t.Fatalf("expected skipped on primary, got %+v", result)
	}
	primary.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fallback.AssertNotCalled(t, "Head", mock.Anything, mock.Anything)
	fallback.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestTiered_SkipsWhenFallbackHasEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := storagemock.NewKeyValueStore(t)
	fallback := storagemock.NewBlobStore(t)
	primary.On("Exists", ctx, "agg:1").Return(false, nil).Once()
	fallback.On("Head", ctx, "cache/agg_1.json").Return(true, nil).Once()

	result, err := NewTiered(primary, fallback, logging.NewNop()).Persist(ctx, "agg:1", []byte("v"), storage.PersistOptions{})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if !result.Skipped || result.Backend != storage.BackendFallback {
		t.Fatalf("expected skipped on fallback, got %+v", result)
	}
}

func TestTiered_ForceWritesPrimary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := storagemock.NewKeyValueStore(t)
	primary.On("Set", ctx, "agg:1", []byte("v"), 5*time.Minute).Return(nil).Once()

	result, err := NewTiered(primary, nil, logging.NewNop()).Persist(ctx, "agg:1", []byte("v"), storage.PersistOptions{TTL: 5 * time.Minute, Force: true})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if !result.Stored || result.Backend != storage.BackendPrimary {
		t.Fatalf("expected primary write, got %+v", result)
	}
	primary.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestTiered_FallsBackWhenPrimaryWriteFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := storagemock.NewKeyValueStore(t)
	fallback := storagemock.NewBlobStore(t)
	primary.On("Exists", ctx, "k").Return(false, errors.New("dial tcp: refused")).Once()
	fallback.On("Head", ctx, "cache/k.json").Return(false, nil).Once()
	primary.On("Set", ctx, "k", []byte("v"), time.Duration(0)).Return(errors.New("dial tcp: refused")).Once()
	fallback.On("Put", ctx, "cache/k.json", []byte("v")).Return(nil).Once()

	result, err := NewTiered(primary, fallback, logging.NewNop()).Persist(ctx, "k", []byte("v"), storage.PersistOptions{})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if !result.Stored || result.Backend != storage.BackendFallback {
		t.Fatalf("expected fallback write, got %+v", result)
	}
}

func TestTiered_ExhaustedWhenBothFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := storagemock.NewKeyValueStore(t)
	fallback := storagemock.NewBlobStore(t)
	primary.On("Set", ctx, "k", []byte("v"), time.Duration(0)).Return(errors.New("oom")).Once()
	fallback.On("Put", ctx, "cache/k.json", []byte("v")).Return(errors.New("503")).Once()

	_, err := NewTiered(primary, fallback, logging.NewNop()).Persist(ctx, "k", []byte("v"), storage.PersistOptions{Force: true})
	if !errors.Is(err, ErrPersistenceExhausted) {
		t.Fatalf("expected ErrPersistenceExhausted, got %v", err)
	}
}

func TestTiered_NoBackendsConfigured(t *testing.T) {
	t.Parallel()

	tiered := NewTiered(nil, nil, logging.NewNop())
	if _, err := tiered.Persist(context.Background(), "k", []byte("v"), storage.PersistOptions{}); !errors.Is(err, ErrPersistenceExhausted) {
		t.Fatalf("expected ErrPersistenceExhausted, got %v", err)
	}
	if _, found, err := tiered.Read(context.Background(), "k"); found || err != nil {
		t.Fatalf("expected miss, found=%v err=%v", found, err)
	}
}

func TestTiered_ReadOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := kv.NewMemoryStore(0)
	fallback, err := blob.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	tiered := NewTiered(primary, fallback, logging.NewNop())

	if err := fallback.Put(ctx, BlobPath("k"), []byte("durable")); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}
	value, found, err := tiered.Read(ctx, "k")
	if err != nil || !found || string(value) != "durable" {
		t.Fatalf("expected fallback value, got %s found=%v err=%v", value, found, err)
	}

	if err := primary.Set(ctx, "k", []byte("fast"), 0); err != nil {
		t.Fatalf("seed primary: %v", err)
	}
	value, _, _ = tiered.Read(ctx, "k")
	if string(value) != "fast" {
		t.Fatalf("expected primary value first, got %s", value)
	}

	if err := tiered.Invalidate(ctx, "k"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, found, _ := tiered.Read(ctx, "k"); found {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestTiered_DisabledRedisFallsThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	redisStore, err := kv.NewRedisStore(ctx, "")
	if err != nil {
		t.Fatalf("redis store: %v", err)
	}
	fallback, err := blob.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}

	result, err := NewTiered(redisStore, fallback, logging.NewNop()).Persist(ctx, "k", []byte("v"), storage.PersistOptions{})
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if result.Backend != storage.BackendFallback || !result.Stored {
		t.Fatalf("expected fallback write, got %+v", result)
	}
}
