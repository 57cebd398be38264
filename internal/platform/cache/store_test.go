package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "player_stats:2024", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load error")
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != "ok" {
		t.Fatalf("unexpected value %v", v)
	}
}

func TestStore_SetWithTTL_Expires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	now := time.Date(2024, 9, 10, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.SetWithTTL(context.Background(), "short", 1, time.Second)
	store.Set(context.Background(), "forever", 2)

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), "short"); ok {
		t.Fatalf("expected short entry to expire")
	}
	if v, ok := store.Get(context.Background(), "forever"); !ok || v != 2 {
		t.Fatalf("expected forever entry, got %v %v", v, ok)
	}
	if store.Len() != 1 {
		t.Fatalf("expected expired entry evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "agg:2024:1", 1)
	store.Set(ctx, "agg:2024:2", 2)
	store.Set(ctx, "def:2024:1", 3)

	store.DeletePrefix(ctx, "agg:")
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", store.Len())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
