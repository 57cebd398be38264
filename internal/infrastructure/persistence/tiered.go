package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
)

// ErrPersistenceExhausted means neither tier accepted a write.
var ErrPersistenceExhausted = errors.New("persistence exhausted")

// Tiered writes to a low-latency primary store and falls back to a durable blob
// store. Either tier may be nil.
type Tiered struct {
	primary  storage.KeyValueStore
	fallback storage.BlobStore
	logger   *logging.Logger
}

func NewTiered(primary storage.KeyValueStore, fallback storage.BlobStore, logger *logging.Logger) *Tiered {
	if logger == nil {
		logger = logging.Default()
	}
	return &Tiered{primary: primary, fallback: fallback, logger: logger.Named("persistence")}
}

// Persist stores value under key. Unless opts.Force is set, an existing entry in
// either tier short-circuits the call with Skipped. The existence checks are
// sequential: the fallback is only probed when the primary has nothing.
func (t *Tiered) Persist(ctx context.Context, key string, value []byte, opts storage.PersistOptions) (storage.PersistResult, error) {
	if strings.TrimSpace(key) == "" {
		return storage.PersistResult{Backend: storage.BackendNone}, fmt.Errorf("persist: key is required")
	}
	path := BlobPath(key)

	if !opts.Force {
		if t.primary != nil {
			exists, err := t.primary.Exists(ctx, key)
			switch {
			case err == nil && exists:
				return storage.PersistResult{Backend: storage.BackendPrimary, Skipped: true}, nil
			case err != nil && !errors.Is(err, storage.ErrNotConfigured):
				t.logger.WarnContext(ctx, "primary existence check failed", "key", key, "error", err)
			}
		}
		if t.fallback != nil {
			exists, err := t.fallback.Head(ctx, path)
			switch {
			case err == nil && exists:
				return storage.PersistResult{Backend: storage.BackendFallback, Skipped: true}, nil
			case err != nil && !errors.Is(err, storage.ErrNotConfigured):
				t.logger.WarnContext(ctx, "fallback existence check failed", "key", key, "path", path, "error", err)
			}
		}
	}

	primaryErr := storage.ErrNotConfigured
	if t.primary != nil {
		primaryErr = t.primary.Set(ctx, key, value, opts.TTL)
		if primaryErr == nil {
			return storage.PersistResult{Backend: storage.BackendPrimary, Stored: true}, nil
		}
	}

	fallbackErr := storage.ErrNotConfigured
	if t.fallback != nil {
		fallbackErr = t.fallback.Put(ctx, path, value)
		if fallbackErr == nil {
			if !errors.Is(primaryErr, storage.ErrNotConfigured) {
				t.logger.WarnContext(ctx, "primary write failed, stored in fallback", "key", key, "path", path, "error", primaryErr)
			}
			return storage.PersistResult{Backend: storage.BackendFallback, Stored: true}, nil
		}
	}

	t.logger.ErrorContext(ctx, "persist failed on every backend", "key", key, "primary_error", primaryErr, "fallback_error", fallbackErr)
	return storage.PersistResult{Backend: storage.BackendNone}, fmt.Errorf("%w: key=%s primary: %v; fallback: %v", ErrPersistenceExhausted, key, primaryErr, fallbackErr)
}

// Read returns the primary copy, then the fallback copy. Backend failures are
// logged and treated as a miss.
func (t *Tiered) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, nil
	}
	if t.primary != nil {
		value, found, err := t.primary.Get(ctx, key)
		switch {
		case err == nil && found:
			return value, true, nil
		case err != nil && !errors.Is(err, storage.ErrNotConfigured):
			t.logger.WarnContext(ctx, "primary read failed", "key", key, "error", err)
		}
	}
	if t.fallback != nil {
		value, found, err := t.fallback.Get(ctx, BlobPath(key))
		switch {
		case err == nil && found:
			return value, true, nil
		case err != nil && !errors.Is(err, storage.ErrNotConfigured):
			t.logger.WarnContext(ctx, "fallback read failed", "key", key, "error", err)
		}
	}
	return nil, false, nil
}

// Invalidate removes key from both tiers.
func (t *Tiered) Invalidate(ctx context.Context, key string) error {
	var errs []error
	if t.primary != nil {
		if err := t.primary.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotConfigured) {
			errs = append(errs, err)
		}
	}
	if t.fallback != nil {
		if err := t.fallback.Delete(ctx, BlobPath(key)); err != nil && !errors.Is(err, storage.ErrNotConfigured) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
