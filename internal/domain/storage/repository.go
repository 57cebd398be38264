package storage

import (
	"context"
	"time"
)

// KeyValueStore is the low-latency primary tier. A zero ttl means no expiry.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// BlobStore is the durable fallback tier addressed by path.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte) error
	Head(ctx context.Context, path string) (bool, error)
	Get(ctx context.Context, path string) ([]byte, bool, error)
	Delete(ctx context.Context, path string) error
}

// Persister is the tiered write-through cache seen by services.
type Persister interface {
	Persist(ctx context.Context, key string, value []byte, opts PersistOptions) (PersistResult, error)
	Read(ctx context.Context, key string) ([]byte, bool, error)
	// Invalidate removes key from every tier.
	Invalidate(ctx context.Context, key string) error
}
