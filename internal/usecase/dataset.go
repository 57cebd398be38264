package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	"github.com/riskibarqy/college-fantasy/internal/platform/logging"
)

// Freshness tags where a dataset came from.
type Freshness string

const (
	FreshnessFresh       Freshness = "fresh"
	FreshnessStale       Freshness = "stale"
	FreshnessUnavailable Freshness = "unavailable"
)

type DatasetStatus struct {
	Name      string    `json:"name"`
	Freshness Freshness `json:"freshness"`
	Reason    string    `json:"reason,omitempty"`
}

// DatasetFetcher runs the live fetch, then the stored copy, then gives up.
// Fresh results are stored for later fallback on a best-effort basis.
type DatasetFetcher struct {
	store  storage.Persister
	ttl    time.Duration
	logger *logging.Logger
}

// NewDatasetFetcher keeps copies for ttl; zero keeps them until overwritten.
func NewDatasetFetcher(store storage.Persister, ttl time.Duration, logger *logging.Logger) *DatasetFetcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetFetcher{store: store, ttl: ttl, logger: logger.Named("dataset")}
}

func datasetKey(parts ...any) string {
	items := make([]string, 0, len(parts)+1)
	items = append(items, "ds")
	for _, part := range parts {
		items = append(items, fmt.Sprint(part))
	}
	return strings.Join(items, ":")
}

func fetchDataset[T any](ctx context.Context, f *DatasetFetcher, name, key string, live func(context.Context) (T, error)) (T, DatasetStatus, error) {
	var zero T

	value, err := live(ctx)
	if err == nil {
		f.remember(ctx, name, key, value)
		return value, DatasetStatus{Name: name, Freshness: FreshnessFresh}, nil
	}

	unavailable := DatasetStatus{Name: name, Freshness: FreshnessUnavailable, Reason: err.Error()}
	if f == nil || f.store == nil || !staleEligible(err) {
		return zero, unavailable, err
	}

	raw, found, readErr := f.store.Read(ctx, key)
	if readErr != nil || !found {
		return zero, unavailable, err
	}
	var stored T
	if decodeErr := sonic.Unmarshal(raw, &stored); decodeErr != nil {
		f.logger.WarnContext(ctx, "stored dataset copy is unreadable", "dataset", name, "key", key, "error", decodeErr)
		return zero, unavailable, err
	}

	f.logger.WarnContext(ctx, "serving stale dataset", "dataset", name, "key", key, "reason", err)
	return stored, DatasetStatus{Name: name, Freshness: FreshnessStale, Reason: err.Error()}, nil
}

func (f *DatasetFetcher) remember(ctx context.Context, name, key string, value any) {
	if f == nil || f.store == nil {
		return
	}
	raw, err := sonic.Marshal(value)
	if err != nil {
		f.logger.WarnContext(ctx, "encode dataset copy failed", "dataset", name, "error", err)
		return
	}
	if _, err := f.store.Persist(ctx, key, raw, storage.PersistOptions{TTL: f.ttl, Force: true}); err != nil {
		f.logger.WarnContext(ctx, "store dataset copy failed", "dataset", name, "key", key, "error", err)
	}
}
