package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/storage"
	storagemock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/storage"
	"github.com/stretchr/testify/mock"
)

func TestFetchDataset_FreshStoresCopy(t *testing.T) {
	t.Parallel()

	store := storagemock.NewPersister(t)
	store.
		On("Persist", mock.Anything, "ds:roster:2024", mock.Anything, storage.PersistOptions{Force: true}).
		Return(storage.PersistResult{Backend: storage.BackendPrimary, Stored: true}, nil).
		Once()

	f := NewDatasetFetcher(store, 0, nil)
	got, status, err := fetchDataset(context.Background(), f, datasetRoster, datasetKey("roster", 2024), func(context.Context) ([]playerstats.RosterEntry, error) {
		return []playerstats.RosterEntry{{PlayerID: "00-1", College: "Alabama"}}, nil
	})
	if err != nil {
		t.Fatalf("fetch dataset: %v", err)
	}
	if status.Freshness != FreshnessFresh || len(got) != 1 {
		t.Fatalf("unexpected fresh result: status=%+v rows=%d", status, len(got))
	}
}

func TestFetchDataset_StaleCopyOnTransportFailure(t *testing.T) {
	t.Parallel()

	store := storagemock.NewPersister(t)
	store.
		On("Read", mock.Anything, "ds:roster:2024").
		Return([]byte(`[{"player_id":"00-1","college":"Alabama"}]`), true, nil).
		Once()

	f := NewDatasetFetcher(store, 0, nil)
	got, status, err := fetchDataset(context.Background(), f, datasetRoster, "ds:roster:2024", func(context.Context) ([]playerstats.RosterEntry, error) {
		return nil, fmt.Errorf("%w: connection refused", ErrTransport)
	})
	if err != nil {
		t.Fatalf("expected stale copy, got %v", err)
	}
	if status.Freshness != FreshnessStale || status.Reason == "" {
		t.Fatalf("expected stale status with reason, got %+v", status)
	}
	if len(got) != 1 || got[0].College != "Alabama" {
		t.Fatalf("unexpected stale rows: %+v", got)
	}
}

func TestFetchDataset_UnavailableWithoutCopy(t *testing.T) {
	t.Parallel()

	store := storagemock.NewPersister(t)
	store.
		On("Read", mock.Anything, "ds:stats:2024:3:ppr").
		Return(nil, false, nil).
		Once()

	f := NewDatasetFetcher(store, 0, nil)
	_, status, err := fetchDataset(context.Background(), f, datasetStatLines, "ds:stats:2024:3:ppr", func(context.Context) ([]playerstats.StatLine, error) {
		return nil, ErrNotYetAvailable
	})
	if !errors.Is(err, ErrNotYetAvailable) {
		t.Fatalf("expected ErrNotYetAvailable, got %v", err)
	}
	if status.Freshness != FreshnessUnavailable {
		t.Fatalf("expected unavailable status, got %+v", status)
	}
}

func TestFetchDataset_NonTransientErrorSkipsStore(t *testing.T) {
	t.Parallel()

	store := storagemock.NewPersister(t)
	f := NewDatasetFetcher(store, 0, nil)
	_, _, err := fetchDataset(context.Background(), f, datasetStatLines, "ds:x", func(context.Context) ([]playerstats.StatLine, error) {
		return nil, ErrInvalidInput
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	store.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
}

func TestFetchDataset_NilFetcher(t *testing.T) {
	t.Parallel()

	got, status, err := fetchDataset(context.Background(), nil, "n", "k", func(context.Context) (int, error) { return 7, nil })
	if err != nil || got != 7 || status.Freshness != FreshnessFresh {
		t.Fatalf("unexpected result: got=%d status=%+v err=%v", got, status, err)
	}
}
