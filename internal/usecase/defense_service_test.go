package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/kv"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/persistence"
	defensemock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/defense"
	"github.com/stretchr/testify/mock"
)

func teamWeekTable() defense.Table {
	return defense.Table{
		Header: []string{"season", "week", "team", "opponent_team", "points", "sacks_suffered", "passing_interceptions", "fumbles_lost"},
		Rows: [][]string{
			{"2024", "1", "PHI", "GB", "34", "2", "0", "0"},
			{"2024", "1", "GB", "PHI", "29", "1", "0", "1"},
			{"2024", "2", "PHI", "ATL", "21", "1", "1", "0"},
			{"2024", "2", "ATL", "PHI", "22", "0", "0", "0"},
		},
	}
}

func TestDefenseService_ApproximateLatestWeek(t *testing.T) {
	t.Parallel()

	source := defensemock.NewSource(t)
	source.
		On("LoadTeamWeeks", mock.Anything, 2024).
		Return(teamWeekTable(), nil).
		Once()

	svc := NewDefenseService(source, nil, nil)
	got, status, err := svc.Approximate(context.Background(), 2024, 0)
	if err != nil {
		t.Fatalf("approximate: %v", err)
	}
	if got.Week != 2 || status.Freshness != FreshnessFresh {
		t.Fatalf("expected fresh week 2, got week=%d status=%+v", got.Week, status)
	}
	scores := got.ScoreByTeam()
	// ATL allowed 21: no bonus, 1 sack, 1 interception.
	if scores["ATL"] != 0+1+2 {
		t.Fatalf("unexpected ATL score: %v", scores)
	}
}

func TestDefenseService_StaleCopyWhenUpstreamFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persistence.NewTiered(kv.NewMemoryStore(0), nil, nil)
	datasets := NewDatasetFetcher(store, 0, nil)

	source := defensemock.NewSource(t)
	source.
		On("LoadTeamWeeks", mock.Anything, 2024).
		Return(teamWeekTable(), nil).
		Once()
	source.
		On("LoadTeamWeeks", mock.Anything, 2024).
		Return(defense.Table{}, ErrTransport).
		Once()

	svc := NewDefenseService(source, datasets, nil)
	if _, _, err := svc.Approximate(ctx, 2024, 1); err != nil {
		t.Fatalf("first approximate: %v", err)
	}

	got, status, err := svc.Approximate(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("stale approximate: %v", err)
	}
	if status.Freshness != FreshnessStale {
		t.Fatalf("expected stale status, got %+v", status)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected rows from stored copy, got %+v", got.Rows)
	}
}

func TestDefenseService_NotYetPublished(t *testing.T) {
	t.Parallel()

	source := defensemock.NewSource(t)
	source.
		On("LoadTeamWeeks", mock.Anything, 2025).
		Return(defense.Table{}, ErrNotYetAvailable).
		Once()

	svc := NewDefenseService(source, nil, nil)
	_, status, err := svc.Approximate(context.Background(), 2025, 1)
	if !errors.Is(err, defense.ErrUnavailable) || !errors.Is(err, ErrNotYetAvailable) {
		t.Fatalf("expected defense.ErrUnavailable wrapping ErrNotYetAvailable, got %v", err)
	}
	if status.Freshness != FreshnessUnavailable {
		t.Fatalf("expected unavailable status, got %+v", status)
	}
}

func TestDefenseService_SchemaMismatch(t *testing.T) {
	t.Parallel()

	source := defensemock.NewSource(t)
	source.
		On("LoadTeamWeeks", mock.Anything, 2024).
		Return(defense.Table{Header: []string{"season", "week", "club"}, Rows: [][]string{{"2024", "1", "PHI"}}}, nil).
		Once()

	svc := NewDefenseService(source, nil, nil)
	_, _, err := svc.Approximate(context.Background(), 2024, 1)
	if !errors.Is(err, defense.ErrSchemaMismatch) || !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch from both layers, got %v", err)
	}
}
