package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/kv"
	"github.com/riskibarqy/college-fantasy/internal/infrastructure/persistence"
	playerstatsmock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/playerstats"
	"github.com/stretchr/testify/mock"
)

func TestWarmService_RunsEveryWeekAndFormat(t *testing.T) {
	t.Parallel()

	stats := playerstatsmock.NewSource(t)
	stats.
		On("ListStatLines", mock.Anything, 2024, mock.AnythingOfType("int"), mock.AnythingOfType("playerstats.ScoringFormat")).
		Return(weekThreeLines(), nil).
		Times(6)
	stats.
		On("ListRoster", mock.Anything, 2024).
		Return(nil, nil)

	store := persistence.NewTiered(kv.NewMemoryStore(0), nil, nil)
	warm := NewWarmService(newTestAggregation(t, stats, nil, nil, store), 2, nil)

	got, err := warm.Warm(context.Background(), WarmRequest{Season: 2024, Weeks: []int{2, 1, 2}})
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if got.TaskCount != 6 || got.SuccessCount != 6 || got.FailedCount != 0 || got.SkippedCount != 0 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.WorkerCount != 2 {
		t.Fatalf("expected 2 workers, got %d", got.WorkerCount)
	}
	first := got.Tasks[0]
	if first.Week != 1 || first.Format != string(playerstats.FormatHalfPPR) || first.Key != "agg:2024:1:half_ppr:weekly:nok:none" {
		t.Fatalf("tasks not sorted by week then format: %+v", first)
	}

	again, err := warm.Warm(context.Background(), WarmRequest{Season: 2024, Weeks: []int{1, 2}})
	if err != nil {
		t.Fatalf("warm again: %v", err)
	}
	if again.SkippedCount != 6 {
		t.Fatalf("expected every task skipped on rerun, got %+v", again)
	}
}

func TestWarmService_ReportsFailedTasks(t *testing.T) {
	t.Parallel()

	stats := playerstatsmock.NewSource(t)
	stats.
		On("ListStatLines", mock.Anything, 2024, 4, playerstats.FormatPPR).
		Return(nil, fmt.Errorf("%w: 404", ErrNotYetAvailable)).
		Once()
	stats.
		On("ListRoster", mock.Anything, 2024).
		Return(nil, nil).
		Maybe()

	store := persistence.NewTiered(kv.NewMemoryStore(0), nil, nil)
	warm := NewWarmService(newTestAggregation(t, stats, nil, nil, store), 0, nil)

	got, err := warm.Warm(context.Background(), WarmRequest{Season: 2024, Weeks: []int{4}, Formats: []string{"ppr"}})
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if got.FailedCount != 1 || got.Tasks[0].Status != warmStatusFailed || got.Tasks[0].Message == "" {
		t.Fatalf("expected one failed task with message, got %+v", got)
	}
}

func TestWarmService_SubmitFailureWaitsForRunningTasks(t *testing.T) {
	t.Parallel()

	var finished atomic.Bool
	stats := playerstatsmock.NewSource(t)
	stats.
		On("ListStatLines", mock.Anything, 2024, 3, mock.AnythingOfType("playerstats.ScoringFormat")).
		Run(func(mock.Arguments) {
			time.Sleep(50 * time.Millisecond)
			finished.Store(true)
		}).
		Return(weekThreeLines(), nil).
		Once()
	stats.
		On("ListRoster", mock.Anything, 2024).
		Return(nil, nil).
		Maybe()

	warm := NewWarmService(newTestAggregation(t, stats, nil, nil, nil), 2, nil)
	warm.newPool = func(int) (*ants.Pool, error) {
		return ants.NewPool(1, ants.WithNonblocking(true))
	}

	_, err := warm.Warm(context.Background(), WarmRequest{Season: 2024, Weeks: []int{3}, Formats: []string{"standard", "ppr"}})
	if !errors.Is(err, ants.ErrPoolOverload) {
		t.Fatalf("expected pool overload, got %v", err)
	}
	if !finished.Load() {
		t.Fatalf("warm returned before the running task finished")
	}
}

func TestWarmService_ValidatesRequest(t *testing.T) {
	t.Parallel()

	warm := NewWarmService(newTestAggregation(t, playerstatsmock.NewSource(t), nil, nil, nil), 0, nil)
	tests := []WarmRequest{
		{Season: 1990},
		{Season: 2024, Weeks: []int{0}},
		{Season: 2024, Formats: []string{"superflex"}},
		{Season: 2020, Weeks: []int{19}},
	}
	for _, req := range tests {
		if _, err := warm.Warm(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("request %+v: expected ErrInvalidInput, got %v", req, err)
		}
	}
}

func TestCompletedWeeks(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)
	if got := completedWeeks(2023, now); len(got) != 18 {
		t.Fatalf("expected full 2023 season, got %v", got)
	}
	if got := completedWeeks(2019, now); len(got) != 17 {
		t.Fatalf("expected 17 scheduled weeks for 2019, got %v", got)
	}
	if got := completedWeeks(2020, time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC)); len(got) != 17 {
		t.Fatalf("expected the empty 2020 week-18 window skipped, got %v", got)
	}
	if got := completedWeeks(2025, now); got != nil {
		t.Fatalf("expected no weeks for a future season, got %v", got)
	}
	current := completedWeeks(2024, now)
	if len(current) == 0 || current[0] != 1 || current[len(current)-1] >= 18 {
		t.Fatalf("unexpected in-season weeks: %v", current)
	}
}

func TestNormalizeWarmWorkerCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested, ceiling, tasks, want int
	}{
		{0, 4, 10, 4},
		{8, 4, 10, 8},
		{40, 4, 100, maxWarmWorkers},
		{6, 4, 2, 2},
		{0, 0, 0, 1},
	}
	for _, tc := range tests {
		if got := normalizeWarmWorkerCount(tc.requested, tc.ceiling, tc.tasks); got != tc.want {
			t.Fatalf("normalizeWarmWorkerCount(%d,%d,%d) = %d, want %d", tc.requested, tc.ceiling, tc.tasks, got, tc.want)
		}
	}
}

func TestWarmService_WarmLatest(t *testing.T) {
	t.Parallel()

	stats := playerstatsmock.NewSource(t)
	stats.
		On("ListStatLines", mock.Anything, 2024, 6, playerstats.FormatPPR).
		Return(weekThreeLines(), nil).
		Once()
	stats.
		On("ListRoster", mock.Anything, 2024).
		Return(nil, nil)

	store := persistence.NewTiered(kv.NewMemoryStore(0), nil, nil)
	warm := NewWarmService(newTestAggregation(t, stats, nil, nil, store), 4, nil)
	warm.now = func() time.Time { return fixedNow }

	got, err := warm.WarmLatest(context.Background(), WarmRequest{Season: 1999, Weeks: []int{1, 2}, Formats: []string{"ppr"}})
	if err != nil {
		t.Fatalf("warm latest: %v", err)
	}
	if got.Season != 2024 || got.TaskCount != 1 || got.Tasks[0].Week != 6 || got.Tasks[0].Status != warmStatusSuccess {
		t.Fatalf("unexpected result: %+v", got)
	}
}
