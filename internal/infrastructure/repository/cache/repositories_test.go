package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	defensemock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/defense"
	playerstatsmock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/playerstats"
	schedulemock "github.com/riskibarqy/college-fantasy/internal/mocks/domain/schedule"
	basecache "github.com/riskibarqy/college-fantasy/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestStatSource_LoadsOncePerKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playerstatsmock.NewSource(t)
	next.
		On("ListStatLines", mock.Anything, 2024, 3, playerstats.FormatPPR).
		Return([]playerstats.StatLine{{PlayerID: "00-1", Points: 12}}, nil).
		Once()
	next.
		On("ListStatLines", mock.Anything, 2024, 3, playerstats.FormatStandard).
		Return([]playerstats.StatLine{{PlayerID: "00-1", Points: 8}}, nil).
		Once()

	repo := NewStatSource(next, nil, basecache.NewStore(time.Minute))
	first, err := repo.ListStatLines(ctx, 2024, 3, playerstats.FormatPPR)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	first[0].Points = 999

	second, err := repo.ListStatLines(ctx, 2024, 3, playerstats.FormatPPR)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second[0].Points != 12 {
		t.Fatalf("cached slice was mutated through a returned copy: %+v", second)
	}

	std, err := repo.ListStatLines(ctx, 2024, 3, playerstats.FormatStandard)
	if err != nil || std[0].Points != 8 {
		t.Fatalf("format must be part of the key: %+v err=%v", std, err)
	}
}

func TestStatSource_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playerstatsmock.NewSource(t)
	averages := playerstatsmock.NewAverageProvider(t)
	boom := errors.New("upstream down")
	averages.
		On("SeasonAverages", mock.Anything, 2024, 4, playerstats.FormatStandard).
		Return(nil, boom).
		Once()
	averages.
		On("SeasonAverages", mock.Anything, 2024, 4, playerstats.FormatStandard).
		Return(map[string]float64{"00-1": 10}, nil).
		Once()

	repo := NewStatSource(next, averages, basecache.NewStore(time.Minute))
	if _, err := repo.SeasonAverages(ctx, 2024, 4, playerstats.FormatStandard); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	got, err := repo.SeasonAverages(ctx, 2024, 4, playerstats.FormatStandard)
	if err != nil || got["00-1"] != 10 {
		t.Fatalf("expected reload after error: %v err=%v", got, err)
	}
}

func TestScheduleSource_CollegiateGamesAreCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfb := schedulemock.NewCollegiateSource(t)
	cfb.
		On("ListCollegiateGames", mock.Anything, 2024).
		Return([]schedule.CollegiateGame{{Week: 1, HomeRaw: "Georgia", AwayRaw: "Clemson"}}, nil).
		Once()

	repo := NewScheduleSource(schedulemock.NewProSource(t), cfb, basecache.NewStore(time.Minute))
	games, err := repo.ListCollegiateGames(ctx, 2024)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	games[0].HomeCanonical = "Georgia"

	again, err := repo.ListCollegiateGames(ctx, 2024)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again[0].HomeCanonical != "" {
		t.Fatalf("canonical name leaked into the cached rows: %+v", again[0])
	}
}

func TestTeamWeekSource_Memoizes(t *testing.T) {
	t.Parallel()

	next := defensemock.NewSource(t)
	next.
		On("LoadTeamWeeks", mock.Anything, 2024).
		Return(defense.Table{Header: []string{"team"}}, nil).
		Once()

	repo := NewTeamWeekSource(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		table, err := repo.LoadTeamWeeks(context.Background(), 2024)
		if err != nil || len(table.Header) != 1 {
			t.Fatalf("load %d: %+v err=%v", i, table, err)
		}
	}
}
