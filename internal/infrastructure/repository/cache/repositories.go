package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	basecache "github.com/riskibarqy/college-fantasy/internal/platform/cache"
)

// StatSource memoizes stat lines, rosters and season averages in process.
type StatSource struct {
	next     playerstats.Source
	averages playerstats.AverageProvider
	cache    *basecache.Store
}

func NewStatSource(next playerstats.Source, averages playerstats.AverageProvider, cache *basecache.Store) *StatSource {
	return &StatSource{next: next, averages: averages, cache: cache}
}

func (r *StatSource) ListStatLines(ctx context.Context, season, week int, format playerstats.ScoringFormat) ([]playerstats.StatLine, error) {
	key := "stats:week:" + strconv.Itoa(season) + ":" + strconv.Itoa(week) + ":" + string(format)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListStatLines(ctx, season, week, format)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.StatLine(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.StatLine)
	return append([]playerstats.StatLine(nil), items...), nil
}

func (r *StatSource) ListRoster(ctx context.Context, season int) ([]playerstats.RosterEntry, error) {
	key := "stats:roster:" + strconv.Itoa(season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListRoster(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.RosterEntry(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.RosterEntry)
	return append([]playerstats.RosterEntry(nil), items...), nil
}

func (r *StatSource) SeasonAverages(ctx context.Context, season, uptoWeek int, format playerstats.ScoringFormat) (map[string]float64, error) {
	key := "stats:avg:" + strconv.Itoa(season) + ":" + strconv.Itoa(uptoWeek) + ":" + string(format)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.averages.SeasonAverages(ctx, season, uptoWeek, format)
		if err != nil {
			return nil, err
		}
		return copyAverages(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.(map[string]float64)
	return copyAverages(items), nil
}

func copyAverages(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type ScheduleSource struct {
	pro   schedule.ProSource
	cfb   schedule.CollegiateSource
	cache *basecache.Store
}

func NewScheduleSource(pro schedule.ProSource, cfb schedule.CollegiateSource, cache *basecache.Store) *ScheduleSource {
	return &ScheduleSource{pro: pro, cfb: cfb, cache: cache}
}

func (r *ScheduleSource) ListProGames(ctx context.Context, season int) ([]schedule.ScheduleGame, error) {
	key := "schedule:pro:" + strconv.Itoa(season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.pro.ListProGames(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]schedule.ScheduleGame(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.ScheduleGame)
	return append([]schedule.ScheduleGame(nil), items...), nil
}

// ListCollegiateGames returns copies because callers fill in canonical names.
func (r *ScheduleSource) ListCollegiateGames(ctx context.Context, season int) ([]schedule.CollegiateGame, error) {
	key := "schedule:cfb:" + strconv.Itoa(season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.cfb.ListCollegiateGames(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]schedule.CollegiateGame(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.CollegiateGame)
	return append([]schedule.CollegiateGame(nil), items...), nil
}

type TeamWeekSource struct {
	next  defense.Source
	cache *basecache.Store
}

func NewTeamWeekSource(next defense.Source, cache *basecache.Store) *TeamWeekSource {
	return &TeamWeekSource{next: next, cache: cache}
}

func (r *TeamWeekSource) LoadTeamWeeks(ctx context.Context, season int) (defense.Table, error) {
	key := "defense:team_weeks:" + strconv.Itoa(season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.LoadTeamWeeks(ctx, season)
	})
	if err != nil {
		return defense.Table{}, err
	}

	table, _ := v.(defense.Table)
	return table, nil
}
