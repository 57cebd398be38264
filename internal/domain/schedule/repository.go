package schedule

import "context"

// ProSource returns raw professional schedule rows for one season.
type ProSource interface {
	ListProGames(ctx context.Context, season int) ([]ScheduleGame, error)
}

// CollegiateSource returns raw collegiate schedule rows for one season.
type CollegiateSource interface {
	ListCollegiateGames(ctx context.Context, season int) ([]CollegiateGame, error)
}
