package playerstats

import "context"

// Source serves professional weekly stat lines and rosters.
type Source interface {
	ListStatLines(ctx context.Context, season, week int, format ScoringFormat) ([]StatLine, error)
	ListRoster(ctx context.Context, season int) ([]RosterEntry, error)
}

// AverageProvider serves season-to-date averages over weeks 1..uptoWeek-1.
type AverageProvider interface {
	SeasonAverages(ctx context.Context, season, uptoWeek int, format ScoringFormat) (map[string]float64, error)
}
