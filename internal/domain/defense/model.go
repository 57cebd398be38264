package defense

import (
	"context"
	"errors"
)

var (
	// ErrSchemaMismatch means a required column was absent under every accepted name.
	ErrSchemaMismatch = errors.New("team stats schema mismatch")
	// ErrUnavailable means the season's team stats file does not exist (yet).
	ErrUnavailable = errors.New("team stats unavailable")
)

// Table is a decoded tabular dataset: a header row plus data rows.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Source loads one season of team-week offensive statistics.
type Source interface {
	LoadTeamWeeks(ctx context.Context, season int) (Table, error)
}

// TeamWeek is one team's offensive output in one game.
type TeamWeek struct {
	Team                string
	Opponent            string
	Week                int
	Points              float64
	SacksSuffered       float64
	InterceptionsThrown float64
	FumblesLost         float64
}

// DefenseRow is a team's approximated defensive score for one week, derived
// from the opponent's offensive row.
type DefenseRow struct {
	Team             string  `json:"team"`
	Opponent         string  `json:"opponent"`
	Week             int     `json:"week"`
	PointsAllowed    float64 `json:"points_allowed"`
	Sacks            float64 `json:"sacks"`
	Interceptions    float64 `json:"interceptions"`
	FumblesRecovered float64 `json:"fumbles_recovered"`
	AllowedBonus     float64 `json:"allowed_bonus"`
	Score            float64 `json:"score"`
}

type Result struct {
	Season int          `json:"season"`
	Week   int          `json:"week"`
	Rows   []DefenseRow `json:"rows"`
	// MissingFields lists optional stat columns absent from the source; they score as zero.
	MissingFields []string `json:"missing_fields,omitempty"`
}

// ScoreByTeam indexes row scores by team abbreviation.
func (r Result) ScoreByTeam() map[string]float64 {
	out := make(map[string]float64, len(r.Rows))
	for _, row := range r.Rows {
		out[row.Team] = row.Score
	}
	return out
}
