package nflverse

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
	"github.com/riskibarqy/college-fantasy/internal/domain/schedule"
	"github.com/riskibarqy/college-fantasy/internal/usecase"
)

const scheduleTimezone = "America/New_York"

var easternFallback = time.FixedZone("EST", -5*60*60)

func playerStatsPath(season int) string {
	return fmt.Sprintf("player_stats/player_stats_%d.csv", season)
}

func rosterPath(season int) string {
	return fmt.Sprintf("rosters/roster_%d.csv", season)
}

func teamStatsPath(season int) string {
	return fmt.Sprintf("stats_team/stats_team_week_%d.csv", season)
}

const schedulePath = "schedules/games.csv"

// ListStatLines returns regular-season stat lines for one week. A season file
// without rows for week means the week has not been published yet.
func (c *Client) ListStatLines(ctx context.Context, season, week int, format playerstats.ScoringFormat) ([]playerstats.StatLine, error) {
	lines, err := c.seasonStatLines(ctx, season, format)
	if err != nil {
		return nil, err
	}

	out := make([]playerstats.StatLine, 0, 512)
	for _, line := range lines {
		if line.Week == week {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: player stats season=%d week=%d", usecase.ErrNotYetAvailable, season, week)
	}
	return out, nil
}

// SeasonAverages averages each player's points over weeks [1, uptoWeek).
func (c *Client) SeasonAverages(ctx context.Context, season, uptoWeek int, format playerstats.ScoringFormat) (map[string]float64, error) {
	lines, err := c.seasonStatLines(ctx, season, format)
	if err != nil {
		return nil, err
	}
	return playerstats.Averages(lines, uptoWeek), nil
}

func (c *Client) seasonStatLines(ctx context.Context, season int, format playerstats.ScoringFormat) ([]playerstats.StatLine, error) {
	t, err := c.fetchTable(ctx, playerStatsPath(season))
	if err != nil {
		return nil, err
	}

	var (
		colID       = t.column("player_id", "gsis_id")
		colName     = t.column("player_display_name", "player_name", "full_name")
		colPosition = t.column("position")
		colTeam     = t.column("recent_team", "team")
		colSeason   = t.column("season")
		colWeek     = t.column("week")
		colType     = t.column("season_type")
		colStandard = t.column("fantasy_points")
		colPPR      = t.column("fantasy_points_ppr")
		colCollege  = t.column("college", "college_name")
	)
	if colID < 0 || colWeek < 0 || colStandard < 0 {
		return nil, fmt.Errorf("%w: player stats season=%d missing player_id/week/fantasy_points", usecase.ErrSchemaMismatch, season)
	}

	out := make([]playerstats.StatLine, 0, len(t.rows))
	for _, row := range t.rows {
		if colType >= 0 && !strings.EqualFold(cell(row, colType), "REG") {
			continue
		}
		week, err := strconv.Atoi(cell(row, colWeek))
		if err != nil {
			continue
		}
		rowSeason := season
		if v, err := strconv.Atoi(cell(row, colSeason)); err == nil {
			rowSeason = v
		}
		standard := parseFloat(cell(row, colStandard))
		ppr := standard
		if colPPR >= 0 {
			ppr = parseFloat(cell(row, colPPR))
		}

		out = append(out, playerstats.StatLine{
			PlayerID: cell(row, colID),
			Name:     cell(row, colName),
			Position: playerstats.NormalizePosition(cell(row, colPosition)),
			Team:     cell(row, colTeam),
			College:  cell(row, colCollege),
			Season:   rowSeason,
			Week:     week,
			Points:   playerstats.Points(format, standard, ppr),
		})
	}
	return out, nil
}

// ListRoster returns one entry per player and team for the season.
func (c *Client) ListRoster(ctx context.Context, season int) ([]playerstats.RosterEntry, error) {
	t, err := c.fetchTable(ctx, rosterPath(season))
	if err != nil {
		return nil, err
	}

	var (
		colID       = t.column("gsis_id", "player_id")
		colName     = t.column("full_name", "player_name")
		colPosition = t.column("position", "depth_chart_position")
		colTeam     = t.column("team", "recent_team")
		colCollege  = t.column("college", "college_name")
	)
	if colID < 0 || colCollege < 0 {
		return nil, fmt.Errorf("%w: roster season=%d missing gsis_id/college", usecase.ErrSchemaMismatch, season)
	}

	seen := make(map[string]struct{}, len(t.rows))
	out := make([]playerstats.RosterEntry, 0, len(t.rows))
	for _, row := range t.rows {
		id := cell(row, colID)
		team := cell(row, colTeam)
		key := id + "|" + team
		if id == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, playerstats.RosterEntry{
			PlayerID: id,
			Name:     cell(row, colName),
			Position: playerstats.NormalizePosition(cell(row, colPosition)),
			Team:     team,
			College:  cell(row, colCollege),
			Season:   season,
		})
	}
	return out, nil
}

// LoadTeamWeeks returns the regular-season team-week table unchanged apart
// from dropping postseason rows. Column probing happens in the defense engine.
func (c *Client) LoadTeamWeeks(ctx context.Context, season int) (defense.Table, error) {
	t, err := c.fetchTable(ctx, teamStatsPath(season))
	if err != nil {
		return defense.Table{}, err
	}

	colType := t.column("season_type")
	rows := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		if colType >= 0 && !strings.EqualFold(cell(row, colType), "REG") {
			continue
		}
		rows = append(rows, row)
	}
	return defense.Table{Header: t.header, Rows: rows}, nil
}

// ListProGames returns the season's games. Kickoffs are published as Eastern
// local date and time; rows without a time carry a zero Kickoff.
func (c *Client) ListProGames(ctx context.Context, season int) ([]schedule.ScheduleGame, error) {
	t, err := c.fetchTable(ctx, schedulePath)
	if err != nil {
		return nil, err
	}

	var (
		colSeason = t.column("season")
		colWeek   = t.column("week")
		colType   = t.column("game_type", "season_type")
		colDay    = t.column("gameday", "game_date")
		colTime   = t.column("gametime", "game_time")
		colHome   = t.column("home_team")
		colAway   = t.column("away_team")
	)
	if colSeason < 0 || colWeek < 0 {
		return nil, fmt.Errorf("%w: schedule missing season/week", usecase.ErrSchemaMismatch)
	}

	loc := eastern()
	out := make([]schedule.ScheduleGame, 0, 300)
	for _, row := range t.rows {
		rowSeason, err := strconv.Atoi(cell(row, colSeason))
		if err != nil || rowSeason != season {
			continue
		}
		week, err := strconv.Atoi(cell(row, colWeek))
		if err != nil {
			continue
		}
		out = append(out, schedule.ScheduleGame{
			Season:   rowSeason,
			Week:     week,
			Kickoff:  parseKickoff(cell(row, colDay), cell(row, colTime), loc),
			HomeTeam: defense.NormalizeTeam(cell(row, colHome)),
			AwayTeam: defense.NormalizeTeam(cell(row, colAway)),
			GameType: cell(row, colType),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no schedule rows for season %d", usecase.ErrNotYetAvailable, season)
	}
	return out, nil
}

func eastern() *time.Location {
	loc, err := time.LoadLocation(scheduleTimezone)
	if err != nil {
		return easternFallback
	}
	return loc
}

func parseKickoff(day, clock string, loc *time.Location) time.Time {
	if day == "" || clock == "" {
		return time.Time{}
	}
	parsed, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, loc)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

func parseFloat(raw string) float64 {
	switch strings.ToUpper(raw) {
	case "", "NA", "NAN", "NULL":
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
