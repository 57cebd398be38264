package defense

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// field is one logical attribute with its accepted column names in priority
// order. A candidate naming several columns is satisfied only when all are
// present, and its value is their sum.
type field struct {
	name       string
	required   bool
	candidates [][]string
}

var (
	fieldTeam = field{name: "team", required: true, candidates: [][]string{
		{"team"}, {"team_abbr"}, {"posteam"}, {"abbr"}, {"recent_team"},
	}}
	fieldOpponent = field{name: "opponent", required: true, candidates: [][]string{
		{"opponent_team"}, {"opponent"}, {"opp"}, {"defteam"}, {"opp_team"},
	}}
	fieldWeek = field{name: "week", required: true, candidates: [][]string{
		{"week"}, {"game_week"}, {"wk"},
	}}
	fieldPoints = field{name: "points", required: true, candidates: [][]string{
		{"points"}, {"score"}, {"team_score"}, {"points_scored"}, {"pts"},
	}}
	fieldSacks = field{name: "sacks_suffered", candidates: [][]string{
		{"sacks_suffered"}, {"sacks_allowed"}, {"times_sacked"}, {"sacks"},
	}}
	fieldInterceptions = field{name: "interceptions_thrown", candidates: [][]string{
		{"passing_interceptions"}, {"interceptions_thrown"}, {"interceptions"}, {"ints"},
	}}
	fieldFumbles = field{name: "fumbles_lost", candidates: [][]string{
		{"fumbles_lost"},
		{"sack_fumbles_lost", "rushing_fumbles_lost", "receiving_fumbles_lost"},
		{"rushing_fumbles_lost", "receiving_fumbles_lost"},
		{"fumbles_lost_total"},
	}}

	allFields = []field{fieldTeam, fieldOpponent, fieldWeek, fieldPoints, fieldSacks, fieldInterceptions, fieldFumbles}
)

// columns maps each logical field to the header indexes chosen for it.
type columns struct {
	idx     map[string][]int
	missing []string
}

// probeColumns resolves every field against the header once per dataset.
func probeColumns(header []string) (columns, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	cols := columns{idx: make(map[string][]int, len(allFields))}
	for _, f := range allFields {
		found := false
		for _, candidate := range f.candidates {
			idxs := make([]int, 0, len(candidate))
			for _, name := range candidate {
				i, ok := positions[name]
				if !ok {
					break
				}
				idxs = append(idxs, i)
			}
			if len(idxs) == len(candidate) {
				cols.idx[f.name] = idxs
				found = true
				break
			}
		}
		if found {
			continue
		}
		if f.required {
			return columns{}, fmt.Errorf("%w: no column for %s (tried %v)", ErrSchemaMismatch, f.name, f.candidates)
		}
		cols.missing = append(cols.missing, f.name)
	}
	return cols, nil
}

func (c columns) text(f field, row []string) string {
	idxs := c.idx[f.name]
	if len(idxs) == 0 || idxs[0] >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idxs[0]])
}

func (c columns) number(f field, row []string) (float64, error) {
	var total float64
	for _, i := range c.idx[f.name] {
		if i >= len(row) {
			continue
		}
		v, err := parseNumber(row[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrSchemaMismatch, f.name, err)
		}
		total += v
	}
	return total, nil
}

func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToUpper(raw) {
	case "", "NA", "NAN", "NULL":
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, nil
	}
	return v, nil
}

// ParseTeamWeeks decodes a team-week table through column probing.
// It returns the names of optional fields that were absent.
func ParseTeamWeeks(table Table) ([]TeamWeek, []string, error) {
	cols, err := probeColumns(table.Header)
	if err != nil {
		return nil, nil, err
	}

	out := make([]TeamWeek, 0, len(table.Rows))
	for n, row := range table.Rows {
		team := NormalizeTeam(cols.text(fieldTeam, row))
		if team == "" {
			continue
		}
		week, err := cols.number(fieldWeek, row)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		tw := TeamWeek{
			Team:     team,
			Opponent: NormalizeTeam(cols.text(fieldOpponent, row)),
			Week:     int(week),
		}
		for _, target := range []struct {
			f   field
			dst *float64
		}{
			{fieldPoints, &tw.Points},
			{fieldSacks, &tw.SacksSuffered},
			{fieldInterceptions, &tw.InterceptionsThrown},
			{fieldFumbles, &tw.FumblesLost},
		} {
			v, err := cols.number(target.f, row)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", n+1, err)
			}
			*target.dst = v
		}
		out = append(out, tw)
	}
	return out, cols.missing, nil
}
