package defense

import (
	"errors"
	"testing"
)

func TestAllowedBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		allowed float64
		want    float64
	}{
		{0, 10}, {1, 7}, {6, 7}, {7, 4}, {13, 4}, {14, 1}, {20, 1},
		{21, 0}, {27, 0}, {28, -1}, {34, -1}, {35, -4}, {62, -4},
	}
	for _, tc := range tests {
		if got := AllowedBonus(tc.allowed); got != tc.want {
			t.Fatalf("AllowedBonus(%v) = %v, want %v", tc.allowed, got, tc.want)
		}
	}
}

func TestApproximate_OpponentSwap(t *testing.T) {
	t.Parallel()

	table := Table{
		Header: []string{"season", "week", "team", "opponent_team", "points", "sacks_suffered", "passing_interceptions", "fumbles_lost"},
		Rows: [][]string{
			{"2024", "1", "PHI", "DAL", "17", "1", "0", "1"},
			{"2024", "1", "DAL", "PHI", "21", "3", "2", "2"},
			{"2024", "1", "KC", "BUF", "NA", "", "", ""},
		},
	}

	result, err := Approximate(2024, 1, table)
	if err != nil {
		t.Fatalf("approximate: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows (BUF missing from dataset), got %+v", result.Rows)
	}

	scores := result.ScoreByTeam()
	if scores["PHI"] != 11 {
		t.Fatalf("expected PHI score 11, got %v", scores["PHI"])
	}
	// DAL allowed 17: bonus 1 + 1 sack + 0 + 2.
	if scores["DAL"] != 4 {
		t.Fatalf("expected DAL score 4, got %v", scores["DAL"])
	}
	if result.Rows[1].Team != "PHI" || result.Rows[1].PointsAllowed != 21 || result.Rows[1].Opponent != "DAL" {
		t.Fatalf("unexpected PHI row: %+v", result.Rows[1])
	}
}

func TestApproximate_LatestWeekAndAliases(t *testing.T) {
	t.Parallel()

	table := Table{
		Header: []string{"posteam", "opp", "game_week", "score", "times_sacked", "interceptions", "sack_fumbles_lost", "rushing_fumbles_lost", "receiving_fumbles_lost"},
		Rows: [][]string{
			{"OAK", "SD", "1", "0", "0", "0", "0", "0", "0"},
			{"SD", "OAK", "1", "0", "0", "0", "0", "0", "0"},
			{"oak", "sd", "2", "10", "2", "1", "1", "1", "0"},
			{"SD", "OAK", "2", "35", "4", "0", "0", "0", "1"},
		},
	}

	result, err := Approximate(2016, 0, table)
	if err != nil {
		t.Fatalf("approximate: %v", err)
	}
	if result.Week != 2 {
		t.Fatalf("expected latest week 2, got %d", result.Week)
	}
	scores := result.ScoreByTeam()
	// LAC allowed 10 (bonus 4) + 2 sacks + 1 int + 2 fumbles summed from components.
	if scores["LAC"] != 4+2+2+4 {
		t.Fatalf("expected LAC 12, got %v (%+v)", scores["LAC"], result.Rows)
	}
	// LV allowed 35 (bonus -4) + 4 sacks + 0 + 1 fumble.
	if scores["LV"] != -4+4+0+2 {
		t.Fatalf("expected LV 2, got %v", scores["LV"])
	}
	if len(result.MissingFields) != 0 {
		t.Fatalf("expected no missing fields, got %v", result.MissingFields)
	}
}

func TestApproximate_SchemaMismatch(t *testing.T) {
	t.Parallel()

	_, err := Approximate(2024, 1, Table{Header: []string{"team", "week", "points"}})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}

	_, err = Approximate(2024, 1, Table{
		Header: []string{"team", "opponent", "week", "points"},
		Rows:   [][]string{{"PHI", "DAL", "1", "twenty"}},
	})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for bad number, got %v", err)
	}
}

func TestApproximate_OptionalFieldsReported(t *testing.T) {
	t.Parallel()

	result, err := Approximate(2024, 1, Table{
		Header: []string{"team", "opponent", "week", "points"},
		Rows:   [][]string{{"PHI", "DAL", "1", "0"}, {"DAL", "PHI", "1", "3"}},
	})
	if err != nil {
		t.Fatalf("approximate: %v", err)
	}
	if len(result.MissingFields) != 3 {
		t.Fatalf("expected 3 missing optional fields, got %v", result.MissingFields)
	}
	if scores := result.ScoreByTeam(); scores["DAL"] != 10 || scores["PHI"] != 7 {
		t.Fatalf("unexpected scores: %+v", scores)
	}
}

func TestApproximate_EmptyWeek(t *testing.T) {
	t.Parallel()

	result, err := Approximate(2024, 5, Table{
		Header: []string{"team", "opponent", "week", "points"},
		Rows:   [][]string{{"PHI", "DAL", "1", "0"}},
	})
	if err != nil {
		t.Fatalf("approximate: %v", err)
	}
	if result.Week != 5 || len(result.Rows) != 0 {
		t.Fatalf("expected empty week 5, got %+v", result)
	}
}

func TestNormalizeTeam(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]string{"oak": "LV", "STL": "LA", "LAR": "LA", "wsh": "WAS", "PHI": "PHI", " jac ": "JAX"} {
		if got := NormalizeTeam(raw); got != want {
			t.Fatalf("NormalizeTeam(%q) = %q, want %q", raw, got, want)
		}
	}
}
