package defense

import "sort"

// AllowedBonus is the step bonus for points allowed.
func AllowedBonus(pointsAllowed float64) float64 {
	switch {
	case pointsAllowed <= 0:
		return 10
	case pointsAllowed < 7:
		return 7
	case pointsAllowed < 14:
		return 4
	case pointsAllowed < 21:
		return 1
	case pointsAllowed < 28:
		return 0
	case pointsAllowed < 35:
		return -1
	default:
		return -4
	}
}

// ScoreAgainst scores a defense from the row its opponent produced against it.
func ScoreAgainst(team string, opponent TeamWeek) DefenseRow {
	bonus := AllowedBonus(opponent.Points)
	return DefenseRow{
		Team:             team,
		Opponent:         opponent.Team,
		Week:             opponent.Week,
		PointsAllowed:    opponent.Points,
		Sacks:            opponent.SacksSuffered,
		Interceptions:    opponent.InterceptionsThrown,
		FumblesRecovered: opponent.FumblesLost,
		AllowedBonus:     bonus,
		Score:            bonus + opponent.SacksSuffered + 2*opponent.InterceptionsThrown + 2*opponent.FumblesLost,
	}
}

// Approximate computes defense rows for one week of a season's team table.
// week <= 0 selects the latest week present. A week with no rows yields an
// empty result rather than an error.
func Approximate(season, week int, table Table) (Result, error) {
	teamWeeks, missing, err := ParseTeamWeeks(table)
	if err != nil {
		return Result{}, err
	}
	return ApproximateTeamWeeks(season, week, teamWeeks, missing), nil
}

func ApproximateTeamWeeks(season, week int, teamWeeks []TeamWeek, missing []string) Result {
	if week <= 0 {
		for _, tw := range teamWeeks {
			if tw.Week > week {
				week = tw.Week
			}
		}
	}

	result := Result{Season: season, Week: week, MissingFields: missing}
	byTeam := make(map[string]TeamWeek)
	order := make([]string, 0, 32)
	for _, tw := range teamWeeks {
		if tw.Week != week {
			continue
		}
		if _, dup := byTeam[tw.Team]; dup {
			continue
		}
		byTeam[tw.Team] = tw
		order = append(order, tw.Team)
	}

	for _, team := range order {
		opponent, ok := byTeam[byTeam[team].Opponent]
		if !ok {
			continue
		}
		result.Rows = append(result.Rows, ScoreAgainst(team, opponent))
	}
	sort.SliceStable(result.Rows, func(i, j int) bool { return result.Rows[i].Team < result.Rows[j].Team })
	return result
}
