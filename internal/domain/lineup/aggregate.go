package lineup

import (
	"sort"

	"github.com/riskibarqy/college-fantasy/internal/domain/college"
	"github.com/riskibarqy/college-fantasy/internal/domain/defense"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
)

type candidate struct {
	line   playerstats.StatLine
	points float64
	source ContributionSource
}

type slotRule struct {
	slot     Slot
	eligible func(playerstats.Position) bool
}

func only(p playerstats.Position) func(playerstats.Position) bool {
	return func(q playerstats.Position) bool { return q == p }
}

// slotOrder returns the fill order for a lineup.
func slotOrder(includeKicker bool) []slotRule {
	rules := []slotRule{
		{SlotQB, only(playerstats.PositionQB)},
		{SlotTE, only(playerstats.PositionTE)},
		{SlotWR, only(playerstats.PositionWR)},
		{SlotWR, only(playerstats.PositionWR)},
		{SlotRB, only(playerstats.PositionRB)},
		{SlotRB, only(playerstats.PositionRB)},
	}
	if includeKicker {
		rules = append(rules, slotRule{SlotK, only(playerstats.PositionK)})
	}
	return append(rules, slotRule{SlotFlex, playerstats.Position.IsFlexEligible})
}

// Aggregate groups stat lines by resolved college and scores one fixed-shape
// lineup per school. Identical inputs always produce identical output.
func Aggregate(lines []playerstats.StatLine, week int, mode Mode, averages map[string]float64, resolver Resolver, opts Options) Output {
	useAverages := mode == ModeAvg && week > 1

	groups := make(map[college.Identity][]candidate)
	var out Output
	for _, line := range lines {
		res := resolver.Resolve(line.College, college.Player{ID: line.PlayerID, Name: line.Name})
		if res.Identity.IsUnknown() {
			out.UnresolvedCount++
		}

		c := candidate{line: line, points: line.Points, source: SourceWeek}
		if useAverages {
			if avg, ok := averages[line.PlayerID]; ok {
				c.points = avg
				c.source = SourceAverage
			}
		}
		groups[res.Identity] = append(groups[res.Identity], c)
	}

	var defenseBySchool map[college.Identity]Performer
	if opts.DefenseMode == DefenseApprox && len(opts.DefenseScores) > 0 {
		defenseBySchool = defenseRows(opts.Roster, opts.DefenseScores, resolver)
	}

	rules := slotOrder(opts.IncludeKicker)
	out.Schools = make([]SchoolAggregate, 0, len(groups))
	for school, candidates := range groups {
		agg := SchoolAggregate{School: school, Performers: selectLineup(candidates, rules)}
		if row, ok := defenseBySchool[school]; ok {
			agg.Performers = append(agg.Performers, row)
		}
		for _, p := range agg.Performers {
			agg.TotalPoints += p.Points
		}
		out.Schools = append(out.Schools, agg)
	}

	sort.Slice(out.Schools, func(i, j int) bool {
		a, b := out.Schools[i], out.Schools[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		return a.School < b.School
	})
	return out
}

// selectLineup fills each slot with the best unused eligible candidate.
// Candidates keep their input order among equal points.
func selectLineup(candidates []candidate, rules []slotRule) []Performer {
	ranked := make([]candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].points > ranked[j].points })

	used := make([]bool, len(ranked))
	performers := make([]Performer, 0, len(rules))
	for _, rule := range rules {
		for i, c := range ranked {
			if used[i] || !rule.eligible(c.line.Position) {
				continue
			}
			used[i] = true
			performers = append(performers, Performer{
				Slot:     rule.slot,
				PlayerID: c.line.PlayerID,
				Name:     c.line.Name,
				Position: c.line.Position,
				Team:     c.line.Team,
				Points:   c.points,
				Source:   c.source,
			})
			break
		}
	}
	return performers
}

// defenseRows sums, per school, the team defense scores of that school's top
// defensive roster players.
func defenseRows(roster []playerstats.RosterEntry, scores map[string]float64, resolver Resolver) map[college.Identity]Performer {
	seen := make(map[string]struct{}, len(roster))
	bySchool := make(map[college.Identity][]float64)
	for _, entry := range roster {
		if !entry.Position.IsDefensive() {
			continue
		}
		if entry.PlayerID != "" {
			if _, dup := seen[entry.PlayerID]; dup {
				continue
			}
			seen[entry.PlayerID] = struct{}{}
		}
		score, ok := scores[defense.NormalizeTeam(entry.Team)]
		if !ok {
			continue
		}
		school := resolver.Resolve(entry.College, college.Player{ID: entry.PlayerID, Name: entry.Name}).Identity
		bySchool[school] = append(bySchool[school], score)
	}

	out := make(map[college.Identity]Performer, len(bySchool))
	for school, contributions := range bySchool {
		sort.Sort(sort.Reverse(sort.Float64Slice(contributions)))
		if len(contributions) > DefenseContributors {
			contributions = contributions[:DefenseContributors]
		}
		var sum float64
		for _, c := range contributions {
			sum += c
		}
		out[school] = Performer{
			Slot:         SlotDefense,
			Name:         "Defense",
			Points:       sum,
			Source:       SourceDefense,
			Contributors: len(contributions),
		}
	}
	return out
}
