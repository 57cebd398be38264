package lineup

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/college-fantasy/internal/domain/college"
	"github.com/riskibarqy/college-fantasy/internal/domain/playerstats"
)

// Mode chooses what a player contributes.
type Mode string

const (
	ModeWeekly Mode = "weekly"
	ModeAvg    Mode = "avg"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeWeekly:
		return ModeWeekly, nil
	case ModeAvg:
		return ModeAvg, nil
	default:
		return "", fmt.Errorf("unknown aggregation mode %q", raw)
	}
}

type DefenseMode string

const (
	DefenseNone   DefenseMode = "none"
	DefenseApprox DefenseMode = "approx"
)

func ParseDefenseMode(raw string) (DefenseMode, error) {
	switch DefenseMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DefenseNone:
		return DefenseNone, nil
	case DefenseApprox:
		return DefenseApprox, nil
	default:
		return "", fmt.Errorf("unknown defense mode %q", raw)
	}
}

// Slot is a lineup position label.
type Slot string

const (
	SlotQB      Slot = "QB"
	SlotTE      Slot = "TE"
	SlotWR      Slot = "WR"
	SlotRB      Slot = "RB"
	SlotK       Slot = "K"
	SlotFlex    Slot = "FLEX"
	SlotDefense Slot = "DEF"
)

// DefenseContributors caps how many roster defenders feed one school's defense row.
const DefenseContributors = 11

// ContributionSource says where a performer's points came from.
type ContributionSource string

const (
	SourceWeek    ContributionSource = "week"
	SourceAverage ContributionSource = "average"
	SourceDefense ContributionSource = "defense"
)

type Performer struct {
	Slot     Slot                 `json:"slot"`
	PlayerID string               `json:"player_id,omitempty"`
	Name     string               `json:"name"`
	Position playerstats.Position `json:"position,omitempty"`
	Team     string               `json:"team,omitempty"`
	Points   float64              `json:"points"`
	Source   ContributionSource   `json:"source"`
	// Contributors is the number of roster defenders summed into a defense row.
	Contributors int `json:"contributors,omitempty"`
}

type SchoolAggregate struct {
	School      college.Identity `json:"school"`
	TotalPoints float64          `json:"total_points"`
	Performers  []Performer      `json:"performers"`
}

// Resolver is the college lookup the aggregation needs.
type Resolver interface {
	Resolve(raw string, player college.Player) college.Resolution
}

type Options struct {
	IncludeKicker bool
	DefenseMode   DefenseMode
	// DefenseScores maps a team abbreviation to its approximated defense score.
	DefenseScores map[string]float64
	// Roster supplies the player to college join for defense rows.
	Roster []playerstats.RosterEntry
}

type Output struct {
	Schools []SchoolAggregate `json:"schools"`
	// UnresolvedCount is the number of stat lines grouped under Unknown.
	UnresolvedCount int `json:"unresolved_count"`
}
