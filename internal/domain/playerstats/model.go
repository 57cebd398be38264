package playerstats

import (
	"fmt"
	"strings"
)

// Position is a professional roster position.
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionK  Position = "K"

	PositionDE  Position = "DE"
	PositionDT  Position = "DT"
	PositionDL  Position = "DL"
	PositionNT  Position = "NT"
	PositionLB  Position = "LB"
	PositionILB Position = "ILB"
	PositionOLB Position = "OLB"
	PositionMLB Position = "MLB"
	PositionCB  Position = "CB"
	PositionS   Position = "S"
	PositionFS  Position = "FS"
	PositionSS  Position = "SS"
	PositionDB  Position = "DB"
)

var positionAliases = map[string]Position{
	"HB":  PositionRB,
	"FB":  PositionRB,
	"PK":  PositionK,
	"SAF": PositionS,
}

var defensivePositions = map[Position]struct{}{
	PositionDE: {}, PositionDT: {}, PositionDL: {}, PositionNT: {},
	PositionLB: {}, PositionILB: {}, PositionOLB: {}, PositionMLB: {},
	PositionCB: {}, PositionS: {}, PositionFS: {}, PositionSS: {}, PositionDB: {},
}

// NormalizePosition upper-cases raw and folds common aliases.
func NormalizePosition(raw string) Position {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if alias, ok := positionAliases[p]; ok {
		return alias
	}
	return Position(p)
}

func (p Position) IsDefensive() bool {
	_, ok := defensivePositions[p]
	return ok
}

// IsFlexEligible reports whether p can fill the FLEX slot.
func (p Position) IsFlexEligible() bool {
	return p == PositionWR || p == PositionRB || p == PositionTE
}

// ScoringFormat selects which fantasy point column a stat line carries.
type ScoringFormat string

const (
	FormatStandard ScoringFormat = "standard"
	FormatHalfPPR  ScoringFormat = "half_ppr"
	FormatPPR      ScoringFormat = "ppr"
)

var AllFormats = []ScoringFormat{FormatStandard, FormatHalfPPR, FormatPPR}

func ParseScoringFormat(raw string) (ScoringFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "standard", "std":
		return FormatStandard, nil
	case "half_ppr", "half", "half-ppr":
		return FormatHalfPPR, nil
	case "ppr":
		return FormatPPR, nil
	default:
		return "", fmt.Errorf("unknown scoring format %q", raw)
	}
}

// Points picks the value for format from the standard and full-PPR totals.
// Half PPR is the midpoint, which equals standard plus half a point per reception.
func Points(format ScoringFormat, standard, ppr float64) float64 {
	switch format {
	case FormatPPR:
		return ppr
	case FormatHalfPPR:
		return (standard + ppr) / 2
	default:
		return standard
	}
}

// StatLine is one player's professional output for one week in one format.
type StatLine struct {
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Team     string   `json:"team"`
	College  string   `json:"college"`
	Season   int      `json:"season"`
	Week     int      `json:"week"`
	Points   float64  `json:"points"`
}

// RosterEntry ties a professional player to a team and the college they attended.
type RosterEntry struct {
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Team     string   `json:"team"`
	College  string   `json:"college"`
	Season   int      `json:"season"`
}

// AttachColleges fills blank College fields from the roster by player id.
func AttachColleges(lines []StatLine, roster []RosterEntry) []StatLine {
	if len(roster) == 0 {
		return lines
	}
	byID := make(map[string]string, len(roster))
	for _, entry := range roster {
		if entry.PlayerID != "" && entry.College != "" {
			byID[entry.PlayerID] = entry.College
		}
	}
	out := make([]StatLine, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line.College) == "" {
			line.College = byID[line.PlayerID]
		}
		out[i] = line
	}
	return out
}

// Averages returns each player's mean points over weeks [1, uptoWeek).
func Averages(lines []StatLine, uptoWeek int) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, line := range lines {
		if line.PlayerID == "" || line.Week < 1 || line.Week >= uptoWeek {
			continue
		}
		sums[line.PlayerID] += line.Points
		counts[line.PlayerID]++
	}
	out := make(map[string]float64, len(sums))
	for id, sum := range sums {
		out[id] = sum / float64(counts[id])
	}
	return out
}
