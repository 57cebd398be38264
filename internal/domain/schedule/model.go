package schedule

import (
	"strings"
	"time"
)

// GameType is the two-valued classification used to build week windows.
type GameType string

const (
	GameTypePreseason GameType = "PRE"
	GameTypeRegular   GameType = "REG"
)

// NormalizeGameType collapses provider game-type spellings. Anything that is not
// recognizably preseason counts as regular season.
func NormalizeGameType(raw string) GameType {
	value := strings.ToUpper(strings.TrimSpace(raw))
	value = strings.NewReplacer("-", "_", " ", "_").Replace(value)
	switch {
	case value == "":
		return GameTypeRegular
	case value == "HOF", value == "HALL_OF_FAME":
		return GameTypePreseason
	case strings.HasPrefix(value, "PRE"):
		// PRE, PRE1..PRE4, PRESEASON, PRE_SEASON
		return GameTypePreseason
	default:
		return GameTypeRegular
	}
}

// ScheduleGame is one professional schedule row. A zero Kickoff means unknown.
type ScheduleGame struct {
	Season   int
	Week     int
	Kickoff  time.Time
	HomeTeam string
	AwayTeam string
	GameType string
}

// CollegiateGame is one collegiate schedule row. Canonical names are empty until
// the college resolver has run over the raw names.
type CollegiateGame struct {
	Week          int
	Kickoff       *time.Time
	HomeRaw       string
	AwayRaw       string
	HomeCanonical string
	AwayCanonical string
}

// WeekWindow is the half-open interval [Start, End) of one professional week.
// End is the Tuesday 10:00 UTC cutoff after the week's last game.
type WeekWindow struct {
	Season int       `json:"season"`
	Week   int       `json:"week"`
	Start  time.Time `json:"start_utc"`
	End    time.Time `json:"end_utc"`
}

func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// SeasonWeek identifies one professional week.
type SeasonWeek struct {
	Season int `json:"season"`
	Week   int `json:"week"`
}

func (sw SeasonWeek) Before(other SeasonWeek) bool {
	if sw.Season != other.Season {
		return sw.Season < other.Season
	}
	return sw.Week < other.Week
}

type AlignmentPolicy string

const (
	PolicyPerWeek AlignmentPolicy = "per_week"
	PolicyPerGame AlignmentPolicy = "per_game"
)

func ParseAlignmentPolicy(raw string) (AlignmentPolicy, bool) {
	switch AlignmentPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case PolicyPerWeek, "":
		return PolicyPerWeek, true
	case PolicyPerGame:
		return PolicyPerGame, true
	default:
		return "", false
	}
}

// AlignmentSource records which rule produced an alignment.
type AlignmentSource string

const (
	SourceKickoff     AlignmentSource = "kickoff"
	SourceOffsetTable AlignmentSource = "offset_table"
	SourceFallback    AlignmentSource = "fallback"
)

type WeekCount struct {
	SeasonWeek
	Games int `json:"games"`
}

// Alignment is the professional week chosen for a collegiate week plus how it was chosen.
type Alignment struct {
	SeasonWeek
	Policy    AlignmentPolicy `json:"policy"`
	Source    AlignmentSource `json:"source"`
	Reason    string          `json:"reason,omitempty"`
	RawWeek   int             `json:"raw_week,omitempty"`
	Histogram []WeekCount     `json:"histogram,omitempty"`
}
