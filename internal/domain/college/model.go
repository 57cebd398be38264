package college

import "strings"

// Identity is a canonical college display name or Unknown.
type Identity string

// Unknown is returned when no stage of the resolver can place a player.
const Unknown Identity = "Unknown"

func (i Identity) String() string { return string(i) }

func (i Identity) IsUnknown() bool { return i == "" || i == Unknown }

// Match records which stage produced a resolution.
type Match string

const (
	MatchCatalog    Match = "catalog"
	MatchPlayerID   Match = "player_id"
	MatchPlayerName Match = "player_name"
	MatchNone       Match = "none"
)

// Player identifies the athlete behind a raw college string so the resolver
// can fall back to the override tables.
type Player struct {
	ID   string
	Name string
}

type Resolution struct {
	Identity Identity
	Match    Match
}

var placeholders = map[string]struct{}{
	"":           {},
	"-":          {},
	"--":         {},
	"unknown":    {},
	"n/a":        {},
	"na":         {},
	"none":       {},
	"null":       {},
	"no college": {},
}

// IsPlaceholder reports whether raw carries no college information.
func IsPlaceholder(raw string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
