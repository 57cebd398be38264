package defense

import "strings"

// teamAliases collapses relocated or renamed franchise codes to current ones.
var teamAliases = map[string]string{
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LA",
	"LAR": "LA",
	"WSH": "WAS",
	"JAC": "JAX",
	"ARZ": "ARI",
	"BLT": "BAL",
	"CLV": "CLE",
	"HST": "HOU",
	"SL":  "LA",
}

// NormalizeTeam upper-cases an abbreviation and applies the alias table.
func NormalizeTeam(abbr string) string {
	code := strings.ToUpper(strings.TrimSpace(abbr))
	if alias, ok := teamAliases[code]; ok {
		return alias
	}
	return code
}
