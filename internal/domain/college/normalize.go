package college

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	parenthetical = regexp.MustCompile(`\(([^()]*)\)`)
	stopWords     = map[string]struct{}{"university": {}, "the": {}, "of": {}, "at": {}}
	nameSuffixes  = map[string]struct{}{"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {}}
)

// foldDiacritics lower-cases s and strips combining marks ("Hawaiʻi" and
// "Hawaii" fold together). A transform.Chain is stateful, so one is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Normalize reduces a free-text college name to its lookup key.
//
// Parentheticals holding a comma or more than one word ("(Ann Arbor, MI)") are
// dropped, "(NCAA)" is dropped, and single-word qualifiers ("(FL)") are kept as
// plain tokens so "Miami (FL)" and "Miami (OH)" stay distinct.
func Normalize(raw string) string {
	return normalize(raw, true)
}

// NormalizeUnqualified is Normalize with every parenthetical dropped, so
// "Ohio State (Columbus)" and "Ohio State" share a key.
func NormalizeUnqualified(raw string) string {
	return normalize(raw, false)
}

func normalize(raw string, keepQualifier bool) string {
	s := foldDiacritics(strings.TrimSpace(raw))
	s = parenthetical.ReplaceAllStringFunc(s, func(group string) string {
		inner := strings.TrimSpace(group[1 : len(group)-1])
		if !keepQualifier || inner == "" || inner == "ncaa" || strings.Contains(inner, ",") {
			return " "
		}
		if len(strings.Fields(inner)) > 1 {
			return " "
		}
		return " " + inner + " "
	})
	return joinTokens(s, stopWords)
}

// NormalizePlayerName folds a player name for the by-name override table.
func NormalizePlayerName(name string) string {
	return joinTokens(foldDiacritics(strings.TrimSpace(name)), nameSuffixes)
}

func joinTokens(s string, drop map[string]struct{}) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\'' || r == '’' || r == 'ʻ' || r == '.':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, f := range fields {
		if _, skip := drop[f]; skip {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
