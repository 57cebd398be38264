package schedule

import (
	"fmt"
	"sort"
	"time"
)

const DefaultCFBWeekOffset = 2

// OffsetTable maps a collegiate week to a professional week when kickoffs cannot decide.
// The offsets are empirical; Overrides pins individual collegiate weeks.
type OffsetTable struct {
	Offset    int
	Overrides map[int]int
}

func DefaultOffsetTable() OffsetTable {
	return OffsetTable{Offset: DefaultCFBWeekOffset}
}

func (t OffsetTable) Lookup(cfbWeek int) int {
	if week, ok := t.Overrides[cfbWeek]; ok {
		return ClampWeek(week)
	}
	return ClampWeek(cfbWeek + t.Offset)
}

// Aligner maps collegiate weeks and kickoffs onto professional weeks. It performs no I/O.
type Aligner struct {
	policy  AlignmentPolicy
	offsets OffsetTable
}

func NewAligner(policy AlignmentPolicy, offsets OffsetTable) Aligner {
	if policy == "" {
		policy = PolicyPerWeek
	}
	return Aligner{policy: policy, offsets: offsets}
}

func (a Aligner) Policy() AlignmentPolicy {
	return a.policy
}

// BuildWeekWindows derives contiguous windows from a professional schedule. Only
// regular-season games count; a week's window ends at the cutoff after its last
// kickoff. Weeks with no usable kickoff are filled at a one-week stride.
func BuildWeekWindows(games []ScheduleGame) []WeekWindow {
	lastKickoff := make(map[SeasonWeek]time.Time)
	maxWeek := make(map[int]int)
	for _, game := range games {
		if NormalizeGameType(game.GameType) != GameTypeRegular {
			continue
		}
		if game.Week < 1 || game.Week > FinalWeek || game.Kickoff.IsZero() {
			continue
		}
		key := SeasonWeek{Season: game.Season, Week: game.Week}
		if current, ok := lastKickoff[key]; !ok || game.Kickoff.After(current) {
			lastKickoff[key] = game.Kickoff.UTC()
		}
		if game.Week > maxWeek[game.Season] {
			maxWeek[game.Season] = game.Week
		}
	}

	seasons := make([]int, 0, len(maxWeek))
	for season := range maxWeek {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	out := make([]WeekWindow, 0, len(lastKickoff))
	for _, season := range seasons {
		var prevEnd time.Time
		for week := 1; week <= maxWeek[season]; week++ {
			var end time.Time
			if kickoff, ok := lastKickoff[SeasonWeek{Season: season, Week: week}]; ok {
				end = NextCutoff(kickoff)
			}
			switch {
			case end.IsZero() && prevEnd.IsZero():
				end = Window(season, week).End
			case end.IsZero() || (!prevEnd.IsZero() && !end.After(prevEnd)):
				end = prevEnd.Add(weekDuration)
			}

			start := prevEnd
			if start.IsZero() {
				start = end.Add(-weekDuration)
			}
			out = append(out, WeekWindow{Season: season, Week: week, Start: start, End: end})
			prevEnd = end
		}
	}

	return out
}

// MapKickoffToWeek applies the cutoff rule: a kickoff maps to the latest week whose
// stats were final (window end at or before the kickoff). Kickoffs before any week
// has completed map to the fallback season's final week.
func (a Aligner) MapKickoffToWeek(kickoff time.Time, windows []WeekWindow, fallbackSeason int) Alignment {
	if len(windows) == 0 {
		return Alignment{
			SeasonWeek: SeasonWeek{Season: fallbackSeason, Week: 1},
			Policy:     a.policy,
			Source:     SourceFallback,
			Reason:     "no schedule windows",
		}
	}

	idx := lastCompletedIndex(windows, kickoff)
	if idx < 0 {
		return Alignment{
			SeasonWeek: SeasonWeek{Season: fallbackSeason, Week: FinalWeek},
			Policy:     a.policy,
			Source:     SourceKickoff,
			Reason:     "kickoff before first week cutoff",
		}
	}

	w := windows[idx]
	return Alignment{
		SeasonWeek: SeasonWeek{Season: w.Season, Week: w.Week},
		Policy:     a.policy,
		Source:     SourceKickoff,
	}
}

// MapCFBWeekToWeek picks one professional week for a collegiate week using the
// aligner's policy. windows must be ordered as BuildWeekWindows returns them.
// Under the per-week policy the latest kickoff decides; when it lands within the
// preseason depth before a season's first cutoff, the offset table decides instead.
func (a Aligner) MapCFBWeekToWeek(games []CollegiateGame, windows []WeekWindow, cfbWeek, fallbackSeason int) Alignment {
	if len(windows) == 0 {
		return Alignment{
			SeasonWeek: SeasonWeek{Season: fallbackSeason, Week: 1},
			Policy:     a.policy,
			Source:     SourceFallback,
			Reason:     "no schedule windows",
		}
	}

	kickoffs := make([]time.Time, 0, len(games))
	for _, game := range games {
		if game.Week != cfbWeek || game.Kickoff == nil || game.Kickoff.IsZero() {
			continue
		}
		kickoffs = append(kickoffs, game.Kickoff.UTC())
	}
	if len(kickoffs) == 0 {
		return a.fromOffsetTable(windows, cfbWeek, "no kickoff timestamps for collegiate week")
	}

	if a.policy == PolicyPerGame {
		return a.perGame(kickoffs, windows, cfbWeek, fallbackSeason)
	}

	latest := kickoffs[0]
	for _, kickoff := range kickoffs[1:] {
		if kickoff.After(latest) {
			latest = kickoff
		}
	}

	if season, rawWeek, ok := preseasonOffset(windows, latest); ok {
		return Alignment{
			SeasonWeek: SeasonWeek{Season: season, Week: a.offsets.Lookup(cfbWeek)},
			Policy:     a.policy,
			Source:     SourceOffsetTable,
			Reason:     "latest kickoff in preseason",
			RawWeek:    rawWeek,
		}
	}

	return a.MapKickoffToWeek(latest, windows, fallbackSeason)
}

func (a Aligner) perGame(kickoffs []time.Time, windows []WeekWindow, cfbWeek, fallbackSeason int) Alignment {
	counts := make(map[SeasonWeek]int, 4)
	for _, kickoff := range kickoffs {
		resolved := a.MapKickoffToWeek(kickoff, windows, fallbackSeason)
		counts[resolved.SeasonWeek]++
	}

	histogram := make([]WeekCount, 0, len(counts))
	for sw, n := range counts {
		histogram = append(histogram, WeekCount{SeasonWeek: sw, Games: n})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].SeasonWeek.Before(histogram[j].SeasonWeek)
	})

	// Most games wins; equal counts resolve to the later week.
	dominant := histogram[0]
	for _, item := range histogram[1:] {
		if item.Games >= dominant.Games {
			dominant = item
		}
	}

	return Alignment{
		SeasonWeek: dominant.SeasonWeek,
		Policy:     PolicyPerGame,
		Source:     SourceKickoff,
		Reason:     fmt.Sprintf("dominant week across %d games in collegiate week %d", len(kickoffs), cfbWeek),
		Histogram:  histogram,
	}
}

// fromOffsetTable uses the latest season present in windows.
func (a Aligner) fromOffsetTable(windows []WeekWindow, cfbWeek int, reason string) Alignment {
	season := windows[len(windows)-1].Season
	return Alignment{
		SeasonWeek: SeasonWeek{Season: season, Week: a.offsets.Lookup(cfbWeek)},
		Policy:     a.policy,
		Source:     SourceOffsetTable,
		Reason:     reason,
	}
}

// preseasonOffset reports whether t falls within the preseason depth of the next
// season's week-1 cutoff, and the negative raw week offset if so.
func preseasonOffset(windows []WeekWindow, t time.Time) (int, int, bool) {
	next := nextSeasonOpener(windows, t)
	if next < 0 {
		return 0, 0, false
	}
	opener := windows[next]
	rawWeek := weeksBetween(t, opener.End)
	if rawWeek >= 0 || -rawWeek > PreseasonDepth(opener.Season) {
		return 0, 0, false
	}
	return opener.Season, rawWeek, true
}

// nextSeasonOpener is the index of the first week-1 window whose cutoff is after t.
func nextSeasonOpener(windows []WeekWindow, t time.Time) int {
	for i, w := range windows {
		if w.Week == 1 && w.End.After(t) {
			return i
		}
	}
	return -1
}

func lastCompletedIndex(windows []WeekWindow, t time.Time) int {
	idx := -1
	for i, w := range windows {
		if w.End.After(t) {
			break
		}
		idx = i
	}
	return idx
}
