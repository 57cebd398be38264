package schedule

import (
	"math"
	"time"
)

const (
	weekDuration = 7 * 24 * time.Hour
	cutoffHour   = 10
)

// FinalWeek bounds every week number the calendar hands out, in every season.
const FinalWeek = 18

// LastRegularWeek is the last week a season actually scheduled games in.
// Seasons before 2021 ended after week 17; their week-18 window exists but is empty.
func LastRegularWeek(season int) int {
	if season >= 2021 {
		return FinalWeek
	}
	return FinalWeek - 1
}

// PreseasonDepth bounds how many weeks before week 1 a kickoff can still count as preseason.
func PreseasonDepth(season int) int {
	if season >= 2021 {
		return 3
	}
	return 4
}

// SeasonAnchor is week 1's cutoff: the first Monday of September plus 8 days, 10:00 UTC.
func SeasonAnchor(season int) time.Time {
	first := time.Date(season, time.September, 1, cutoffHour, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+8)
}

// ClampWeek pins week into [1, FinalWeek].
func ClampWeek(week int) int {
	if week < 1 {
		return 1
	}
	if week > FinalWeek {
		return FinalWeek
	}
	return week
}

// ClampWeekFloat accepts an untrusted numeric week. NaN falls back to week 1.
func ClampWeekFloat(week float64) int {
	switch {
	case math.IsNaN(week), math.IsInf(week, -1):
		return 1
	case math.IsInf(week, 1):
		return FinalWeek
	}
	if week > FinalWeek {
		return FinalWeek
	}
	return ClampWeek(int(math.Floor(week)))
}

// Window returns the computed window of a regular-season week.
func Window(season, week int) WeekWindow {
	week = ClampWeek(week)
	end := SeasonAnchor(season).Add(time.Duration(week-1) * weekDuration)
	return WeekWindow{
		Season: season,
		Week:   week,
		Start:  end.Add(-weekDuration),
		End:    end,
	}
}

// Windows returns every regular-season window of a season in order.
func Windows(season int) []WeekWindow {
	out := make([]WeekWindow, 0, FinalWeek)
	for week := 1; week <= FinalWeek; week++ {
		out = append(out, Window(season, week))
	}
	return out
}

// LastCompletedWeek is the latest week whose cutoff is at or before now.
func LastCompletedWeek(now time.Time) SeasonWeek {
	now = now.UTC()
	season := now.Year()
	anchor := SeasonAnchor(season)
	if now.Before(anchor) {
		return SeasonWeek{Season: season - 1, Week: FinalWeek}
	}

	elapsed := int(now.Sub(anchor)/weekDuration) + 1
	return SeasonWeek{Season: season, Week: ClampWeek(elapsed)}
}

// NextCutoff is the first Tuesday 10:00 UTC strictly after t.
func NextCutoff(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), cutoffHour, 0, 0, 0, time.UTC)
	offset := (int(time.Tuesday) - int(day.Weekday()) + 7) % 7
	cutoff := day.AddDate(0, 0, offset)
	if !cutoff.After(t) {
		cutoff = cutoff.AddDate(0, 0, 7)
	}
	return cutoff
}

// weeksBetween is floor((t - ref) / week).
func weeksBetween(t, ref time.Time) int {
	return int(math.Floor(float64(t.Sub(ref)) / float64(weekDuration)))
}
