package gamify

import "time"

// localDate truncates t to its local calendar day.
func localDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeStreak returns the streak value a report filed at now should carry.
// Days are local calendar days, not 24h windows: a second report on the same
// day leaves the streak unchanged, a report on the day after the last one
// extends it, and anything else (a gap of two or more days, or a
// future-dated anomaly) starts over at 1.
func ComputeStreak(lastReport *time.Time, current int, now time.Time) int {
	if lastReport == nil {
		return 1
	}

	today := localDate(now)
	last := localDate(*lastReport)

	switch {
	case last.Equal(today):
		return current
	case last.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}
