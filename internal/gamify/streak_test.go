package gamify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	daysAgo := func(n int) *time.Time {
		d := now.AddDate(0, 0, -n)
		return &d
	}

	tests := []struct {
		name    string
		last    *time.Time
		current int
		want    int
	}{
		{name: "no prior report starts a streak", last: nil, current: 0, want: 1},
		{name: "same day leaves streak unchanged", last: daysAgo(0), current: 4, want: 4},
		{name: "yesterday extends streak", last: daysAgo(1), current: 4, want: 5},
		{name: "three day gap resets", last: daysAgo(3), current: 4, want: 1},
		{name: "two day gap resets", last: daysAgo(2), current: 9, want: 1},
		{name: "future-dated anomaly resets", last: daysAgo(-2), current: 6, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.last, tt.current, now))
		})
	}
}

func TestComputeStreakUsesCalendarDaysNotWindows(t *testing.T) {
	// 23:50 yesterday to 00:10 today is 20 minutes apart but crosses a
	// calendar day boundary, so it extends the streak.
	now := time.Date(2025, 6, 15, 0, 10, 0, 0, time.Local)
	last := time.Date(2025, 6, 14, 23, 50, 0, 0, time.Local)
	assert.Equal(t, 3, ComputeStreak(&last, 2, now))

	// 00:10 to 23:50 the same day is over 23 hours apart but the same
	// calendar day, so the streak is unchanged.
	now = time.Date(2025, 6, 15, 23, 50, 0, 0, time.Local)
	last = time.Date(2025, 6, 15, 0, 10, 0, 0, time.Local)
	assert.Equal(t, 2, ComputeStreak(&last, 2, now))
}
