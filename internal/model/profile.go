package model

import "time"

// UserProfile is the single local user's gamification state. TotalPoints and
// TotalReports only ever grow, and only through filing complaints; Streak
// counts consecutive calendar days with at least one report.
type UserProfile struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	TotalPoints    int        `json:"totalPoints"`
	TotalReports   int        `json:"totalReports"`
	Streak         int        `json:"streak"`
	LastReportDate *time.Time `json:"lastReportDate,omitempty"`
	JoinedAt       time.Time  `json:"joinedAt"`
}

// Stats summarizes the local installation's reporting history. Totals and
// streak come from the profile (authoritative); CategoryCounts is tallied
// from the complaint log.
type Stats struct {
	TotalReports   int                   `json:"totalReports"`
	TotalPoints    int                   `json:"totalPoints"`
	Streak         int                   `json:"streak"`
	CategoryCounts map[WasteCategory]int `json:"categoryCounts"`
}
