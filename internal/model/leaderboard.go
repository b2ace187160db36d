package model

// LeaderboardEntry is a derived ranking record; never persisted. Rank is
// 1-based and dense, assigned by descending TotalPoints.
type LeaderboardEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"totalPoints"`
	TotalReports  int    `json:"totalReports"`
	Rank          int    `json:"rank"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}
