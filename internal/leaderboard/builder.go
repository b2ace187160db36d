// Package leaderboard ranks the local profile against the sample roster.
package leaderboard

import (
	"sort"

	"binsight/internal/model"
)

// syntheticPeers is the fixed placeholder roster shown until a networked
// leaderboard exists. Points and report counts never change.
var syntheticPeers = []model.LeaderboardEntry{
	{ID: "peer-01", Name: "Aziza K.", TotalPoints: 1240, TotalReports: 58},
	{ID: "peer-02", Name: "Marcus T.", TotalPoints: 1105, TotalReports: 47},
	{ID: "peer-03", Name: "Lin W.", TotalPoints: 965, TotalReports: 51},
	{ID: "peer-04", Name: "Sofia R.", TotalPoints: 830, TotalReports: 39},
	{ID: "peer-05", Name: "Jamal B.", TotalPoints: 720, TotalReports: 33},
	{ID: "peer-06", Name: "Elena P.", TotalPoints: 540, TotalReports: 26},
	{ID: "peer-07", Name: "Tom H.", TotalPoints: 395, TotalReports: 21},
	{ID: "peer-08", Name: "Nargiza S.", TotalPoints: 210, TotalReports: 12},
	{ID: "peer-09", Name: "Diego M.", TotalPoints: 85, TotalReports: 6},
}

// Build merges the local profile into the roster and assigns dense 1-based
// ranks by descending total points. The sort is stable; equal scores keep
// their pre-sort order (roster first, local profile last), which is
// implementation-defined rather than a product contract.
func Build(profile *model.UserProfile) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(syntheticPeers)+1)
	entries = append(entries, syntheticPeers...)
	entries = append(entries, model.LeaderboardEntry{
		ID:            profile.ID,
		Name:          profile.Name,
		TotalPoints:   profile.TotalPoints,
		TotalReports:  profile.TotalReports,
		IsCurrentUser: true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
