// Package gamify computes the points and streaks awarded for filed reports.
package gamify

import "binsight/internal/model"

// Scoring constants. Changing these must never rewrite points already
// awarded to persisted complaints.
const (
	confidenceBonusThreshold = 0.85
	confidenceBonus          = 5
	streakBonusPerDay        = 5
	streakBonusCapDays       = 7
)

// basePoints is the per-category base award.
var basePoints = map[model.WasteCategory]int{
	model.CategoryPlastic:   10,
	model.CategoryPaper:     8,
	model.CategoryGlass:     12,
	model.CategoryMetal:     12,
	model.CategoryOrganic:   6,
	model.CategoryEWaste:    20,
	model.CategoryTextile:   10,
	model.CategoryHazardous: 25,
	model.CategoryUnknown:   3,
}

// BasePoints returns the base award for a category. Unrecognized categories
// score as unknown.
func BasePoints(category model.WasteCategory) int {
	if pts, ok := basePoints[category]; ok {
		return pts
	}
	return basePoints[model.CategoryUnknown]
}

// CalculatePoints computes the award for a new report: the category base,
// plus 5 for high-confidence classifications, plus 5 per streak day capped
// at 7 days.
func CalculatePoints(category model.WasteCategory, confidence float64, streak int) int {
	points := BasePoints(category)
	if confidence >= confidenceBonusThreshold {
		points += confidenceBonus
	}
	if streak > 0 {
		days := streak
		if days > streakBonusCapDays {
			days = streakBonusCapDays
		}
		points += streakBonusPerDay * days
	}
	return points
}
