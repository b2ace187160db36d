package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binsight/internal/model"
)

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name       string
		category   model.WasteCategory
		confidence float64
		streak     int
		want       int
	}{
		{
			name:       "hazardous with confidence and streak bonuses",
			category:   model.CategoryHazardous,
			confidence: 0.9,
			streak:     3,
			want:       45, // 25 base + 5 confidence + 15 streak
		},
		{
			name:       "organic with no bonuses",
			category:   model.CategoryOrganic,
			confidence: 0.5,
			streak:     0,
			want:       6,
		},
		{
			name:       "confidence bonus triggers exactly at threshold",
			category:   model.CategoryPaper,
			confidence: 0.85,
			streak:     0,
			want:       13,
		},
		{
			name:       "confidence just under threshold earns no bonus",
			category:   model.CategoryPaper,
			confidence: 0.8499,
			streak:     0,
			want:       8,
		},
		{
			name:       "streak bonus caps at seven days",
			category:   model.CategoryPlastic,
			confidence: 0.5,
			streak:     30,
			want:       45, // 10 base + 35 capped streak
		},
		{
			name:       "unknown category scores minimum base",
			category:   model.CategoryUnknown,
			confidence: 0.5,
			streak:     1,
			want:       8, // 3 base + 5 streak
		},
		{
			name:       "unrecognized category falls back to unknown base",
			category:   model.WasteCategory("styrofoam"),
			confidence: 0.99,
			streak:     0,
			want:       8, // 3 base + 5 confidence
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePoints(tt.category, tt.confidence, tt.streak)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasePointsCoversEveryCategory(t *testing.T) {
	for _, info := range model.AllCategories() {
		assert.Positive(t, BasePoints(info.Category), "category %s has no base points", info.Category)
	}
}
