package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCategoriesStableOrder(t *testing.T) {
	infos := AllCategories()

	require.Len(t, infos, 9)
	assert.Equal(t, CategoryPlastic, infos[0].Category)
	assert.Equal(t, CategoryUnknown, infos[8].Category)

	for _, info := range infos {
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.DisposalTip)
		assert.NotEmpty(t, info.Color)
	}
}

func TestClassifiableCategoriesExcludeUnknown(t *testing.T) {
	categories := ClassifiableCategories()

	require.Len(t, categories, 8)
	assert.NotContains(t, categories, CategoryUnknown)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryEWaste, ParseCategory("e-waste"))
	assert.Equal(t, CategoryUnknown, ParseCategory("unknown"))
	assert.Equal(t, CategoryUnknown, ParseCategory("styrofoam"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
}

func TestInfoFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, CategoryUnknown.Info(), WasteCategory("nonsense").Info())
}

func TestComplaintJSONFieldNames(t *testing.T) {
	// The serialized field names are the storage contract; screens and
	// external tooling both read them.
	c := Complaint{ID: "c-1", WasteCategory: CategoryGlass, Status: StatusPending}
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"id", "imageUri", "wasteCategory", "confidence", "wasteLabel", "pointsAwarded", "status", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, key)
	}
}

func TestNewClassificationResultCombinesStaticInfo(t *testing.T) {
	result := NewClassificationResult(CategoryEWaste, 0.87, "Battery", "")

	info := CategoryEWaste.Info()
	assert.Equal(t, info.Description, result.Description, "empty description falls back to the template")
	assert.Equal(t, info.DisposalTip, result.DisposalTip)
	assert.Equal(t, info.Icon, result.Icon)
	assert.Equal(t, info.Color, result.Color)
	assert.Equal(t, info.Recyclable, result.Recyclable)
	assert.InDelta(t, 0.87, result.Confidence, 0.001)
}
