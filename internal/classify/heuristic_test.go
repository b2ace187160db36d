package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binsight/internal/model"
)

func TestHeuristicClassifyIsDeterministic(t *testing.T) {
	refs := []string{
		"file:///tmp/waste-001.jpg",
		"content://media/external/images/4217",
		"a",
		"",
	}

	for _, ref := range refs {
		first := heuristicClassify(ref)
		second := heuristicClassify(ref)
		assert.Equal(t, first, second, "ref %q not deterministic", ref)
	}
}

func TestHeuristicClassifyBounds(t *testing.T) {
	refs := []string{
		"file:///tmp/a.jpg", "file:///tmp/b.jpg", "file:///tmp/c.jpg",
		"photo-2025-06-01.png", "photo-2025-06-02.png", "x", "yz",
		"a very long image reference with spaces and unicode ☺",
	}

	for _, ref := range refs {
		result := heuristicClassify(ref)

		assert.True(t, result.Category.Valid())
		assert.NotEqual(t, model.CategoryUnknown, result.Category,
			"heuristic must pick a concrete category for %q", ref)
		assert.GreaterOrEqual(t, result.Confidence, 0.60)
		assert.LessOrEqual(t, result.Confidence, 0.95)
		assert.NotEmpty(t, result.DisposalTip)
	}
}

func TestStringHashStable(t *testing.T) {
	assert.Equal(t, stringHash("bin"), stringHash("bin"))
	assert.NotEqual(t, stringHash("bin"), stringHash("nib"))
	assert.GreaterOrEqual(t, stringHash("anything at all"), int64(0))
}
