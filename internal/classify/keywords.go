// Package classify maps image annotations to waste categories, with a
// deterministic heuristic fallback for when the vision service is
// unavailable.
package classify

import (
	"strings"

	"binsight/internal/model"
)

// categoryKeywords is the fixed ordered keyword table. A label counts at
// most once per category: scanning stops at the first keyword hit.
// Matching is case-insensitive substring.
type categoryKeywords struct {
	category model.WasteCategory
	keywords []string
}

var keywordTable = []categoryKeywords{
	{
		category: model.CategoryPlastic,
		keywords: []string{
			"plastic", "bottle", "wrapper", "straw", "polythene", "polymer",
			"packaging", "styrofoam", "bag", "cup", "container", "lid",
		},
	},
	{
		category: model.CategoryPaper,
		keywords: []string{
			"paper", "cardboard", "carton", "newspaper", "magazine", "box",
			"book", "envelope", "tissue", "receipt",
		},
	},
	{
		category: model.CategoryGlass,
		keywords: []string{
			"glass", "jar", "mirror", "shard", "vase", "tumbler",
		},
	},
	{
		category: model.CategoryMetal,
		keywords: []string{
			"metal", "tin", "can", "aluminium", "aluminum", "foil", "steel",
			"iron", "scrap", "copper",
		},
	},
	{
		category: model.CategoryOrganic,
		keywords: []string{
			"food", "fruit", "vegetable", "banana", "apple", "peel", "leaf",
			"plant", "flower", "compost", "bread", "eggshell",
		},
	},
	{
		category: model.CategoryEWaste,
		keywords: []string{
			"battery", "circuit board", "electronic", "phone", "laptop",
			"computer", "cable", "charger", "television", "keyboard",
			"monitor", "gadget",
		},
	},
	{
		category: model.CategoryTextile,
		keywords: []string{
			"textile", "cloth", "fabric", "shirt", "jeans", "sweater",
			"shoe", "sock", "garment", "denim",
		},
	},
	{
		category: model.CategoryHazardous,
		keywords: []string{
			"chemical", "paint", "syringe", "needle", "medicine", "pesticide",
			"solvent", "asbestos", "motor oil", "bleach", "aerosol",
		},
	},
}

// matchLabels runs the label→category mapping over a merged annotation set.
// The winner is the category with the most keyword hits; ties break on the
// highest single label score. With no hits at all the result is unknown at
// confidence 0.50 with the first label carried through for context.
func matchLabels(labels []model.Label) model.ClassificationResult {
	type tally struct {
		bestLabel string
		bestScore float64
		matches   int
	}
	tallies := make(map[model.WasteCategory]*tally, len(keywordTable))

	for _, label := range labels {
		desc := strings.ToLower(label.Description)
		for _, ck := range keywordTable {
			for _, kw := range ck.keywords {
				if !strings.Contains(desc, kw) {
					continue
				}
				t := tallies[ck.category]
				if t == nil {
					t = &tally{}
					tallies[ck.category] = t
				}
				t.matches++
				if label.Score > t.bestScore {
					t.bestScore = label.Score
					t.bestLabel = label.Description
				}
				break
			}
		}
	}

	var (
		winner model.WasteCategory
		best   *tally
	)
	for _, ck := range keywordTable {
		t := tallies[ck.category]
		if t == nil {
			continue
		}
		if best == nil || t.matches > best.matches ||
			(t.matches == best.matches && t.bestScore > best.bestScore) {
			winner, best = ck.category, t
		}
	}

	if best == nil {
		firstLabel := ""
		if len(labels) > 0 {
			firstLabel = labels[0].Description
		}
		return model.NewClassificationResult(model.CategoryUnknown, unmatchedConfidence, firstLabel, "")
	}

	confidence := round2(clamp01(best.bestScore))
	description := "Detected: " + best.bestLabel + ". " + winner.Info().Description
	return model.NewClassificationResult(winner, confidence, best.bestLabel, description)
}

// unmatchedConfidence is reported when the service returned labels but none
// mapped to a category.
const unmatchedConfidence = 0.5
