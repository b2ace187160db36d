package classify

import (
	"math"

	"binsight/internal/model"
)

// stringHash mixes the image reference's character codes with the classic
// 31x left-shift hash, truncated to 32 bits so the same reference always
// produces the same value regardless of platform.
func stringHash(s string) int64 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	// Negate in 64 bits so math.MinInt32 cannot stay negative.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// heuristicClassify derives a category and confidence purely from the image
// reference string. Three pseudo-features come out of the hash: a hue that
// buckets onto the eight classifiable categories, plus brightness and
// saturation that shade the confidence. Content-independent but stable:
// the same reference always yields the same result.
func heuristicClassify(imageRef string) model.ClassificationResult {
	h := stringHash(imageRef)

	hue := float64(h % 360)
	brightness := float64((h / 360) % 100) / 100
	saturation := float64((h / 36000) % 100) / 100

	categories := model.ClassifiableCategories()
	idx := int(math.Floor(hue / 360 * float64(len(categories))))
	if idx >= len(categories) {
		idx = len(categories) - 1
	}
	category := categories[idx]

	confidence := 0.70 + saturation*0.2 + brightness*0.1
	confidence = round2(math.Min(0.95, math.Max(0.60, confidence)))

	info := category.Info()
	return model.NewClassificationResult(category, confidence, info.Label, "")
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
