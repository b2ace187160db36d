package model

// Label is a single (description, score) pair returned by the annotation
// service. Label detection and object localization results are merged into
// one set before classification.
type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// ClassificationResult is the outcome of classifying one image. It combines
// the winning category's immutable reference data with the runtime-only
// confidence and best-label text. Produced fresh per call; never persisted
// as-is.
type ClassificationResult struct {
	Category    WasteCategory `json:"category"`
	Confidence  float64       `json:"confidence"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	DisposalTip string        `json:"disposalTip"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Recyclable  bool          `json:"recyclable"`
}

// NewClassificationResult builds a result from a category's static info plus
// the runtime confidence and detected label. Combining here rather than at
// call sites keeps the static fields from being accidentally omitted.
func NewClassificationResult(category WasteCategory, confidence float64, label, description string) ClassificationResult {
	info := category.Info()
	if description == "" {
		description = info.Description
	}
	return ClassificationResult{
		Category:    category,
		Confidence:  confidence,
		Label:       label,
		Description: description,
		DisposalTip: info.DisposalTip,
		Icon:        info.Icon,
		Color:       info.Color,
		Recyclable:  info.Recyclable,
	}
}
