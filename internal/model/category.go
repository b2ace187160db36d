// Package model defines the core domain models used throughout the application.
package model

// WasteCategory identifies one of the fixed waste categories a report can be
// classified into.
type WasteCategory string

// Waste category constants. The set is closed; CategoryUnknown is the
// universal fallback and always valid.
const (
	CategoryPlastic   WasteCategory = "plastic"
	CategoryPaper     WasteCategory = "paper"
	CategoryGlass     WasteCategory = "glass"
	CategoryMetal     WasteCategory = "metal"
	CategoryOrganic   WasteCategory = "organic"
	CategoryEWaste    WasteCategory = "e-waste"
	CategoryTextile   WasteCategory = "textile"
	CategoryHazardous WasteCategory = "hazardous"
	CategoryUnknown   WasteCategory = "unknown"
)

// CategoryInfo holds the immutable reference data attached to a category.
type CategoryInfo struct {
	Category    WasteCategory `json:"category"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	DisposalTip string        `json:"disposalTip"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Recyclable  bool          `json:"recyclable"`
}

// categoryOrder is the fixed ordering used for listings and for the
// heuristic hue bucketing. CategoryUnknown is deliberately last.
var categoryOrder = []WasteCategory{
	CategoryPlastic,
	CategoryPaper,
	CategoryGlass,
	CategoryMetal,
	CategoryOrganic,
	CategoryEWaste,
	CategoryTextile,
	CategoryHazardous,
	CategoryUnknown,
}

var categoryInfo = map[WasteCategory]CategoryInfo{
	CategoryPlastic: {
		Category:    CategoryPlastic,
		Label:       "Plastic",
		Description: "Plastic waste such as bottles, bags, and packaging.",
		DisposalTip: "Rinse and place in the plastic recycling bin. Remove caps and labels where possible.",
		Icon:        "🧴",
		Color:       "#2196F3",
		Recyclable:  true,
	},
	CategoryPaper: {
		Category:    CategoryPaper,
		Label:       "Paper",
		Description: "Paper and cardboard waste such as boxes, newspapers, and cartons.",
		DisposalTip: "Keep dry and flatten boxes before placing in the paper recycling bin.",
		Icon:        "📦",
		Color:       "#795548",
		Recyclable:  true,
	},
	CategoryGlass: {
		Category:    CategoryGlass,
		Label:       "Glass",
		Description: "Glass waste such as bottles and jars.",
		DisposalTip: "Rinse and place in the glass container. Do not mix with ceramics or window glass.",
		Icon:        "🫙",
		Color:       "#4CAF50",
		Recyclable:  true,
	},
	CategoryMetal: {
		Category:    CategoryMetal,
		Label:       "Metal",
		Description: "Metal waste such as cans, foil, and scrap.",
		DisposalTip: "Rinse cans and place in the metal recycling bin. Large scrap goes to a collection point.",
		Icon:        "🥫",
		Color:       "#9E9E9E",
		Recyclable:  true,
	},
	CategoryOrganic: {
		Category:    CategoryOrganic,
		Label:       "Organic",
		Description: "Organic waste such as food scraps and garden trimmings.",
		DisposalTip: "Compost at home or use the organic waste bin. Keep free of packaging.",
		Icon:        "🍂",
		Color:       "#8BC34A",
		Recyclable:  false,
	},
	CategoryEWaste: {
		Category:    CategoryEWaste,
		Label:       "E-Waste",
		Description: "Electronic waste such as batteries, cables, and discarded devices.",
		DisposalTip: "Never put in household bins. Drop off at an e-waste collection point.",
		Icon:        "🔋",
		Color:       "#FF9800",
		Recyclable:  true,
	},
	CategoryTextile: {
		Category:    CategoryTextile,
		Label:       "Textile",
		Description: "Textile waste such as clothing, shoes, and fabric.",
		DisposalTip: "Donate wearable items; place the rest in a textile collection container.",
		Icon:        "👕",
		Color:       "#9C27B0",
		Recyclable:  true,
	},
	CategoryHazardous: {
		Category:    CategoryHazardous,
		Label:       "Hazardous",
		Description: "Hazardous waste such as chemicals, paint, and medical waste.",
		DisposalTip: "Handle with care and bring to a hazardous waste facility. Never pour down drains.",
		Icon:        "☣️",
		Color:       "#F44336",
		Recyclable:  false,
	},
	CategoryUnknown: {
		Category:    CategoryUnknown,
		Label:       "Unknown",
		Description: "Waste that could not be identified.",
		DisposalTip: "When in doubt, use the general waste bin or ask your local collection service.",
		Icon:        "❓",
		Color:       "#607D8B",
		Recyclable:  false,
	},
}

// AllCategories returns every category's reference data in fixed order.
func AllCategories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		infos = append(infos, categoryInfo[c])
	}
	return infos
}

// ClassifiableCategories returns the categories the heuristic fallback may
// select, in fixed order. Excludes CategoryUnknown.
func ClassifiableCategories() []WasteCategory {
	return categoryOrder[:len(categoryOrder)-1]
}

// Info returns the immutable reference data for the category. Unrecognized
// values fall back to the unknown category's info.
func (c WasteCategory) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryUnknown]
}

// Valid reports whether the value is one of the nine known categories.
func (c WasteCategory) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// ParseCategory maps free text to a category, falling back to unknown.
func ParseCategory(s string) WasteCategory {
	c := WasteCategory(s)
	if c.Valid() {
		return c
	}
	return CategoryUnknown
}
