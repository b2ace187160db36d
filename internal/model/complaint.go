package model

import "time"

// ComplaintStatus tracks a complaint through its lifecycle. Complaints are
// created pending; later transitions come from an external moderation
// process.
type ComplaintStatus string

// Complaint status constants.
const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// ValidStatus reports whether s is a known complaint status.
func ValidStatus(s ComplaintStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// GeoLocation is an optional coordinate fix attached to a complaint.
// Immutable once captured.
type GeoLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Address   string   `json:"address,omitempty"`
}

// Complaint is the durable record of a citizen report. PointsAwarded is
// fixed at creation time and never recomputed, even if the scoring table
// changes later.
type Complaint struct {
	ID            string          `json:"id"`
	ImageURI      string          `json:"imageUri"`
	WasteCategory WasteCategory   `json:"wasteCategory"`
	Confidence    float64         `json:"confidence"`
	WasteLabel    string          `json:"wasteLabel"`
	Description   string          `json:"description"`
	Location      *GeoLocation    `json:"location,omitempty"`
	PointsAwarded int             `json:"pointsAwarded"`
	Status        ComplaintStatus `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
