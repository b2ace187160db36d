// Package location supplies the optional coordinate fix attached to a
// report. The actual GPS/geocoding work happens outside this core; this
// package defines the consumed interface plus formatting helpers.
package location

import (
	"context"
	"fmt"
	"strings"

	"binsight/internal/model"
)

// Provider yields the current location. A nil result with a nil error means
// location is unavailable (permission denied, no fix); reports are filed
// without coordinates in that case.
type Provider interface {
	Current(ctx context.Context) (*model.GeoLocation, error)
}

// Static is a Provider fixed at construction time, used when coordinates
// arrive out-of-band (CLI flags, EXIF extraction done elsewhere).
type Static struct {
	loc *model.GeoLocation
}

// NewStatic wraps a known location; pass nil for "unavailable".
func NewStatic(loc *model.GeoLocation) *Static {
	return &Static{loc: loc}
}

// Current returns the fixed location.
func (s *Static) Current(_ context.Context) (*model.GeoLocation, error) {
	return s.loc, nil
}

// FormatCoordinates renders a coordinate pair with fixed 6-decimal
// precision, the display contract for all screens.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// JoinAddress builds a display address from reverse-geocoded parts,
// skipping whatever is missing.
func JoinAddress(street, district, city, region string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{street, district, city, region} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
