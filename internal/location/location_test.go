package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binsight/internal/model"
)

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "41.311081, 69.240562", FormatCoordinates(41.311081, 69.240562))
	assert.Equal(t, "-33.865143, 151.209900", FormatCoordinates(-33.865143, 151.2099))
	assert.Equal(t, "0.000000, 0.000000", FormatCoordinates(0, 0))
}

func TestJoinAddress(t *testing.T) {
	tests := []struct {
		name                           string
		street, district, city, region string
		want                           string
	}{
		{"all parts", "12 Green St", "Northside", "Springfield", "IL", "12 Green St, Northside, Springfield, IL"},
		{"missing middle parts", "12 Green St", "", "Springfield", "", "12 Green St, Springfield"},
		{"whitespace-only parts dropped", " ", "", "Springfield", "IL", "Springfield, IL"},
		{"nothing known", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinAddress(tt.street, tt.district, tt.city, tt.region))
		})
	}
}

func TestStaticProvider(t *testing.T) {
	acc := 12.5
	loc := &model.GeoLocation{Latitude: 41.3, Longitude: 69.2, Accuracy: &acc, Address: "Springfield"}

	got, err := NewStatic(loc).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loc, got)

	missing, err := NewStatic(nil).Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
