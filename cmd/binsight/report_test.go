package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		flags    map[string]string
		wantNil  bool
		wantAcc  bool
		wantAddr string
	}{
		{
			name:    "no coordinates",
			flags:   map[string]string{},
			wantNil: true,
		},
		{
			name:    "latitude alone is not enough",
			flags:   map[string]string{"lat": "41.31"},
			wantNil: true,
		},
		{
			name:  "both coordinates",
			flags: map[string]string{"lat": "41.31", "lng": "69.24"},
		},
		{
			name:    "zero-zero is a valid coordinate when explicit",
			flags:   map[string]string{"lat": "0", "lng": "0"},
			wantNil: false,
		},
		{
			name:     "accuracy and address carried through",
			flags:    map[string]string{"lat": "41.31", "lng": "69.24", "accuracy": "8", "address": "12 Green St"},
			wantAcc:  true,
			wantAddr: "12 Green St",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := reportCmd()
			for flag, value := range tt.flags {
				require.NoError(t, cmd.Flags().Set(flag, value))
			}

			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			acc, _ := cmd.Flags().GetFloat64("accuracy")
			addr, _ := cmd.Flags().GetString("address")

			loc := locationFromFlags(cmd, lat, lng, acc, addr)

			if tt.wantNil {
				assert.Nil(t, loc)
				return
			}

			require.NotNil(t, loc)
			assert.Equal(t, lat, loc.Latitude)
			assert.Equal(t, lng, loc.Longitude)
			assert.Equal(t, tt.wantAddr, loc.Address)
			if tt.wantAcc {
				require.NotNil(t, loc.Accuracy)
				assert.Equal(t, acc, *loc.Accuracy)
			} else {
				assert.Nil(t, loc.Accuracy)
			}
		})
	}
}
