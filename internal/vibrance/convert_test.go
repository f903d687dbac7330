package vibrance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

func TestPercentToRaw(t *testing.T) {
	tests := []struct {
		name     string
		percent  int
		max      int
		expected int
	}{
		{
			name:     "neutral percent maps to zero",
			percent:  50,
			max:      63,
			expected: 0,
		},
		{
			name:     "max percent maps to range ceiling",
			percent:  100,
			max:      63,
			expected: 63,
		},
		{
			name:     "below neutral clamps to zero",
			percent:  10,
			max:      63,
			expected: 0,
		},
		{
			name:     "above max clamps to range ceiling",
			percent:  150,
			max:      63,
			expected: 63,
		},
		{
			name:     "eighty percent on the common range",
			percent:  80,
			max:      63,
			expected: 37,
		},
		{
			name:     "mid scale on a wide range",
			percent:  75,
			max:      100,
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vibrance.PercentToRaw(tt.percent, tt.max))
		})
	}
}

func TestRawToPercent(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		max      int
		expected int
	}{
		{
			name:     "zero raw is neutral",
			raw:      0,
			max:      63,
			expected: 50,
		},
		{
			name:     "full raw is max percent",
			raw:      63,
			max:      63,
			expected: 100,
		},
		{
			name:     "zero range falls back to neutral",
			raw:      25,
			max:      0,
			expected: 50,
		},
		{
			name:     "mid raw on a wide range",
			raw:      50,
			max:      100,
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vibrance.RawToPercent(tt.raw, tt.max))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Converting percent -> raw -> percent loses at most one point to
	// integer truncation on the common 0-63 range.
	for percent := 50; percent <= 100; percent += 10 {
		raw := vibrance.PercentToRaw(percent, vibrance.FallbackMaxLevel)
		result := vibrance.RawToPercent(raw, vibrance.FallbackMaxLevel)
		assert.InDelta(t, percent, result, 1, "round-trip drifted for %d%%", percent)
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 50, vibrance.ClampPercent(0))
	assert.Equal(t, 50, vibrance.ClampPercent(50))
	assert.Equal(t, 80, vibrance.ClampPercent(80))
	assert.Equal(t, 100, vibrance.ClampPercent(100))
	assert.Equal(t, 100, vibrance.ClampPercent(140))
}
