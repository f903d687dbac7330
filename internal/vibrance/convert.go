// SPDX-License-Identifier: GPL-3.0-only

// Package vibrance converts between the human-facing digital vibrance
// percentage and the raw driver level.
//
// The driver exposes digital vibrance as a small integer range whose width
// varies by GPU generation. Users see the NVIDIA control panel scale
// instead, where 50% is always neutral and 100% is the maximum boost.
package vibrance

const (
	// NeutralPercent is the percentage that maps to raw level zero.
	NeutralPercent = 50

	// MaxPercent is the percentage that maps to the top of the raw range.
	MaxPercent = 100

	// FallbackMaxLevel is the raw range ceiling assumed when the driver
	// cannot report its own range.
	FallbackMaxLevel = 63
)

// Level describes the raw vibrance control range reported by the driver.
type Level struct {
	Current int
	Min     int
	Max     int
}

// PercentToRaw converts a percentage on the 50-100 scale to a raw driver
// level in [0, max]. Percentages at or below neutral map to zero.
func PercentToRaw(percent, max int) int {
	if percent <= NeutralPercent {
		return 0
	}
	if percent >= MaxPercent {
		return max
	}
	return (percent - NeutralPercent) * max / 50
}

// RawToPercent converts a raw driver level back to the 50-100 scale. A zero
// range reports neutral, which also covers drivers that refuse the query.
func RawToPercent(raw, max int) int {
	if max == 0 {
		return NeutralPercent
	}
	return NeutralPercent + raw*50/max
}

// ClampPercent limits a percentage to the supported 50-100 scale.
func ClampPercent(percent int) int {
	if percent < NeutralPercent {
		return NeutralPercent
	}
	if percent > MaxPercent {
		return MaxPercent
	}
	return percent
}
