// SPDX-License-Identifier: GPL-3.0-only

// Package ramp builds and compares the 16-bit gamma lookup tables a display
// pipeline applies per color channel.
package ramp

import "math"

const (
	// Samples is the number of entries per channel in a gamma table.
	Samples = 256

	// MaxSample is the largest value a gamma table entry can hold.
	MaxSample = 65535

	// DefaultTolerance is the per-sample tolerance used when comparing a
	// table read back from a display against a freshly built one. Drivers
	// round the values they store, so an exact comparison would flap.
	DefaultTolerance = 256
)

// Channel indices into a Table.
const (
	Red = iota
	Green
	Blue
)

// Adjustment describes one desired display look.
type Adjustment struct {
	// Brightness in [0,1]; 0.5 is neutral.
	Brightness float64

	// Contrast in [0,1]; 0.5 is neutral.
	Contrast float64

	// Gamma is the gamma exponent. Must be > 0; 1.0 is neutral.
	Gamma float64

	// Temperature shifts the color balance from cool (-100) to warm (+100).
	Temperature int
}

// Neutral returns the adjustment that produces the identity ramp.
func Neutral() Adjustment {
	return Adjustment{Brightness: 0.5, Contrast: 0.5, Gamma: 1.0}
}

// Table holds one 256-entry lookup curve per color channel, in the order
// red, green, blue. Index 0 is the darkest input, 255 the brightest. The
// memory layout matches the WORD[3][256] array GDI expects.
type Table [3][Samples]uint16

// Build derives a gamma table from an adjustment. For each input sample the
// value is normalized to [0,1], raised to 1/gamma, scaled around the
// midpoint by contrast, offset by brightness, clamped, tinted per channel
// by the temperature factors and finally scaled to 16 bits with
// round-half-up. The result is deterministic for identical inputs.
func Build(adj Adjustment) Table {
	// Warm temperatures boost red and slightly green while cutting blue;
	// cool temperatures do the opposite.
	t := float64(adj.Temperature) / 100.0
	redAdj := 1.0 + t*0.1
	greenAdj := 1.0 + t*0.02
	blueAdj := 1.0 - t*0.1

	var table Table
	for i := 0; i < Samples; i++ {
		v := float64(i) / 255.0

		if adj.Gamma != 1.0 {
			v = math.Pow(v, 1.0/adj.Gamma)
		}

		v = (v-0.5)*(adj.Contrast*2.0) + 0.5 + (adj.Brightness - 0.5)

		if v < 0.0 {
			v = 0.0
		}
		if v > 1.0 {
			v = 1.0
		}

		r := v * redAdj
		g := v * greenAdj
		b := v * blueAdj

		// v is non-negative, so only the upper bound needs clamping.
		if r > 1.0 {
			r = 1.0
		}
		if g > 1.0 {
			g = 1.0
		}
		if b > 1.0 {
			b = 1.0
		}

		table[Red][i] = uint16(r*65535.0 + 0.5)
		table[Green][i] = uint16(g*65535.0 + 0.5)
		table[Blue][i] = uint16(b*65535.0 + 0.5)
	}
	return table
}

// NearlyEqual reports whether every sample of t is within tolerance of the
// corresponding sample of other.
func (t *Table) NearlyEqual(other *Table, tolerance int) bool {
	for c := 0; c < 3; c++ {
		for i := 0; i < Samples; i++ {
			d := int(t[c][i]) - int(other[c][i])
			if d < 0 {
				d = -d
			}
			if d > tolerance {
				return false
			}
		}
	}
	return true
}

// IsNeutral reports whether t matches the table built from Neutral() within
// DefaultTolerance.
func (t *Table) IsNeutral() bool {
	neutral := Build(Neutral())
	return t.NearlyEqual(&neutral, DefaultTolerance)
}
