// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"fmt"
	"sort"
)

// Limits enforced by NewDisk and SetSecondaryTemperature.
const (
	MinCanvas      = 10
	MinTemperature = -11
	MaxTemperature = 36

	// SegmentCount is the number of wedges per ring.
	SegmentCount = 12
)

// LabelLayout holds the linear coefficients for the temperature label.
// Font size and baseline are computed as slope*canvas + intercept,
// rounded half up and truncated toward zero.
type LabelLayout struct {
	FontSlope     float64
	FontIntercept float64
	YSlope        float64
	YIntercept    float64
}

// DefaultLabelLayout returns the label coefficients tuned for a 400 px canvas.
func DefaultLabelLayout() LabelLayout {
	return LabelLayout{
		FontSlope:     0.289556962,
		FontIntercept: -33.5,
		YSlope:        0.6107594937,
		YIntercept:    -16,
	}
}

// Config is the immutable drawing configuration of a Disk.
//
// Rings is a table of ring diameters; a Disk can only draw rings present
// in it. Margin is the angular gap carved from each side of a wedge, as
// a fraction of the 30 degree unit.
type Config struct {
	Margin  float64
	Rings   map[Ring]RingSpec
	Palette Palette
	Label   LabelLayout
}

// DefaultConfig returns the dual-ring configuration.
func DefaultConfig() Config {
	return Config{
		Margin: 0.05,
		Rings: map[Ring]RingSpec{
			RingPrimary:   {Outer: 0.95, Inner: 0.71},
			RingSecondary: {Outer: 0.68, Inner: 0.63},
		},
		Palette: DefaultPalette(),
		Label:   DefaultLabelLayout(),
	}
}

// SingleRingConfig returns a configuration with only the primary ring.
func SingleRingConfig() Config {
	return Config{
		Margin: 1.0 / 20,
		Rings: map[Ring]RingSpec{
			RingPrimary: {Outer: 0.95, Inner: 0.71},
		},
		Palette: DefaultPalette(),
		Label:   DefaultLabelLayout(),
	}
}

// Validate checks the configuration for values the geometry cannot draw.
// Palettes shorter than MaxBucket+1 pass; see Palette.Validate.
func (c Config) Validate() error {
	if c.Margin < 0 || c.Margin >= 0.5 {
		return fmt.Errorf("%w: margin %v not in [0, 0.5)", ErrInvalidConfig, c.Margin)
	}
	if _, ok := c.Rings[RingPrimary]; !ok {
		return fmt.Errorf("%w: missing primary ring", ErrInvalidConfig)
	}
	for _, ring := range c.ringOrder() {
		spec := c.Rings[ring]
		if spec.Outer <= 0 || spec.Outer > 1 || spec.Inner <= 0 || spec.Inner > 1 {
			return fmt.Errorf("%w: %v ring diameters must be in (0, 1]", ErrInvalidConfig, ring)
		}
		if spec.Outer <= spec.Inner {
			return fmt.Errorf("%w: %v ring outer %v <= inner %v", ErrInvalidConfig, ring, spec.Outer, spec.Inner)
		}
	}
	if err := c.Palette.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ringOrder returns the configured rings sorted from outermost band
// (RingPrimary) inward.
func (c Config) ringOrder() []Ring {
	rings := make([]Ring, 0, len(c.Rings))
	for r := range c.Rings {
		rings = append(rings, r)
	}
	sort.Slice(rings, func(i, j int) bool { return rings[i] < rings[j] })
	return rings
}

// clone copies the ring table so a Disk never shares it with the caller.
func (c Config) clone() Config {
	rings := make(map[Ring]RingSpec, len(c.Rings))
	for r, s := range c.Rings {
		rings[r] = s
	}
	c.Rings = rings
	c.Palette.Buckets = append([]Color(nil), c.Palette.Buckets...)
	return c
}
