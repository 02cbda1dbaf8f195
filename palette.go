// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"fmt"
	"math"
)

// MaxBucket is the highest range bucket a temperature can map to.
const MaxBucket = 3

// Palette maps range buckets to fill colors.
// Buckets are ordered from the coldest range to the hottest.
type Palette struct {
	Default Color
	Buckets []Color
}

// DefaultPalette returns gray for idle segments and blue, green, orange,
// red for the four ranges.
func DefaultPalette() Palette {
	return Palette{
		Default: ColorGray,
		Buckets: []Color{ColorBlue, ColorGreen, ColorOrange, ColorRed},
	}
}

// Validate reports the first malformed color in the palette.
//
// A palette may hold fewer than MaxBucket+1 bucket colors. Such a palette
// only covers the colder ranges: RangeColor and Fill return
// ErrColorBucketNotFound for lit segments in a range it does not cover.
func (p Palette) Validate() error {
	if !p.Default.Valid() {
		return fmt.Errorf("%w: default %q", ErrInvalidColor, p.Default)
	}
	if len(p.Buckets) == 0 {
		return fmt.Errorf("%w: palette has no bucket colors", ErrInvalidColor)
	}
	for i, c := range p.Buckets {
		if !c.Valid() {
			return fmt.Errorf("%w: bucket %d %q", ErrInvalidColor, i, c)
		}
	}
	return nil
}

// Bucket returns the range bucket of a temperature, clamped to [0, MaxBucket].
// Every 12 degrees starting at 1 open a new bucket.
func Bucket(t float64) int {
	r := int(math.Floor((t-1)/12 + 1))
	return min(max(r, 0), MaxBucket)
}

// Highlighted reports whether segment i is lit for temperature t.
//
// Positive temperatures light segments 0..(t-1) mod 12, with t-1
// truncated toward zero. Zero and negative temperatures light the tail
// of the ring, segments t+12..11.
func Highlighted(t float64, i int) bool {
	if t > 0 {
		return int(t-1)%SegmentCount >= i
	}
	return float64(i) >= t+SegmentCount
}

// HighlightCount returns how many of the 12 segments are lit for t.
func HighlightCount(t float64) int {
	n := 0
	for i := range SegmentCount {
		if Highlighted(t, i) {
			n++
		}
	}
	return n
}

// RangeColor returns the color of the bucket t falls into.
func (p Palette) RangeColor(t float64) (Color, error) {
	b := Bucket(t)
	if b >= len(p.Buckets) {
		return "", fmt.Errorf("%w: bucket %d, palette has %d", ErrColorBucketNotFound, b, len(p.Buckets))
	}
	return p.Buckets[b], nil
}

// Fill returns the fill of segment i for temperature t: the range color
// when the segment is highlighted, the default color otherwise.
func (p Palette) Fill(t float64, i int) (Color, bool, error) {
	if !Highlighted(t, i) {
		return p.Default, false, nil
	}
	c, err := p.RangeColor(t)
	if err != nil {
		return "", false, err
	}
	return c, true, nil
}
