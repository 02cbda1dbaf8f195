// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import "fmt"

// Segment is one colored wedge of a ring.
//
// Points are ordered outer-leading, outer-trailing, inner-trailing,
// inner-leading; joined in order and closed they trace the wedge
// without self-intersection.
type Segment struct {
	Index       int
	Ring        Ring
	Points      [4]Point
	Fill        Color
	Highlighted bool
}

// Closed returns the outline with the first point repeated at the end.
func (s Segment) Closed() []Point {
	return []Point{s.Points[0], s.Points[1], s.Points[2], s.Points[3], s.Points[0]}
}

// Center returns a point strictly inside the wedge.
func (s Segment) Center() Point {
	return s.Points[0].Lerp(s.Points[2], 0.5)
}

// SegmentBuilder combines Geometry and Palette into colored segments.
type SegmentBuilder struct {
	geom    Geometry
	palette Palette
}

// NewSegmentBuilder returns a builder drawing with geom and coloring with palette.
func NewSegmentBuilder(geom Geometry, palette Palette) SegmentBuilder {
	return SegmentBuilder{geom: geom, palette: palette}
}

// corner describes one wedge corner relative to the segment index.
type corner struct {
	step    int
	edge    Edge
	leading bool
}

var wedgeCorners = [4]corner{
	{0, EdgeOuter, true},
	{1, EdgeOuter, false},
	{1, EdgeInner, false},
	{0, EdgeInner, true},
}

// Build returns segment index of ring, colored for temperature.
func (b SegmentBuilder) Build(ring Ring, temperature float64, index int) (Segment, error) {
	if index < 0 || index >= SegmentCount {
		return Segment{}, fmt.Errorf("%w: %d not in [0, %d]", ErrPositionOutOfRange, index, SegmentCount-1)
	}

	seg := Segment{Index: index, Ring: ring}
	for i, c := range wedgeCorners {
		p, err := b.geom.Point(index+c.step, ring, c.edge, c.leading)
		if err != nil {
			return Segment{}, err
		}
		seg.Points[i] = p
	}

	fill, lit, err := b.palette.Fill(temperature, index)
	if err != nil {
		return Segment{}, err
	}
	seg.Fill = fill
	seg.Highlighted = lit
	return seg, nil
}
