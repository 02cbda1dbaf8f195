// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"fmt"
	"math"
)

// Geometry places wedge corners on a square canvas.
//
// Angles start at the top of the circle and grow clockwise; one segment
// spans pi/6 radians. Geometry is a value type and safe for concurrent use.
type Geometry struct {
	canvas float64
	margin float64
	rings  map[Ring]RingSpec
}

// NewGeometry creates a Geometry for a canvas of the given size in pixels.
// The ring table of cfg is read, not copied; callers must not mutate it.
func NewGeometry(canvas int, cfg Config) Geometry {
	return Geometry{
		canvas: float64(canvas),
		margin: cfg.Margin,
		rings:  cfg.Rings,
	}
}

// Center returns the x and y coordinate of the disk center.
func (g Geometry) Center() float64 {
	return g.canvas / 2
}

// Radius returns the radius in pixels of a ring edge.
func (g Geometry) Radius(ring Ring, edge Edge) (float64, error) {
	spec, ok := g.rings[ring]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownRing, ring)
	}
	d, err := spec.Diameter(edge)
	if err != nil {
		return 0, err
	}
	return g.canvas * d / 2, nil
}

// Point returns the corner at a wedge boundary.
//
// position is the boundary index: segment i is bounded by i (leading) and
// i+1 (trailing), so valid values are 0..12. The margin is added on the
// leading side and subtracted on the trailing side, leaving a gap between
// neighbouring wedges.
func (g Geometry) Point(position int, ring Ring, edge Edge, leading bool) (Point, error) {
	r, err := g.Radius(ring, edge)
	if err != nil {
		return Point{}, err
	}

	offset := -g.margin
	if leading {
		offset = g.margin
	}
	angle := (float64(position) + offset) * math.Pi / 6
	sin, cos := math.Sincos(angle)
	center := g.Center()

	return Point{
		X: sin*r + center,
		Y: g.canvas - cos*r - center,
	}, nil
}
