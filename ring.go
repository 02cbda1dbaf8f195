// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import "fmt"

// Ring identifies one of the concentric bands of the gauge.
type Ring int

const (
	// RingPrimary is the outer band, colored by the primary temperature.
	RingPrimary Ring = iota
	// RingSecondary is the inner band, colored by the secondary temperature.
	RingSecondary
)

// String returns the ring name.
func (r Ring) String() string {
	switch r {
	case RingPrimary:
		return "primary"
	case RingSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("Ring(%d)", int(r))
	}
}

// ParseRing maps a ring name back to a Ring.
func ParseRing(name string) (Ring, error) {
	switch name {
	case "primary":
		return RingPrimary, nil
	case "secondary":
		return RingSecondary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRing, name)
	}
}

// Edge selects the outer or inner boundary of a ring.
type Edge int

const (
	EdgeOuter Edge = iota
	EdgeInner
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeOuter:
		return "outer"
	case EdgeInner:
		return "inner"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// RingSpec holds the diameters of a ring as fractions of the canvas size.
type RingSpec struct {
	Outer float64
	Inner float64
}

// Diameter returns the diameter ratio for the given edge.
func (s RingSpec) Diameter(edge Edge) (float64, error) {
	switch edge {
	case EdgeOuter:
		return s.Outer, nil
	case EdgeInner:
		return s.Inner, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidEdge, edge)
	}
}
