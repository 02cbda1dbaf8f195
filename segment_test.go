// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"errors"
	"testing"
)

func newTestBuilder(canvas int) SegmentBuilder {
	cfg := DefaultConfig()
	return NewSegmentBuilder(NewGeometry(canvas, cfg), cfg.Palette)
}

func TestSegmentBuilder_PositionOutOfRange(t *testing.T) {
	b := newTestBuilder(400)
	for _, idx := range []int{-1, 12, 100} {
		if _, err := b.Build(RingPrimary, 5, idx); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Build(%d) err = %v, want ErrPositionOutOfRange", idx, err)
		}
	}
}

func TestSegmentBuilder_PointOrder(t *testing.T) {
	b := newTestBuilder(400)
	g := NewGeometry(400, DefaultConfig())

	seg, err := b.Build(RingSecondary, 5, 4)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := [4]Point{
		mustPoint(t, g, 4, RingSecondary, EdgeOuter, true),
		mustPoint(t, g, 5, RingSecondary, EdgeOuter, false),
		mustPoint(t, g, 5, RingSecondary, EdgeInner, false),
		mustPoint(t, g, 4, RingSecondary, EdgeInner, true),
	}
	if seg.Points != want {
		t.Errorf("Points = %v, want %v", seg.Points, want)
	}
	if seg.Index != 4 || seg.Ring != RingSecondary {
		t.Errorf("Index, Ring = %d, %v, want 4, secondary", seg.Index, seg.Ring)
	}
}

func TestSegmentBuilder_Convex(t *testing.T) {
	b := newTestBuilder(400)
	for _, ring := range []Ring{RingPrimary, RingSecondary} {
		for i := range SegmentCount {
			seg, err := b.Build(ring, 20, i)
			if err != nil {
				t.Fatal(err)
			}
			closed := seg.Closed()
			if len(closed) != 5 || closed[0] != closed[4] {
				t.Fatalf("Closed() = %v, want 5 points ending at start", closed)
			}
			// Consecutive edge turns share one sign for a simple convex outline.
			var sign float64
			for k := range 4 {
				a := closed[k+1].Sub(closed[k])
				c := seg.Points[(k+2)%4].Sub(closed[k+1])
				cross := a.X*c.Y - a.Y*c.X
				if cross == 0 {
					t.Fatalf("%v segment %d: degenerate corner %d", ring, i, k)
				}
				if sign != 0 && (cross > 0) != (sign > 0) {
					t.Errorf("%v segment %d: outline is not convex", ring, i)
				}
				sign = cross
			}
		}
	}
}

func TestSegment_Center(t *testing.T) {
	b := newTestBuilder(400)
	seg, err := b.Build(RingPrimary, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := seg.Center()
	center := Pt(200, 200)
	if d := c.Distance(center); d <= 142 || d >= 190 {
		t.Errorf("Center() %v at distance %v, want between radii 142 and 190", c, d)
	}
}

func TestSegmentBuilder_Fill(t *testing.T) {
	b := newTestBuilder(400)
	tests := []struct {
		temp  float64
		index int
		want  Color
		lit   bool
	}{
		{5, 0, ColorGreen, true},
		{5, 4, ColorGreen, true},
		{5, 5, ColorGray, false},
		{-3, 8, ColorGray, false},
		{-3, 9, ColorBlue, true},
		{25, 0, ColorRed, true},
		{21.5, 8, ColorOrange, true},
		{21.5, 9, ColorGray, false},
	}
	for _, tt := range tests {
		seg, err := b.Build(RingPrimary, tt.temp, tt.index)
		if err != nil {
			t.Fatal(err)
		}
		if seg.Fill != tt.want || seg.Highlighted != tt.lit {
			t.Errorf("Build(t=%v, i=%d) fill = %s lit = %v, want %s %v",
				tt.temp, tt.index, seg.Fill, seg.Highlighted, tt.want, tt.lit)
		}
	}
}

func mustPoint(t *testing.T, g Geometry, pos int, ring Ring, edge Edge, leading bool) Point {
	t.Helper()
	p, err := g.Point(pos, ring, edge, leading)
	if err != nil {
		t.Fatalf("Point(%d, %v, %v, %v) error = %v", pos, ring, edge, leading, err)
	}
	return p
}
