// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if err := SingleRingConfig().Validate(); err != nil {
		t.Errorf("SingleRingConfig().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative margin", func(c *Config) { c.Margin = -0.1 }},
		{"margin too wide", func(c *Config) { c.Margin = 0.5 }},
		{"no primary", func(c *Config) { delete(c.Rings, RingPrimary) }},
		{"outer not above inner", func(c *Config) { c.Rings[RingSecondary] = RingSpec{Outer: 0.6, Inner: 0.6} }},
		{"diameter above canvas", func(c *Config) { c.Rings[RingPrimary] = RingSpec{Outer: 1.2, Inner: 0.7} }},
		{"zero inner", func(c *Config) { c.Rings[RingPrimary] = RingSpec{Outer: 0.9, Inner: 0} }},
		{"bad palette", func(c *Config) { c.Palette.Default = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_BadPaletteWrapsColorError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.Buckets = nil
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Validate() = %v, want both ErrInvalidConfig and ErrInvalidColor", err)
	}
}

func TestConfig_ShortPaletteCoversColdRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.Buckets = []Color{ColorBlue, ColorGreen}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with two buckets = %v, want nil", err)
	}

	warm, err := NewDisk(400, 12.5, WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := warm.AllSegments(); err != nil {
		t.Errorf("AllSegments() at 12.5 = %v, want nil", err)
	}

	hot, err := NewDisk(400, 13, WithConfig(cfg))
	if err != nil {
		t.Fatalf("NewDisk() = %v, want the palette checked at render time", err)
	}
	if _, err := hot.Segments(RingPrimary); !errors.Is(err, ErrColorBucketNotFound) {
		t.Errorf("Segments() at 13 = %v, want ErrColorBucketNotFound", err)
	}
	if _, err := hot.Label(); !errors.Is(err, ErrColorBucketNotFound) {
		t.Errorf("Label() at 13 = %v, want ErrColorBucketNotFound", err)
	}
}

func TestRing_String(t *testing.T) {
	for _, r := range []Ring{RingPrimary, RingSecondary} {
		got, err := ParseRing(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRing(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRing("tertiary"); !errors.Is(err, ErrUnknownRing) {
		t.Errorf("ParseRing(tertiary) err = %v, want ErrUnknownRing", err)
	}
	if Edge(4).String() != "Edge(4)" || Ring(4).String() != "Ring(4)" {
		t.Error("unexpected fallback names")
	}
}

func TestRingSpec_Diameter(t *testing.T) {
	s := RingSpec{Outer: 0.9, Inner: 0.4}
	if d, _ := s.Diameter(EdgeOuter); d != 0.9 {
		t.Errorf("Diameter(outer) = %v", d)
	}
	if d, _ := s.Diameter(EdgeInner); d != 0.4 {
		t.Errorf("Diameter(inner) = %v", d)
	}
	if _, err := s.Diameter(Edge(-1)); !errors.Is(err, ErrInvalidEdge) {
		t.Errorf("Diameter(-1) err = %v, want ErrInvalidEdge", err)
	}
}
