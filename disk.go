// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import "fmt"

// State is the lifecycle state of a Disk.
type State int

const (
	// StateConstructed means only the primary temperature is set.
	StateConstructed State = iota
	// StateSecondaryAssigned means a secondary temperature has been set.
	StateSecondaryAssigned
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateSecondaryAssigned:
		return "secondary-assigned"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Label describes the temperature readout drawn at the middle of the disk.
// Y is the text baseline; the text is horizontally centered on X.
type Label struct {
	X           float64
	Y           int
	FontSize    int
	Color       Color
	Temperature float64
}

// Disk is a temperature gauge made of one or two rings of 12 segments.
//
// Segments are computed on every call and never cached. A Disk is safe
// for concurrent reads; SetSecondaryTemperature must not race with them.
type Disk struct {
	canvas      int
	temperature float64
	secondary   *float64
	cfg         Config
	builder     SegmentBuilder
}

// NewDisk creates a gauge on a square canvas of the given size in pixels.
func NewDisk(canvas int, temperature float64, opts ...DiskOption) (*Disk, error) {
	o := defaultDiskOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkTemperature(temperature); err != nil {
		return nil, err
	}
	if canvas < MinCanvas {
		return nil, fmt.Errorf("%w: %d < %d", ErrCanvasTooSmall, canvas, MinCanvas)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	cfg := o.config.clone()
	d := &Disk{
		canvas:      canvas,
		temperature: temperature,
		cfg:         cfg,
		builder:     NewSegmentBuilder(NewGeometry(canvas, cfg), cfg.Palette),
	}
	if o.secondary != nil {
		if err := d.SetSecondaryTemperature(*o.secondary); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// SetSecondaryTemperature assigns the temperature of the inner ring.
// Calling it again overwrites the previous value.
func (d *Disk) SetSecondaryTemperature(t float64) error {
	if _, ok := d.cfg.Rings[RingSecondary]; !ok {
		return fmt.Errorf("%w: %v ring not configured", ErrUnknownRing, RingSecondary)
	}
	if err := checkTemperature(t); err != nil {
		return fmt.Errorf("secondary: %w", err)
	}
	d.secondary = &t
	return nil
}

// Canvas returns the canvas width and height in pixels.
func (d *Disk) Canvas() int { return d.canvas }

// Temperature returns the primary temperature.
func (d *Disk) Temperature() float64 { return d.temperature }

// Secondary returns the secondary temperature and whether it is set.
func (d *Disk) Secondary() (float64, bool) {
	if d.secondary == nil {
		return 0, false
	}
	return *d.secondary, true
}

// State returns the lifecycle state.
func (d *Disk) State() State {
	if d.secondary == nil {
		return StateConstructed
	}
	return StateSecondaryAssigned
}

// Config returns a copy of the drawing configuration.
func (d *Disk) Config() Config { return d.cfg.clone() }

// TemperatureOf returns the temperature driving a ring.
func (d *Disk) TemperatureOf(ring Ring) (float64, error) {
	if _, ok := d.cfg.Rings[ring]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownRing, ring)
	}
	switch ring {
	case RingPrimary:
		return d.temperature, nil
	case RingSecondary:
		if d.secondary == nil {
			return 0, ErrSecondaryUnset
		}
		return *d.secondary, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownRing, ring)
	}
}

// Rings returns the rings that have a temperature, outermost first.
func (d *Disk) Rings() []Ring {
	var rings []Ring
	for _, r := range d.cfg.ringOrder() {
		if _, err := d.TemperatureOf(r); err == nil {
			rings = append(rings, r)
		}
	}
	return rings
}

// Segments returns the 12 segments of ring in index order.
// Requesting RingSecondary before it is assigned returns ErrSecondaryUnset.
func (d *Disk) Segments(ring Ring) ([]Segment, error) {
	t, err := d.TemperatureOf(ring)
	if err != nil {
		return nil, err
	}
	segs := make([]Segment, 0, SegmentCount)
	for i := range SegmentCount {
		s, err := d.builder.Build(ring, t, i)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, nil
}

// AllSegments returns the segments of every ring in Rings order.
func (d *Disk) AllSegments() ([]Segment, error) {
	var all []Segment
	for _, r := range d.Rings() {
		segs, err := d.Segments(r)
		if err != nil {
			return nil, err
		}
		all = append(all, segs...)
	}
	return all, nil
}

// Label returns the placement of the primary temperature readout.
// For small canvases FontSize can be zero or negative; renderers skip
// the label in that case.
func (d *Disk) Label() (Label, error) {
	c, err := d.cfg.Palette.RangeColor(d.temperature)
	if err != nil {
		return Label{}, err
	}
	l := d.cfg.Label
	size := float64(d.canvas)
	return Label{
		X:           size / 2,
		Y:           int(l.YSlope*size + l.YIntercept + 0.5),
		FontSize:    int(l.FontSlope*size + l.FontIntercept + 0.5),
		Color:       c,
		Temperature: d.temperature,
	}, nil
}

// checkTemperature also rejects NaN, which fails both comparisons.
func checkTemperature(t float64) error {
	if !(t >= MinTemperature && t <= MaxTemperature) {
		return fmt.Errorf("%w: %v not in [%d, %d]", ErrTemperatureOutOfRange, t, MinTemperature, MaxTemperature)
	}
	return nil
}
