// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dodecagon computes a circular temperature gauge: a ring of
// 12 wedge-shaped segments, like a clock face, lit according to a
// temperature.
//
// # Quick Start
//
//	d, err := dodecagon.NewDisk(400, 5)
//	if err != nil {
//	    return err
//	}
//	segs, err := d.Segments(dodecagon.RingPrimary)
//	// segs[0..4] are green, segs[5..11] gray
//
// An optional secondary temperature is drawn on an inner ring:
//
//	err = d.SetSecondaryTemperature(-3)
//	inner, err := d.Segments(dodecagon.RingSecondary)
//
// # Temperature Mapping
//
// Temperatures are degrees Celsius in [-11, 36] and may be fractional.
// Each 12 degree band is one color bucket (blue, green, orange, red). Within a band, positive
// temperatures light segments from the top clockwise; zero and negative
// temperatures light segments backward from the end of the ring.
//
// # Coordinate System
//
// Uses standard image coordinates:
//   - Origin (0,0) at top-left
//   - Y increases down
//   - Angle 0 points to the top of the disk and increases clockwise
//
// # Output
//
// The engine returns plain data (points, colors, label metrics). The
// export package and its svg and raster sub-packages turn a Disk into
// SVG or PNG documents.
package dodecagon
