// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster encodes gauges as PNG images using the gg software
// rasterizer. Importing it registers the "png" format with the export
// package.
package raster

import (
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/export"
)

// ContentType is the MIME type of the encoded images.
const ContentType = "image/png"

func init() {
	export.Register("png", func(opts export.Options) export.Encoder {
		return New(opts)
	})
}

// labelFont is parsed once and shared; faces are cheap views of it.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Encoder rasterizes a gauge on a transparent canvas.
type Encoder struct {
	opts export.Options
}

// New returns a PNG encoder.
func New(opts export.Options) *Encoder {
	return &Encoder{opts: opts}
}

// ContentType implements export.Encoder.
func (e *Encoder) ContentType() string { return ContentType }

// Encode implements export.Encoder.
func (e *Encoder) Encode(w io.Writer, d *dodecagon.Disk) error {
	dc, err := e.Draw(d)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Draw renders d into a new gg context. The caller owns the context
// and must Close it.
func (e *Encoder) Draw(d *dodecagon.Disk) (*gg.Context, error) {
	segs, label, drawLabel, err := export.Layers(d)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(d.Canvas(), d.Canvas())
	for _, s := range segs {
		fillSegment(dc, s)
		if err := dc.Fill(); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("raster: fill %v segment %d: %w", s.Ring, s.Index, err)
		}
	}

	if drawLabel {
		src, err := labelFont()
		if err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("raster: load label font: %w", err)
		}
		dc.SetFont(src.Face(float64(label.FontSize)))
		dc.SetHexColor(label.Color.String())
		// Anchor (0.5, 0): horizontally centered, y on the baseline.
		dc.DrawStringAnchored(export.LabelText(label.Temperature, e.opts.Locale), label.X, float64(label.Y), 0.5, 0)
	}

	dodecagon.Logger().Debug("raster: drew gauge",
		"canvas", d.Canvas(), "segments", len(segs), "label", drawLabel)
	return dc, nil
}

// fillSegment sets the current path and color to segment s.
func fillSegment(dc *gg.Context, s dodecagon.Segment) {
	dc.SetHexColor(s.Fill.String())
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
