// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg encodes gauges as SVG documents. Importing it registers
// the "svg" format with the export package.
package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/export"
)

// ContentType is the MIME type of the encoded documents.
const ContentType = "image/svg+xml"

func init() {
	export.Register("svg", func(opts export.Options) export.Encoder {
		return New(opts)
	})
}

// Encoder writes one <path> per segment and a centered <text> label.
type Encoder struct {
	opts export.Options
}

// New returns an SVG encoder.
func New(opts export.Options) *Encoder {
	return &Encoder{opts: opts}
}

// ContentType implements export.Encoder.
func (e *Encoder) ContentType() string { return ContentType }

// Encode implements export.Encoder.
func (e *Encoder) Encode(w io.Writer, d *dodecagon.Disk) error {
	segs, label, drawLabel, err := export.Layers(d)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Start(d.Canvas(), d.Canvas())
	if drawLabel {
		canvas.Text(
			int(math.Round(label.X)), label.Y,
			export.LabelText(label.Temperature, e.opts.Locale),
			`text-anchor="middle"`,
			fmt.Sprintf("font-size:%dpx;font-family:sans-serif;fill:%s", label.FontSize, label.Color),
		)
	}
	for _, s := range segs {
		canvas.Path(pathData(s), "fill:"+s.Fill.String())
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("svg: write: %w", ew.err)
	}
	dodecagon.Logger().Debug("svg: encoded gauge",
		"canvas", d.Canvas(), "segments", len(segs), "bytes", ew.n)
	return nil
}

// pathData returns the closed outline of s as SVG path data.
func pathData(s dodecagon.Segment) string {
	parts := make([]string, 0, 2*len(s.Points)+1)
	for i, p := range s.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		parts = append(parts, cmd, f64s(p.X)+","+f64s(p.Y))
	}
	parts = append(parts, "Z")
	return strings.Join(parts, " ")
}

func f64s(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// errWriter keeps the first write error; svgo itself discards them.
type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.n += int64(n)
	ew.err = err
	return n, err
}
