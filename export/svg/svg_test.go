// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/export"
)

func encode(t *testing.T, d *dodecagon.Disk) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New(export.Options{}).Encode(&buf, d); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.String()
}

func TestEncode_PrimaryRing(t *testing.T) {
	d, err := dodecagon.NewDisk(400, 5)
	if err != nil {
		t.Fatal(err)
	}
	out := encode(t, d)

	for _, want := range []string{
		`width="400"`,
		`height="400"`,
		`text-anchor="middle"`,
		`font-size:82px;font-family:sans-serif;fill:#566e3d`,
		`5 °C</text>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "<path"); n != 12 {
		t.Errorf("%d paths, want 12", n)
	}
	if n := strings.Count(out, `style="fill:#566e3d"`); n != 5 {
		t.Errorf("%d green segments, want 5", n)
	}
	if n := strings.Count(out, `style="fill:#eeeeee"`); n != 7 {
		t.Errorf("%d gray segments, want 7", n)
	}
}

func TestEncode_SecondaryRing(t *testing.T) {
	d, err := dodecagon.NewDisk(400, 30, dodecagon.WithSecondary(-4))
	if err != nil {
		t.Fatal(err)
	}
	out := encode(t, d)

	if n := strings.Count(out, "<path"); n != 24 {
		t.Errorf("%d paths, want 24", n)
	}
	// Secondary -4 lights segments 8..11 in blue.
	if n := strings.Count(out, `style="fill:#0c4767"`); n != 4 {
		t.Errorf("%d blue segments, want 4", n)
	}
	// Primary 30 lights segments 0..5 in red; the label shares the color.
	if n := strings.Count(out, `style="fill:#c00000"`); n != 6 {
		t.Errorf("%d red segments, want 6", n)
	}
	if !strings.Contains(out, "30 °C") {
		t.Error("label shows the secondary temperature instead of the primary")
	}
}

func TestEncode_SmallCanvasOmitsLabel(t *testing.T) {
	d, err := dodecagon.NewDisk(40, 5)
	if err != nil {
		t.Fatal(err)
	}
	if out := encode(t, d); strings.Contains(out, "<text") {
		t.Errorf("label drawn on a 40 px canvas: %s", out)
	}
}

func TestPathData(t *testing.T) {
	s := dodecagon.Segment{Points: [4]dodecagon.Point{
		dodecagon.Pt(1, 2), dodecagon.Pt(3.5, 4), dodecagon.Pt(5, 6.25), dodecagon.Pt(-7, 8),
	}}
	want := "M 1,2 L 3.5,4 L 5,6.25 L -7,8 Z"
	if got := pathData(s); got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestEncode_WriteError(t *testing.T) {
	d, _ := dodecagon.NewDisk(400, 5)
	err := New(export.Options{}).Encode(failingWriter{}, d)
	if !errors.Is(err, errDiskFull) {
		t.Errorf("Encode() error = %v, want errDiskFull", err)
	}
}

func TestRegistered(t *testing.T) {
	enc, err := export.NewEncoder("svg", export.Options{})
	if err != nil {
		t.Fatalf("NewEncoder(svg) error = %v", err)
	}
	if enc.ContentType() != ContentType {
		t.Errorf("ContentType() = %q", enc.ContentType())
	}
}
