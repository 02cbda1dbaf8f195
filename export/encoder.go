// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/dodecagon"
)

// Encoder turns a Disk into a document of one format.
//
// Encoders are created via the registry using NewEncoder(name, opts) and
// registered via Register() in the init() of their package.
//
// # Implementation Contract
//
// Each encoder must:
//  1. Register in init() using export.Register()
//  2. Draw the primary ring, then the secondary ring when it is assigned
//  3. Draw the temperature label only when its font size is positive
//  4. Be safe to call concurrently for distinct writers
type Encoder interface {
	// Encode writes the gauge to w.
	Encode(w io.Writer, d *dodecagon.Disk) error

	// ContentType returns the MIME type of the produced document.
	ContentType() string
}

// Options configure an encoder at creation time.
type Options struct {
	// Locale selects number formatting of the label. language.Und means English.
	Locale language.Tag
}

// LabelText returns the readout shown in the middle of the gauge,
// e.g. "21 °C" or "21.5 °C". Fractions are printed in the shortest
// form with the locale's decimal separator.
func LabelText(temperature float64, locale language.Tag) string {
	if locale == language.Und {
		locale = language.English
	}
	return message.NewPrinter(locale).Sprintf("%v °C", temperature)
}

// Layers returns the segments to draw and the label of d, in drawing
// order. ok is false when the label is too small to be drawn.
func Layers(d *dodecagon.Disk) (segs []dodecagon.Segment, label dodecagon.Label, ok bool, err error) {
	label, err = d.Label()
	if err != nil {
		return nil, dodecagon.Label{}, false, err
	}
	segs, err = d.AllSegments()
	if err != nil {
		return nil, dodecagon.Label{}, false, err
	}
	return segs, label, label.FontSize > 0, nil
}
