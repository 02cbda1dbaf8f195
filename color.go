// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import (
	"fmt"
	"strings"
)

// Color is a fill color in normalized "#rrggbb" form.
type Color string

// Named palette colors used by DefaultPalette.
const (
	ColorGray   Color = "#eeeeee"
	ColorBlue   Color = "#0c4767"
	ColorGreen  Color = "#566e3d"
	ColorOrange Color = "#fa7921"
	ColorRed    Color = "#c00000"
)

// ParseColor parses a hex color and returns it normalized to "#rrggbb".
// Supports formats: "RGB", "#RGB", "RRGGBB", "#RRGGBB" in any case.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	hex = strings.ToLower(hex)

	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}

	switch len(hex) {
	case 3: // RGB
		return Color("#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})), nil
	case 6: // RRGGBB
		return Color("#" + hex), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return string(c)
}

// Valid reports whether c is already in normalized "#rrggbb" form.
func (c Color) Valid() bool {
	n, err := ParseColor(string(c))
	return err == nil && n == c
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}
