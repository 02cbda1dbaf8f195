// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

import "errors"

// Errors returned by the engine. Operations wrap them with context, so
// callers should match with errors.Is.
var (
	// ErrTemperatureOutOfRange is returned when a primary or secondary
	// temperature lies outside [MinTemperature, MaxTemperature].
	ErrTemperatureOutOfRange = errors.New("dodecagon: temperature out of range")

	// ErrCanvasTooSmall is returned when the canvas is below MinCanvas pixels.
	ErrCanvasTooSmall = errors.New("dodecagon: canvas size is too small")

	// ErrPositionOutOfRange is returned for a segment index outside [0, 11].
	ErrPositionOutOfRange = errors.New("dodecagon: segment position out of range")

	// ErrInvalidEdge is returned for an edge that is neither EdgeOuter nor EdgeInner.
	ErrInvalidEdge = errors.New("dodecagon: invalid ring edge")

	// ErrColorBucketNotFound is returned when the palette has no color for
	// the clamped bucket index.
	ErrColorBucketNotFound = errors.New("dodecagon: no color for range bucket")

	// ErrUnknownRing is returned for a ring missing from the config ring table.
	ErrUnknownRing = errors.New("dodecagon: unknown ring")

	// ErrSecondaryUnset is returned when the secondary ring is requested
	// before a secondary temperature was assigned.
	ErrSecondaryUnset = errors.New("dodecagon: secondary temperature not set")

	ErrInvalidColor  = errors.New("dodecagon: invalid color")
	ErrInvalidConfig = errors.New("dodecagon: invalid config")
)
