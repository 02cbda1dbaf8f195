// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dodecagon

// DiskOption configures a Disk during creation.
//
// Example:
//
//	// Dual-ring gauge with both temperatures
//	d, err := dodecagon.NewDisk(400, 21, dodecagon.WithSecondary(14))
//
//	// Single-ring gauge with a custom palette
//	cfg := dodecagon.SingleRingConfig()
//	cfg.Palette.Default = "#dddddd"
//	d, err := dodecagon.NewDisk(400, 21, dodecagon.WithConfig(cfg))
type DiskOption func(*diskOptions)

// diskOptions holds optional configuration for Disk creation.
type diskOptions struct {
	config    Config
	secondary *float64
}

// defaultDiskOptions returns the dual-ring configuration with no secondary temperature.
func defaultDiskOptions() diskOptions {
	return diskOptions{config: DefaultConfig()}
}

// WithConfig replaces the drawing configuration. The config is validated
// by NewDisk and copied, so later changes by the caller have no effect.
func WithConfig(cfg Config) DiskOption {
	return func(o *diskOptions) {
		o.config = cfg
	}
}

// WithSecondary assigns the secondary temperature at construction.
// It is validated exactly like SetSecondaryTemperature.
func WithSecondary(t float64) DiskOption {
	return func(o *diskOptions) {
		o.secondary = &t
	}
}
