// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/export"
)

type renderFlags struct {
	temperature float64
	secondary   float64
	size        int
	format      string
	output      string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one gauge to a file or stdout",
		Example: `  dodecagon render -t 21 > gauge.svg
  dodecagon render -t 21 --secondary 14 --size 200 --format png -o gauge.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, f)
		},
	}
	cmd.Flags().Float64VarP(&f.temperature, "temperature", "t", 0, "primary temperature in °C (required)")
	cmd.Flags().Float64Var(&f.secondary, "secondary", 0, "secondary temperature in °C for the inner ring")
	cmd.Flags().IntVar(&f.size, "size", 0, "canvas size in px (default: gauge.canvas)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "svg", "output format")
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("temperature")
	return cmd
}

func runRender(cmd *cobra.Command, f renderFlags) error {
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}
	locale, err := cfg.Locale()
	if err != nil {
		return err
	}

	size := f.size
	if size == 0 {
		size = cfg.Gauge.Canvas
	}
	opts := []dodecagon.DiskOption{dodecagon.WithConfig(engine)}
	if cmd.Flags().Changed("secondary") {
		opts = append(opts, dodecagon.WithSecondary(f.secondary))
	}
	disk, err := dodecagon.NewDisk(size, f.temperature, opts...)
	if err != nil {
		return err
	}

	enc, err := export.NewEncoder(f.format, export.Options{Locale: locale})
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), f.output, enc, disk); err != nil {
		return fmt.Errorf("render %s: %w", f.format, err)
	}
	dodecagon.Logger().Info("rendered gauge",
		"format", f.format, "size", size, "temperature", f.temperature, "output", f.output)
	return nil
}

// writeOutput encodes disk to stdout when path is "-", otherwise to the
// named file, reporting a failed Close.
func writeOutput(stdout io.Writer, path string, enc export.Encoder, disk *dodecagon.Disk) (err error) {
	if path == "-" {
		return enc.Encode(stdout, disk)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return enc.Encode(file, disk)
}
