// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command dodecagon renders temperature gauges as SVG or PNG, or serves
// them over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/dodecagon"
	"github.com/gogpu/dodecagon/internal/config"

	_ "github.com/gogpu/dodecagon/export/raster"
	_ "github.com/gogpu/dodecagon/export/svg"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// Global config, loaded before any subcommand runs.
var cfg *config.Config

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dodecagon",
		Short: "Render a 12-segment temperature gauge",
		Long: `dodecagon draws a temperature as a ring of 12 wedges, like a clock
face, colored by temperature range. An optional secondary temperature
is drawn on an inner ring.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			configFile, _ := cmd.Flags().GetString("config")
			if configFile != "" {
				cfg, err = config.LoadFromFile(configFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				cfg.Logging.Level = lvl
			}
			return setupLogging(cfg.Logging)
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./dodecagon.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(), newServeCmd(), newFormatsCmd(), newVersionCmd())
	return root
}

// setupLogging installs the configured slog handler as the shared logger.
func setupLogging(lc config.LoggingConfig) error {
	level, err := lc.SlogLevel()
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(lc.Format) {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		h = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("logging.format: unknown format %q", lc.Format)
	}
	dodecagon.SetLogger(slog.New(h))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dodecagon %s (commit %s)\n", version, commit)
		},
	}
}
