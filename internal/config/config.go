// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config handles configuration loading for the dodecagon tool.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/gogpu/dodecagon"
)

// EnvPrefix prefixes environment overrides, e.g. DODECAGON_SERVER_ADDR.
const EnvPrefix = "DODECAGON"

// Config represents the complete application configuration.
type Config struct {
	Gauge   GaugeConfig   `mapstructure:"gauge"   yaml:"gauge"`
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GaugeConfig holds the drawing parameters of the gauge.
type GaugeConfig struct {
	Canvas  int                   `mapstructure:"canvas"  yaml:"canvas"`
	Margin  float64               `mapstructure:"margin"  yaml:"margin"`
	Rings   map[string]RingConfig `mapstructure:"rings"   yaml:"rings"`
	Palette PaletteConfig         `mapstructure:"palette" yaml:"palette"`
	Label   LabelConfig           `mapstructure:"label"   yaml:"label"`
	Locale  string                `mapstructure:"locale"  yaml:"locale"`
}

// RingConfig holds ring diameters as fractions of the canvas size.
type RingConfig struct {
	Outer float64 `mapstructure:"outer" yaml:"outer"`
	Inner float64 `mapstructure:"inner" yaml:"inner"`
}

// PaletteConfig holds hex colors, buckets from coldest to hottest.
type PaletteConfig struct {
	Default string   `mapstructure:"default" yaml:"default"`
	Buckets []string `mapstructure:"buckets" yaml:"buckets"`
}

// LabelConfig holds the linear label layout coefficients.
type LabelConfig struct {
	FontSlope     float64 `mapstructure:"font_slope"     yaml:"font_slope"`
	FontIntercept float64 `mapstructure:"font_intercept" yaml:"font_intercept"`
	YSlope        float64 `mapstructure:"y_slope"        yaml:"y_slope"`
	YIntercept    float64 `mapstructure:"y_intercept"    yaml:"y_intercept"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"             yaml:"addr"`
	CORSOrigins     []string      `mapstructure:"cors_origins"     yaml:"cors_origins"`
	MaxCanvas       int           `mapstructure:"max_canvas"       yaml:"max_canvas"` // largest size a request may ask for
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./dodecagon.yaml
//  2. ./config/dodecagon.yaml
//  3. ~/.dodecagon/dodecagon.yaml
//
// Environment variables override config file values.
// Format: DODECAGON_<SECTION>_<KEY>, e.g. DODECAGON_GAUGE_CANVAS.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("dodecagon")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dodecagon"))
	}

	// The file is optional; defaults and env vars still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if !v.InConfig("gauge.rings") {
		cfg.Gauge.Rings = defaultRings(cfg.Gauge.Rings)
	}
	return &cfg, nil
}

// defaultRings returns the dodecagon.DefaultConfig ring table with any
// non-zero diameters from env overrides applied on top.
func defaultRings(env map[string]RingConfig) map[string]RingConfig {
	rings := make(map[string]RingConfig)
	for ring, spec := range dodecagon.DefaultConfig().Rings {
		rings[ring.String()] = RingConfig{Outer: spec.Outer, Inner: spec.Inner}
	}
	for name, rc := range env {
		d := rings[name]
		if rc.Outer != 0 {
			d.Outer = rc.Outer
		}
		if rc.Inner != 0 {
			d.Inner = rc.Inner
		}
		rings[name] = d
	}
	return rings
}

// setDefaults mirrors dodecagon.DefaultConfig.
func setDefaults(v *viper.Viper) {
	def := dodecagon.DefaultConfig()

	v.SetDefault("gauge.canvas", 400)
	v.SetDefault("gauge.margin", def.Margin)
	// Rings have no viper defaults, so a rings section in a file replaces
	// the whole table; decode fills it in when no file sets one.
	for ring := range def.Rings {
		_ = v.BindEnv("gauge.rings." + ring.String() + ".outer")
		_ = v.BindEnv("gauge.rings." + ring.String() + ".inner")
	}
	buckets := make([]string, len(def.Palette.Buckets))
	for i, c := range def.Palette.Buckets {
		buckets[i] = c.String()
	}
	v.SetDefault("gauge.palette.default", def.Palette.Default.String())
	v.SetDefault("gauge.palette.buckets", buckets)
	v.SetDefault("gauge.label.font_slope", def.Label.FontSlope)
	v.SetDefault("gauge.label.font_intercept", def.Label.FontIntercept)
	v.SetDefault("gauge.label.y_slope", def.Label.YSlope)
	v.SetDefault("gauge.label.y_intercept", def.Label.YIntercept)
	v.SetDefault("gauge.locale", "en")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.max_canvas", 2000)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Engine converts the gauge section into a validated engine config.
func (c *Config) Engine() (dodecagon.Config, error) {
	g := c.Gauge
	cfg := dodecagon.Config{
		Margin: g.Margin,
		Rings:  make(map[dodecagon.Ring]dodecagon.RingSpec, len(g.Rings)),
		Label: dodecagon.LabelLayout{
			FontSlope:     g.Label.FontSlope,
			FontIntercept: g.Label.FontIntercept,
			YSlope:        g.Label.YSlope,
			YIntercept:    g.Label.YIntercept,
		},
	}
	for name, rc := range g.Rings {
		ring, err := dodecagon.ParseRing(name)
		if err != nil {
			return dodecagon.Config{}, fmt.Errorf("gauge.rings: %w", err)
		}
		cfg.Rings[ring] = dodecagon.RingSpec{Outer: rc.Outer, Inner: rc.Inner}
	}

	var err error
	if cfg.Palette.Default, err = dodecagon.ParseColor(g.Palette.Default); err != nil {
		return dodecagon.Config{}, fmt.Errorf("gauge.palette.default: %w", err)
	}
	for i, s := range g.Palette.Buckets {
		c, err := dodecagon.ParseColor(s)
		if err != nil {
			return dodecagon.Config{}, fmt.Errorf("gauge.palette.buckets[%d]: %w", i, err)
		}
		cfg.Palette.Buckets = append(cfg.Palette.Buckets, c)
	}

	if err := cfg.Validate(); err != nil {
		return dodecagon.Config{}, err
	}
	return cfg, nil
}

// Locale parses the configured label locale.
func (c *Config) Locale() (language.Tag, error) {
	if c.Gauge.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Gauge.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("gauge.locale: %w", err)
	}
	return tag, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
