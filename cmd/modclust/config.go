// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/modclust/agglomerative"
	"github.com/katalvlaran/modclust/metrics"
)

// Config layers defaults, an optional config file, MODCLUST_* environment
// variables and explicit flags (highest).
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("algorithm.strategy", "greedy")
	v.SetDefault("algorithm.sample_size", agglomerative.DefaultSampleSize)
	v.SetDefault("algorithm.seed", agglomerative.DefaultSeed)
	v.SetDefault("algorithm.min_gain", agglomerative.DefaultMinGain)
	v.SetDefault("algorithm.max_merges", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.path", "")

	v.SetDefault("metrics.address", "")
	v.SetDefault("metrics.linger", time.Duration(0))

	v.SetEnvPrefix("MODCLUST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set overrides a key.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters by config section.
func (c *Config) Strategy() string { return c.v.GetString("algorithm.strategy") }
func (c *Config) SampleSize() int { return c.v.GetInt("algorithm.sample_size") }
func (c *Config) Seed() int64 { return c.v.GetInt64("algorithm.seed") }
func (c *Config) MinGain() float64 { return c.v.GetFloat64("algorithm.min_gain") }
func (c *Config) MaxMerges() int { return c.v.GetInt("algorithm.max_merges") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string { return strings.ToLower(c.v.GetString("logging.format")) }

func (c *Config) OutputFormat() string { return strings.ToLower(c.v.GetString("output.format")) }
func (c *Config) OutputPath() string { return c.v.GetString("output.path") }

func (c *Config) MetricsAddress() string { return c.v.GetString("metrics.address") }
func (c *Config) MetricsLinger() time.Duration { return c.v.GetDuration("metrics.linger") }

// Validate rejects values the clustering options would panic on.
func (c *Config) Validate() error {
	if _, err := agglomerative.ParseStrategy(c.Strategy()); err != nil {
		return err
	}
	if c.SampleSize() < 1 {
		return fmt.Errorf("algorithm.sample_size=%d: must be >= 1", c.SampleSize())
	}
	if g := c.MinGain(); math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("algorithm.min_gain=%g: must be finite", g)
	}
	if c.MaxMerges() < 0 {
		return fmt.Errorf("algorithm.max_merges=%d: must be >= 0", c.MaxMerges())
	}
	switch c.OutputFormat() {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("output.format=%q: want text, json or yaml", c.OutputFormat())
	}
	switch c.LogFormat() {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format=%q: want console or json", c.LogFormat())
	}

	return nil
}

// ClusterOptions translates the algorithm section. Call Validate first.
func (c *Config) ClusterOptions(logger zerolog.Logger, reg *metrics.Registry) []agglomerative.Option {
	strategy, _ := agglomerative.ParseStrategy(c.Strategy())

	return []agglomerative.Option{
		agglomerative.WithStrategy(strategy),
		agglomerative.WithSampleSize(c.SampleSize()),
		agglomerative.WithSeed(c.Seed()),
		agglomerative.WithMinGain(c.MinGain()),
		agglomerative.WithMaxMerges(c.MaxMerges()),
		agglomerative.WithLogger(logger),
		agglomerative.WithMetrics(reg),
	}
}

// CreateLogger builds a zerolog logger writing to w, falling back to info
// for an unparsable level.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	if c.LogFormat() == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "modclust").Logger()
}
