// Package config loads runtime settings from .rmxtheory.yaml, RMXTHEORY_*
// environment variables and command line flags.
package config

import (
	"fmt"

	"github.com/rapidmidiex/rmxtheory/chart"
	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/vpiano"
	"github.com/spf13/viper"
)

// ChartConfig selects the circle-of-fifths range and export format of the
// interval chart.
type ChartConfig struct {
	From   int    `mapstructure:"from"`
	To     int    `mapstructure:"to"`
	Format string `mapstructure:"format"`
}

type PianoConfig struct {
	// Octave of the lowest C on the virtual keyboard.
	Octave int `mapstructure:"octave"`
}

// Config holds all runtime configuration.
type Config struct {
	// "aug" or "dim": spelling of six half steps.
	Tritone string      `mapstructure:"tritone"`
	Unicode bool        `mapstructure:"unicode"`
	Chart   ChartConfig `mapstructure:"chart"`
	Piano   PianoConfig `mapstructure:"piano"`
	// Log destination for the TUI. Empty disables logging there.
	LogFile string `mapstructure:"log_file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("tritone", interval.AugmentedFourth.String())
	viper.SetDefault("unicode", false)
	viper.SetDefault("chart.from", chart.DefaultFrom)
	viper.SetDefault("chart.to", chart.DefaultTo)
	viper.SetDefault("chart.format", chart.JSON.String())
	viper.SetDefault("piano.octave", int(vpiano.C4))
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that are parsed later on.
func (c Config) Validate() error {
	if _, err := c.TritoneChoice(); err != nil {
		return fmt.Errorf("tritone: %w", err)
	}
	if _, err := c.ChartFormat(); err != nil {
		return fmt.Errorf("chart.format: %w", err)
	}
	if c.Chart.From > c.Chart.To {
		return fmt.Errorf("chart range %d..%d is empty", c.Chart.From, c.Chart.To)
	}
	if c.Piano.Octave < int(vpiano.Cneg1) || c.Piano.Octave > int(vpiano.C8) {
		return fmt.Errorf("piano.octave %d is outside %d..%d", c.Piano.Octave, vpiano.Cneg1, vpiano.C8)
	}
	return nil
}

func (c Config) TritoneChoice() (interval.Tritone, error) {
	return interval.ParseTritone(c.Tritone)
}

func (c Config) ChartFormat() (chart.Format, error) {
	return chart.ParseFormat(c.Chart.Format)
}

// Evaluator returns the expression evaluator these settings describe.
func (c Config) Evaluator() expr.Evaluator {
	t, _ := c.TritoneChoice()
	return expr.Evaluator{Tritone: t, Unicode: c.Unicode}
}
