// Package config loads tool settings from a .pace file or PACE_
// environment variables.
package config

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const layoutISO = "2006-01-02"

// Config carries the settings the ledgers and housekeeping need.
type Config struct {
	// Path is the base path of the diskv store.
	Path string
	// CutoffHour is the evening hour at which new daily targets roll
	// over to the next day.
	CutoffHour int
	// Activation is the date monthly stats become visible.
	Activation time.Time
	// TrackStart is the first tracked date, used as the calendar's
	// initial month.
	TrackStart time.Time
}

// Load reads configuration with viper, falling back to defaults. A
// missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.pace.db")
	v.SetDefault("cutoff-hour", 20)
	v.SetDefault("activation", "2025-08-01")
	v.SetDefault("track-start", "2025-07-03")
	v.SetConfigName(".pace") // .yaml is implicit
	v.SetEnvPrefix("PACE")
	v.AutomaticEnv()
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}

	activation, err := time.ParseInLocation(layoutISO, v.GetString("activation"), time.Local)
	if err != nil {
		return nil, fmt.Errorf("config: activation date: %w", err)
	}
	trackStart, err := time.ParseInLocation(layoutISO, v.GetString("track-start"), time.Local)
	if err != nil {
		return nil, fmt.Errorf("config: track-start date: %w", err)
	}

	return &Config{
		Path:       path,
		CutoffHour: v.GetInt("cutoff-hour"),
		Activation: activation,
		TrackStart: trackStart,
	}, nil
}
