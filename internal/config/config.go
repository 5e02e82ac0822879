// Package config loads spanloom settings: defaults, then an optional
// spanloom.toml, then SPANLOOM_* environment variables. CLI flags override
// all of it in the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const projectConfigFile = "spanloom.toml"

// Config is the full tool configuration.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Viewer ViewerConfig `toml:"viewer"`
}

// ChartConfig holds chart geometry and styling shared by the terminal and
// SVG renderers.
type ChartConfig struct {
	WeekDays   int  `toml:"week_days"`   // days per week column
	DayCells   int  `toml:"day_cells"`   // terminal cells per day
	TitleWidth int  `toml:"title_width"` // terminal title column width
	Width      int  `toml:"width"`       // SVG canvas width in px
	RowHeight  int  `toml:"row_height"`  // SVG row height in px
	BarHeight  int  `toml:"bar_height"`  // SVG bar height in px
	Dark       bool `toml:"dark"`
}

// ViewerConfig holds the HTTP viewer settings.
type ViewerConfig struct {
	Listen string `toml:"listen"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			WeekDays:   5,
			DayCells:   2,
			TitleWidth: 24,
			Width:      1000,
			RowHeight:  40,
			BarHeight:  20,
		},
		Viewer: ViewerConfig{Listen: "127.0.0.1:0"},
	}
}

// Load builds the configuration in priority order: defaults, config file,
// environment. path may be empty, in which case spanloom.toml in the
// current directory is used when present; a missing file is not an error,
// an unreadable or malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = projectConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	} else if explicit {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	loadFromEnv(&cfg)
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SPANLOOM_DARK"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Chart.Dark = b
		}
	}
	if v, ok := os.LookupEnv("SPANLOOM_LISTEN"); ok {
		cfg.Viewer.Listen = v
	}
	if v, ok := os.LookupEnv("SPANLOOM_WEEK_DAYS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Chart.WeekDays = n
		}
	}
}
