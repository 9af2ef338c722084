package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults match the original Berkeley BART chart.
const (
	DefaultWidth        = 600
	DefaultHeight       = 600
	DefaultMaxRadius    = 210
	DefaultTickInterval = 5000
	DefaultBackground   = "#EAEAEA"
	DefaultForeground   = "#333333"
	DefaultTickColor    = "#FFFFFF"
)

// Default returns the configuration used when no config file is present.
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads and validates the application configuration. The
// explicit path is tried first when non-empty, then config.yml in the
// working directory. A missing file is not an error: the chart must run as
// a plain pipeline step with defaults only.
func LoadAppConfig(path string) (AppConfig, error) {
	paths := []string{"config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		// An explicitly requested file must exist; the implicit one may not.
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Chart); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Dataset); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = DefaultWidth
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = DefaultHeight
	}
	if cfg.Chart.MaxRadius == 0 {
		cfg.Chart.MaxRadius = DefaultMaxRadius
	}
	if cfg.Chart.TickInterval == 0 {
		cfg.Chart.TickInterval = DefaultTickInterval
	}
	if cfg.Chart.Background == "" {
		cfg.Chart.Background = DefaultBackground
	}
	if cfg.Chart.Foreground == "" {
		cfg.Chart.Foreground = DefaultForeground
	}
	if cfg.Chart.TickColor == "" {
		cfg.Chart.TickColor = DefaultTickColor
	}
	if cfg.Dataset.OriginColumn == "" {
		cfg.Dataset.OriginColumn = "origin"
	}
	if cfg.Dataset.DestinationColumn == "" {
		cfg.Dataset.DestinationColumn = "destination"
	}
	if cfg.Dataset.CountColumn == "" {
		cfg.Dataset.CountColumn = "count"
	}
	if cfg.Dataset.AggregateKey == "" {
		cfg.Dataset.AggregateKey = "origin"
	}
}
