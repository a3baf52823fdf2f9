// Package config loads pdficon settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	OutputDir     string `env:"PDFICON_OUTPUT_DIR"     envDefault:"."`
	Name          string `env:"PDFICON_NAME"           envDefault:"app_icon"`
	Font          string `env:"PDFICON_FONT"           envDefault:"embedded"`
	Palette       string `env:"PDFICON_PALETTE"        envDefault:"default"`
	Label         string `env:"PDFICON_LABEL"          envDefault:"PDF"`
	LogLevel      string `env:"PDFICON_LOG_LEVEL"      envDefault:"info"`
	SettingsDB    string `env:"PDFICON_SETTINGS_DB"    envDefault:"settings.db"`
	SettingsTable string `env:"PDFICON_SETTINGS_TABLE" envDefault:"settings"`
}

// Default returns the configuration used when the environment is empty. The
// values come from the envDefault tags.
func Default() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
