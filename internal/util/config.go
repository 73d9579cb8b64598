package util

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings and flags.
type Config struct {
	SeedText  string `yaml:"seed"`
	DSN       string `yaml:"dsn"`
	CountryID string `yaml:"country"`
	Theme     string `yaml:"theme"`
	Persist   bool   `yaml:"persist"`
	Version   string `yaml:"-"`
}

// LoadFile merges settings from a YAML config file into cfg. A missing
// file is not an error; flags and environment keep their values for any
// key the file does not set.
func LoadFile(path string, cfg Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, err
	}
	if file.SeedText != "" {
		cfg.SeedText = file.SeedText
	}
	if file.DSN != "" {
		cfg.DSN = file.DSN
	}
	if file.CountryID != "" {
		cfg.CountryID = file.CountryID
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Persist {
		cfg.Persist = true
	}
	return cfg, nil
}
