package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration. Flags override it.
type fileConfig struct {
	Theme       string `yaml:"theme"`       // dark, light or auto
	Highlighter string `yaml:"highlighter"` // chroma, alternating or none
	Language    string `yaml:"language"`
	TabWidth    int    `yaml:"tab_width"`
	NoWrap      bool   `yaml:"no_wrap"`
	ReadOnly    bool   `yaml:"read_only"`
	Log         string `yaml:"log"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{Theme: "auto", Highlighter: "chroma", TabWidth: 4}
}

// loadFileConfig reads path over the defaults. A missing file is not an
// error when the path was not given explicitly.
func loadFileConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.Highlighter {
	case "", "chroma", "alternating", "none":
	default:
		return fmt.Errorf("unknown highlighter %q", c.Highlighter)
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("tab_width must not be negative")
	}
	return nil
}
