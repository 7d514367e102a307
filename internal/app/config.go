package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk app configuration. Everything has a workable
// default; a missing file is not an error.
type Config struct {
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	GameType      string `yaml:"game_type"`
	Formation     string `yaml:"formation"`
	FormationFile string `yaml:"formation_file"`
	ShowNames     bool   `yaml:"show_names"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  520,
		WindowHeight: 860,
		GameType:     "soccer",
		Formation:    "4-4-2",
		ShowNames:    true,
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing
// file yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if _, err := ParseGameType(c.GameType); err != nil {
		return err
	}
	return nil
}
