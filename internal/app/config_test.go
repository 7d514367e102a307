package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected defaults for %q, got error %v", path, err)
		}
		if cfg != DefaultConfig() {
			t.Fatalf("expected untouched defaults for %q, got %+v", path, cfg)
		}
	}
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `window_width: 700
window_height: 1000
fullscreen: true
game_type: futsal
formation: 2-2
show_names: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.WindowWidth != 700 || cfg.WindowHeight != 1000 || !cfg.Fullscreen {
		t.Fatalf("expected window overrides applied, got %+v", cfg)
	}
	if cfg.GameType != "futsal" || cfg.Formation != "2-2" || cfg.ShowNames {
		t.Fatalf("expected board overrides applied, got %+v", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"zero window": "window_width: 0\n",
		"bad game":    "game_type: rugby\n",
		"bad yaml":    "window_width: [\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected %s to error", name)
		}
	}
}
