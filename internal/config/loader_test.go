package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("motion:\n  base_speed: 0.25\ninput:\n  debounce: 35ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Motion.BaseSpeed != 0.25 {
		t.Errorf("BaseSpeed = %v, expected 0.25", cfg.Motion.BaseSpeed)
	}
	if cfg.Input.Debounce != 35*time.Millisecond {
		t.Errorf("Debounce = %v, expected 35ms", cfg.Input.Debounce)
	}
	// Keys missing from the file keep their defaults
	if cfg.Entities.Width != Default().Entities.Width {
		t.Errorf("Entities.Width = %d, expected default %d", cfg.Entities.Width, Default().Entities.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("motion: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("entities:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject a zero entity width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero speed", func(c *Config) { c.Motion.BaseSpeed = 0 }},
		{"zero height", func(c *Config) { c.Entities.Height = 0 }},
		{"negative debounce", func(c *Config) { c.Input.Debounce = -time.Millisecond }},
		{"empty ledger", func(c *Config) { c.Input.LedgerLimit = 0 }},
		{"negative hud", func(c *Config) { c.Display.HUDRows = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
