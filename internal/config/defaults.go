package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catchverse.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/catchverse.yaml and is used when no YAML can be parsed.
func Default() Config {
	return Config{
		Motion: MotionConfig{
			BaseSpeed: 0.1,
		},
		Entities: EntityConfig{
			Width:  3,
			Height: 1,
		},
		Input: InputConfig{
			Debounce:    20 * time.Millisecond,
			LedgerLimit: 100,
		},
		Display: DisplayConfig{
			Notification: 800 * time.Millisecond,
			HUDRows:      2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
