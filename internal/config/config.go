// Package config provides YAML-based game configuration loading and the
// difficulty model for Catchverse.
package config

import (
	"fmt"
	"time"
)

// Config contains all tunable parameters of a Catchverse session.
// Rules that define the game itself (level tiers, spawn odds, lives) are
// not configurable and live next to the code that applies them.
type Config struct {
	Motion   MotionConfig  `yaml:"motion"`
	Entities EntityConfig  `yaml:"entities"`
	Input    InputConfig   `yaml:"input"`
	Display  DisplayConfig `yaml:"display"`
}

// MotionConfig defines how fast entities fall.
type MotionConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // Cells per tick at level 1
}

// EntityConfig defines the on-screen footprint of a falling ball.
type EntityConfig struct {
	Width  int `yaml:"width"`  // Width in cells
	Height int `yaml:"height"` // Height in cells
}

// InputConfig defines hit de-duplication parameters.
type InputConfig struct {
	Debounce    time.Duration `yaml:"debounce"`     // Minimum gap between two accepted hits
	LedgerLimit int           `yaml:"ledger_limit"` // Resolved ids kept before the ledger is cleared
}

// DisplayConfig defines presentation timing and layout.
type DisplayConfig struct {
	Notification time.Duration `yaml:"notification"` // How long banners stay visible
	HUDRows      int           `yaml:"hud_rows"`     // Rows reserved above the playfield
}

// Validate reports the first parameter that cannot produce a playable game.
func (c Config) Validate() error {
	switch {
	case c.Motion.BaseSpeed <= 0:
		return fmt.Errorf("config: motion.base_speed must be positive, got %v", c.Motion.BaseSpeed)
	case c.Entities.Width < 1:
		return fmt.Errorf("config: entities.width must be at least 1, got %d", c.Entities.Width)
	case c.Entities.Height < 1:
		return fmt.Errorf("config: entities.height must be at least 1, got %d", c.Entities.Height)
	case c.Input.Debounce < 0:
		return fmt.Errorf("config: input.debounce must not be negative, got %v", c.Input.Debounce)
	case c.Input.LedgerLimit < 1:
		return fmt.Errorf("config: input.ledger_limit must be at least 1, got %d", c.Input.LedgerLimit)
	case c.Display.Notification < 0:
		return fmt.Errorf("config: display.notification must not be negative, got %v", c.Display.Notification)
	case c.Display.HUDRows < 0:
		return fmt.Errorf("config: display.hud_rows must not be negative, got %d", c.Display.HUDRows)
	}
	return nil
}
