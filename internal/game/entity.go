// Package game implements the Catchverse session: falling balls spawn at
// the top of the playfield, fall faster as the score grows, and are
// resolved either by a player's click or by reaching the floor.
//
// A Session is driven from a single goroutine. The platform calls Tick once
// per frame and ResolveHit whenever the player clicks; both mutate the same
// entity list, and an entity is removed by whichever of the two reaches it
// first.
package game

import (
	"math"

	"github.com/vovakirdan/catchverse/internal/core"
)

// Kind is the type of a falling ball.
type Kind int

const (
	KindBenign Kind = iota // White ball: click to score
	KindHazard             // Red ball: clicking it costs a life
	KindBonus              // Green ball: clicking it restores a life
)

// Cumulative thresholds for the kind roll against a uniform [0,1) draw.
const (
	benignThreshold = 0.75
	hazardThreshold = 0.90
)

// KindFor maps a uniform draw in [0,1) to a kind: 75% benign, 15% hazard,
// 10% bonus.
func KindFor(u float64) Kind {
	switch {
	case u < benignThreshold:
		return KindBenign
	case u < hazardThreshold:
		return KindHazard
	default:
		return KindBonus
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBenign:
		return "benign"
	case KindHazard:
		return "hazard"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindHazard:
		return core.ColorBrightRed
	case KindBonus:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// Entity is a falling ball. X and Y are the top-left corner in playfield
// cells; Y grows downwards.
type Entity struct {
	ID   int64
	X    float64
	Y    float64
	Kind Kind
}

// Rect returns the cells the entity covers, in playfield coordinates.
func (e Entity) Rect(w, h int) core.Rect {
	return core.NewRect(int(math.Floor(e.X)), int(math.Floor(e.Y)), w, h)
}
