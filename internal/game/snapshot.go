package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	HeartChar = '♥'
	RuleChar  = '─'
)

// Snapshot is a copy of everything the display needs to draw one frame
// and to map a click back to a ball.
type Snapshot struct {
	Phase      Phase
	PlayerName string
	Score      int
	Lives      int
	Level      int
	Speed      float64 // Current speed multiplier
	Entities   []Entity
	EntityW    int
	EntityH    int
	Top        int // Screen row where the playfield starts
	Width      int // Playfield width in cells
	Height     int // Playfield height in cells
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	entities := make([]Entity, len(s.entities))
	copy(entities, s.entities)

	return Snapshot{
		Phase:      s.phase,
		PlayerName: s.playerName,
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.level,
		Speed:      config.SpeedMultiplierFor(s.level),
		Entities:   entities,
		EntityW:    s.cfg.Entities.Width,
		EntityH:    s.cfg.Entities.Height,
		Top:        s.cfg.Display.HUDRows,
		Width:      int(s.width),
		Height:     int(s.height),
	}
}

// EntityAt returns the ball drawn at screen cell (x, y). Later balls are
// drawn over earlier ones, so the newest ball under the cell wins.
func (sn Snapshot) EntityAt(x, y int) (Entity, bool) {
	py := y - sn.Top
	for i := len(sn.Entities) - 1; i >= 0; i-- {
		e := sn.Entities[i]
		if e.Rect(sn.EntityW, sn.EntityH).Contains(x, py) {
			return e, true
		}
	}
	return Entity{}, false
}

// Render draws the HUD and the balls. The screen is cleared first.
func (sn Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	if sn.Top > 0 {
		sn.drawHUD(dst)
	}

	for _, e := range sn.Entities {
		r := e.Rect(sn.EntityW, sn.EntityH)
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				dst.SetColored(r.X+dx, sn.Top+r.Y+dy, BallChar, e.Kind.Color())
			}
		}
	}
}

// drawHUD draws score, level and hearts on the first row and a rule under it.
func (sn Snapshot) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", sn.Score), core.ColorBrightYellow)

	levelColor := core.ColorCyan
	if config.IsExtreme(sn.Level) {
		levelColor = core.ColorOrange
	}
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d  x%.1f", sn.Level, sn.Speed), levelColor)

	hearts := strings.Repeat(string(HeartChar), sn.Lives)
	dst.DrawTextColored(dst.Width()-MaxLives-1, 0, hearts, core.ColorRed)

	if sn.Top > 1 {
		dst.DrawHLine(0, 1, dst.Width(), RuleChar, core.ColorGray)
	}
}
