package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/catchverse/internal/config"
)

// spawner decides once per tick whether a new ball enters the playfield.
type spawner struct {
	counter int
}

// reset restarts the countdown to the next spawn.
func (sp *spawner) reset() {
	sp.counter = 0
}

// tick advances the countdown. Returns true, and restarts the countdown,
// when the spawn interval of the given level has elapsed.
func (sp *spawner) tick(level int) bool {
	sp.counter++
	if sp.counter < config.SpawnIntervalFor(level) {
		return false
	}
	sp.counter = 0
	return true
}

// newEntity rolls a ball at the top of a playfield of the given width.
// The left edge is uniform over the positions where the whole ball fits.
func newEntity(id int64, rng *rand.Rand, fieldW float64, entityW int) Entity {
	span := fieldW - float64(entityW)
	x := 0.0
	if span > 0 {
		x = math.Floor(rng.Float64() * span)
	}
	return Entity{
		ID:   id,
		X:    x,
		Y:    0,
		Kind: KindFor(rng.Float64()),
	}
}

// scheduleSpawn runs the spawn step of a tick.
func (s *Session) scheduleSpawn() {
	if s.phase != PhaseActive {
		return
	}
	if !s.spawner.tick(s.level) {
		return
	}
	e := newEntity(s.nextID, s.rng, s.width, s.cfg.Entities.Width)
	s.nextID++
	s.entities = append(s.entities, e)
}
