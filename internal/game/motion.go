package game

import (
	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
)

// advance moves every ball down by one tick and culls those that reached
// the floor.
func (s *Session) advance() {
	speed := s.cfg.Motion.BaseSpeed * config.SpeedMultiplierFor(s.level)

	var missed []Entity
	kept := s.entities[:0]
	for _, e := range s.entities {
		e.Y += speed
		if e.Y >= s.height {
			missed = append(missed, e)
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept

	for _, e := range missed {
		s.cull(e)
	}
}

// cull applies the floor-exit rule to a ball that left the playfield.
// Only a benign ball counts as a miss; hazards and bonuses matter only
// when clicked.
func (s *Session) cull(e Entity) {
	if e.Kind != KindBenign || s.phase != PhaseActive {
		return
	}
	if _, done := s.penalized[e.ID]; done {
		return
	}
	s.penalized[e.ID] = struct{}{}
	s.logger.Debug("ball missed", "id", e.ID, "lives", s.lives-1)
	s.loseLife()
}

// loseLife removes one life and ends the session when none are left.
func (s *Session) loseLife() {
	before := s.lives
	s.lives = core.Clamp(s.lives-1, 0, MaxLives)
	if s.lives < before {
		s.emit(Event{Kind: EventHeartLost})
	}
	if s.lives == 0 {
		s.gameOver()
	}
}
