package game

import (
	"github.com/vovakirdan/catchverse/internal/core"
)

// HitOutcome describes what ResolveHit did with an input event.
type HitOutcome int

const (
	HitApplied   HitOutcome = iota // The ball was removed and its effect applied
	HitInactive                    // No game is running
	HitDebounced                   // Too soon after the previous hit
	HitDuplicate                   // This ball was already resolved
	HitStale                       // The ball is gone (culled) or is not of that kind
)

// String returns the name of the outcome.
func (o HitOutcome) String() string {
	switch o {
	case HitApplied:
		return "applied"
	case HitInactive:
		return "inactive"
	case HitDebounced:
		return "debounced"
	case HitDuplicate:
		return "duplicate"
	case HitStale:
		return "stale"
	default:
		return "unknown"
	}
}

// ResolveHit handles a click on the ball with the given id and kind.
//
// A hit is applied at most once per ball: hits arriving within the debounce
// window of the previous one are dropped, and ids already in the ledger are
// ignored. A ball that was culled before the click arrived cannot be hit,
// so a ball yields either a miss penalty or a hit effect, never both.
func (s *Session) ResolveHit(id int64, kind Kind) HitOutcome {
	if s.phase != PhaseActive {
		return HitInactive
	}

	now := s.now()
	if !s.lastHit.IsZero() && now.Sub(s.lastHit) < s.cfg.Input.Debounce {
		return HitDebounced
	}
	s.lastHit = now

	if s.ledger.Has(id) {
		s.logger.Debug("hit ignored", "id", id, "reason", HitDuplicate)
		return HitDuplicate
	}
	s.ledger.Add(id)
	defer s.ledger.Compact()

	idx := s.indexOf(id)
	if idx < 0 || s.entities[idx].Kind != kind {
		s.logger.Debug("hit ignored", "id", id, "reason", HitStale)
		return HitStale
	}

	e := s.entities[idx]
	s.entities = append(s.entities[:idx], s.entities[idx+1:]...)
	s.applyHit(e.Kind)
	return HitApplied
}

// applyHit applies the effect of clicking a ball of the given kind.
func (s *Session) applyHit(kind Kind) {
	switch kind {
	case KindBenign:
		s.score++
		s.updateLevel()
	case KindBonus:
		s.lives = core.Min(s.lives+1, MaxLives)
	case KindHazard:
		s.loseLife()
	}
}

// indexOf returns the position of the live ball with the given id, or -1.
func (s *Session) indexOf(id int64) int {
	for i, e := range s.entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}
