package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/catchverse/internal/config"
)

func TestAdvanceUsesLevelSpeed(t *testing.T) {
	tests := []struct {
		level    int
		expected float64
	}{
		{1, 5.1},
		{2, 5.13},
		{4, 5.19},
		{5, 5.25},
		{10, 5.5},
	}

	for _, tc := range tests {
		s, _, _, _ := startedSession(t)
		s.level = tc.level
		place(s, KindBenign, 5)

		s.advance()

		if got := s.entities[0].Y; math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("level %d: Y = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestMissPenalty(t *testing.T) {
	tests := []struct {
		kind          Kind
		expectedLives int
	}{
		{KindBenign, StartLives - 1},
		{KindHazard, StartLives},
		{KindBonus, StartLives},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s, _, _, _ := startedSession(t)
			place(s, tc.kind, s.height-0.05)

			s.advance()

			if len(s.entities) != 0 {
				t.Fatalf("ball at the floor should be culled, %d left", len(s.entities))
			}
			if s.Lives() != tc.expectedLives {
				t.Errorf("lives = %d, expected %d", s.Lives(), tc.expectedLives)
			}
			lost := countEvents(s.Events(), EventHeartLost)
			if expected := StartLives - tc.expectedLives; lost != expected {
				t.Errorf("heart lost events = %d, expected %d", lost, expected)
			}
		})
	}
}

func TestCullPenalizesOnce(t *testing.T) {
	s, _, _, _ := startedSession(t)
	e := Entity{ID: 7, Y: s.height, Kind: KindBenign}

	s.cull(e)
	s.cull(e)

	if s.Lives() != StartLives-1 {
		t.Errorf("lives = %d, expected one penalty only", s.Lives())
	}
}

func TestNoBallBelowFloor(t *testing.T) {
	s, _, _, _ := startedSession(t)
	s.level = config.MaxLevel

	for i := 0; i < 2000 && s.Phase() == PhaseActive; i++ {
		s.Tick()
		for _, e := range s.entities {
			if e.Y >= s.height {
				t.Fatalf("tick %d: ball %d at Y=%v, floor is %v", i, e.ID, e.Y, s.height)
			}
		}
	}
}

func TestThreeMissesEndGame(t *testing.T) {
	s, _, rec, gen := startedSession(t)
	s.score = 7
	s.level = config.LevelFor(7)

	for miss := 1; miss <= StartLives; miss++ {
		place(s, KindBenign, s.height-0.01)
		s.advance()
		if s.Lives() != StartLives-miss {
			t.Fatalf("after miss %d: lives = %d", miss, s.Lives())
		}
	}

	if s.Phase() != PhaseOver {
		t.Fatalf("phase = %v, expected over", s.Phase())
	}
	if s.Live(gen) {
		t.Error("loop should be stopped after game over")
	}
	if len(rec.results) != 1 {
		t.Fatalf("recorded %d results, expected 1", len(rec.results))
	}
	if got := rec.results[0]; got.name != "ada" || got.score != 7 || got.level != 2 {
		t.Errorf("recorded %+v, expected ada/7/2", got)
	}

	events := s.Events()
	if n := countEvents(events, EventGameOver); n != 1 {
		t.Errorf("game over events = %d, expected 1", n)
	}
	if n := countEvents(events, EventHeartLost); n != StartLives {
		t.Errorf("heart lost events = %d, expected %d", n, StartLives)
	}

	// Ticks after game over change nothing
	place(s, KindBenign, s.height-0.01)
	s.Tick()
	if s.Lives() != 0 || len(rec.results) != 1 {
		t.Errorf("tick after game over changed state: lives=%d results=%d", s.Lives(), len(rec.results))
	}
}

func TestSimultaneousMissesRecordOnce(t *testing.T) {
	s, _, rec, _ := startedSession(t)
	s.lives = 1
	place(s, KindBenign, s.height-0.01)
	place(s, KindBenign, s.height-0.01)

	s.advance()

	if s.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", s.Lives())
	}
	if len(rec.results) != 1 {
		t.Errorf("recorded %d results, expected 1", len(rec.results))
	}
}
