package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
)

// fakeClock is a manually advanced clock for debounce tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type result struct {
	name  string
	score int
	level int
}

// memRecorder collects recorded play-throughs.
type memRecorder struct {
	results []result
}

func (r *memRecorder) Record(name string, score, level int) {
	r.results = append(r.results, result{name: name, score: score, level: level})
}

// testRuntime is an 80x24 screen; with the default 2 HUD rows the
// playfield is 80x22.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func newTestSession(t *testing.T) (*Session, *fakeClock, *memRecorder) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rec := &memRecorder{}
	s := NewSession(config.Default(), testRuntime(), WithClock(clock.Now), WithRecorder(rec))
	return s, clock, rec
}

// startedSession returns a session in the active phase and its loop generation.
func startedSession(t *testing.T) (*Session, *fakeClock, *memRecorder, uint64) {
	t.Helper()
	s, clock, rec := newTestSession(t)
	if err := s.SubmitName("ada"); err != nil {
		t.Fatalf("SubmitName() failed: %v", err)
	}
	gen, err := s.StartGame()
	if err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	return s, clock, rec, gen
}

// place puts a ball of the given kind at (0, y) and returns it.
func place(s *Session, kind Kind, y float64) Entity {
	e := Entity{ID: s.nextID, X: 0, Y: y, Kind: kind}
	s.nextID++
	s.entities = append(s.entities, e)
	return e
}

// hit resolves a click well outside the debounce window of the previous one.
func hit(s *Session, clock *fakeClock, e Entity) HitOutcome {
	clock.Advance(time.Second)
	return s.ResolveHit(e.ID, e.Kind)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
