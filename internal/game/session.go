package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
)

// Lives at the start of a play-through and the most a player can hold.
const (
	StartLives = 3
	MaxLives   = 5
)

var (
	// ErrNameRequired is returned by SubmitName for a blank name.
	ErrNameRequired = errors.New("game: player name is required")

	// ErrWrongPhase is returned when a transition is requested from a
	// phase that does not allow it.
	ErrWrongPhase = errors.New("game: operation not allowed in current phase")
)

// Phase is the state of a session.
type Phase int

const (
	PhaseIdle         Phase = iota // Waiting for a player name
	PhaseInstructions              // Name set, game not started
	PhaseActive                    // Loop running
	PhaseOver                      // Lives ran out, result recorded
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInstructions:
		return "instructions"
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Recorder receives the result of every finished play-through.
type Recorder interface {
	Record(name string, score, level int)
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now for hit debouncing.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets where finished play-throughs are recorded.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.results = r
	}
}

// Session owns all state of one player's games: the phase, the counters,
// the live balls and the tick loop handle. Nothing is shared between
// sessions except the Recorder.
type Session struct {
	cfg     config.Config
	width   float64 // Playfield width in cells
	height  float64 // Playfield height in cells (screen minus HUD)
	rng     *rand.Rand
	now     func() time.Time
	logger  *log.Logger
	results Recorder
	loop    Loop

	phase      Phase
	playerName string
	score      int
	lives      int
	level      int

	entities  []Entity
	nextID    int64 // Never reset, so ids stay unique for the session's lifetime
	spawner   spawner
	ledger    *Ledger
	penalized map[int64]struct{}
	lastHit   time.Time
	events    []Event
	ticks     int
}

// NewSession creates an idle session for a screen of the given size.
// A zero seed in rt seeds the RNG from the current time.
func NewSession(cfg config.Config, rt core.RuntimeConfig, opts ...Option) *Session {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
		logger:    log.New(io.Discard),
		ledger:    NewLedger(cfg.Input.LedgerLimit),
		penalized: make(map[int64]struct{}),
		phase:     PhaseIdle,
		lives:     StartLives,
		level:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Resize(rt.ScreenW, rt.ScreenH)
	return s
}

// SubmitName sets the player name and moves to the instructions screen.
func (s *Session) SubmitName(name string) error {
	if s.phase != PhaseIdle {
		return fmt.Errorf("submit name in phase %s: %w", s.phase, ErrWrongPhase)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	s.playerName = name
	s.phase = PhaseInstructions
	return nil
}

// StartGame begins a play-through. The previous loop is stopped and every
// ball, ledger entry and counter is cleared before the new loop starts.
// Returns the generation of the new loop; tick drivers pass it to Live.
func (s *Session) StartGame() (uint64, error) {
	if s.phase != PhaseInstructions {
		return 0, fmt.Errorf("start game in phase %s: %w", s.phase, ErrWrongPhase)
	}

	s.loop.Stop()
	s.clearField()
	s.score = 0
	s.lives = StartLives
	s.level = 1
	s.ticks = 0
	s.lastHit = time.Time{}
	s.events = s.events[:0]
	s.phase = PhaseActive

	gen := s.loop.Start()
	s.logger.Info("game started", "player", s.playerName, "loop", gen)
	return gen, nil
}

// ResetGame returns from the game-over screen to the instructions screen,
// keeping the player name (Play Again).
func (s *Session) ResetGame() error {
	if s.phase != PhaseOver {
		return fmt.Errorf("reset game in phase %s: %w", s.phase, ErrWrongPhase)
	}
	s.loop.Stop()
	s.clearField()
	s.phase = PhaseInstructions
	return nil
}

// ExitGame returns from the game-over screen to name entry.
func (s *Session) ExitGame() error {
	if s.phase != PhaseOver {
		return fmt.Errorf("exit game in phase %s: %w", s.phase, ErrWrongPhase)
	}
	s.loop.Stop()
	s.clearField()
	s.playerName = ""
	s.phase = PhaseIdle
	return nil
}

// Close stops the tick loop. Called when the display surface goes away.
func (s *Session) Close() {
	s.loop.Stop()
}

// Live reports whether gen is the generation of the running loop.
// A tick driver holding a stale generation must stop.
func (s *Session) Live(gen uint64) bool {
	return s.loop.Current(gen)
}

// Tick advances the game by one frame: spawn, then motion and culling.
func (s *Session) Tick() {
	if s.phase != PhaseActive {
		return
	}
	s.ticks++
	s.scheduleSpawn()
	s.advance()
}

// Resize sets the playfield from the screen size. Balls left outside the
// new bounds are dropped without penalty.
func (s *Session) Resize(screenW, screenH int) {
	s.width = float64(core.Max(screenW, 1))
	s.height = float64(core.Max(screenH-s.cfg.Display.HUDRows, 1))

	maxX := core.Max(int(s.width)-s.cfg.Entities.Width, 0)
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Y >= s.height {
			continue
		}
		if e.X > float64(maxX) {
			e.X = float64(maxX)
		}
		kept = append(kept, e)
	}
	s.entities = kept
}

// Events returns the notifications raised since the last call.
func (s *Session) Events() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// PlayerName returns the submitted name, or "" while idle.
func (s *Session) PlayerName() string {
	return s.playerName
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Level returns the current difficulty level.
func (s *Session) Level() int {
	return s.level
}

// updateLevel re-derives the level from the score and announces a rise.
func (s *Session) updateLevel() {
	level := config.LevelFor(s.score)
	if level <= s.level {
		return
	}
	s.level = level
	s.emit(Event{
		Kind:       EventLevelUp,
		Level:      level,
		SpeedBonus: config.SpeedBonusPercent(level),
		Extreme:    config.IsExtreme(level),
	})
	s.logger.Debug("level up", "level", level, "speed", config.SpeedMultiplierFor(level), "spawn_every", config.SpawnIntervalFor(level))
}

// gameOver ends the play-through and records its result exactly once.
func (s *Session) gameOver() {
	if s.phase != PhaseActive {
		return
	}
	s.phase = PhaseOver
	s.loop.Stop()
	s.ledger.Clear()

	if s.results != nil {
		s.results.Record(s.playerName, s.score, s.level)
	}
	s.emit(Event{Kind: EventGameOver, Score: s.score})
	s.logger.Info("game over", "player", s.playerName, "score", s.score, "level", s.level, "ticks", s.ticks)
}

// clearField removes every ball and forgets resolved and penalized ids.
func (s *Session) clearField() {
	s.entities = s.entities[:0]
	s.spawner.reset()
	s.ledger.Clear()
	clear(s.penalized)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
