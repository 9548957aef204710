package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchverse/internal/core"
	"github.com/vovakirdan/catchverse/internal/game"
)

var (
	flagSimTicks    int
	flagSimAccuracy float64
	flagSimRealtime bool
	flagSimName     string
	flagSimWidth    int
	flagSimHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a bot play one game without a terminal",
	Long: `Run one headless game played by a bot. Every tick the bot clicks the
lowest white or green ball with probability --accuracy and never clicks red
ones. The result is recorded in the leaderboard like any other game.

With --realtime the game runs at --fps; otherwise it runs as fast as
possible. The run stops at game over or after --ticks ticks.

Examples:
  catchverse simulate
  catchverse simulate --accuracy 0.5 --seed 42
  catchverse simulate --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum ticks to play")
	simulateCmd.Flags().Float64Var(&flagSimAccuracy, "accuracy", 0.05, "Chance per tick that the bot clicks (0-1)")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simulateCmd.Flags().StringVar(&flagSimName, "name", "bot", "Player name to record")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width in cells")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height in cells")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagSimAccuracy < 0 || flagSimAccuracy > 1 {
		return fmt.Errorf("--accuracy must be between 0 and 1, got %v", flagSimAccuracy)
	}

	logger, err := newLogger(os.Stderr, "catchverse-sim")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	keeper, _, closeDB := openLeaderboard(logger)
	defer closeDB()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	clock := &tickClock{now: time.Now(), step: rt.TickInterval()}
	session := game.NewSession(cfg, rt,
		game.WithClock(clock.Now),
		game.WithLogger(logger),
		game.WithRecorder(keeper),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	b := &bot{
		rng:      rand.New(rand.NewSource(seed + 1)),
		accuracy: flagSimAccuracy,
		clock:    clock,
	}
	res, err := b.play(ctx, session, flagSimName, flagSimTicks, flagSimRealtime)
	if err != nil {
		return err
	}

	if session.Phase() == game.PhaseOver {
		fmt.Printf("%s scored %d (level %d) in %d ticks, %d of %d clicks landed\n",
			flagSimName, session.Score(), session.Level(), res.ticks, res.hits, res.clicks)
	} else {
		fmt.Printf("%s stopped after %d ticks with %d points and %d lives left (not recorded)\n",
			flagSimName, res.ticks, session.Score(), session.Lives())
	}
	return nil
}

// tickClock is a clock that advances one tick interval per simulated tick,
// so hit debouncing behaves the same at any simulation speed.
type tickClock struct {
	now  time.Time
	step time.Duration
}

func (c *tickClock) Now() time.Time {
	return c.now
}

func (c *tickClock) advance() {
	c.now = c.now.Add(c.step)
}

// bot plays a session by clicking balls.
type bot struct {
	rng      *rand.Rand
	accuracy float64
	clock    *tickClock
}

type botResult struct {
	ticks  int
	clicks int
	hits   int
}

// play starts a game and ticks it until game over, maxTicks or ctx ends.
// A game still running at the end is closed without being recorded.
func (b *bot) play(ctx context.Context, s *game.Session, name string, maxTicks int, realtime bool) (botResult, error) {
	var res botResult

	if err := s.SubmitName(name); err != nil {
		return res, err
	}
	gen, err := s.StartGame()
	if err != nil {
		return res, err
	}
	defer s.Close()

	step := func() {
		s.Tick()
		res.ticks++
		b.clock.advance()
		b.click(s, &res)
	}
	alive := func() bool {
		return s.Live(gen) && (maxTicks <= 0 || res.ticks < maxTicks)
	}

	if realtime {
		err := game.Run(ctx, b.clock.step, alive, step)
		if err != nil && ctx.Err() == nil {
			return res, err
		}
		return res, nil
	}

	for alive() {
		if ctx.Err() != nil {
			break
		}
		step()
	}
	return res, nil
}

// click maybe clicks the best target on the field.
func (b *bot) click(s *game.Session, res *botResult) {
	if s.Phase() != game.PhaseActive || b.rng.Float64() >= b.accuracy {
		return
	}
	target, ok := pickTarget(s.Snapshot())
	if !ok {
		return
	}
	res.clicks++
	if s.ResolveHit(target.ID, target.Kind) == game.HitApplied {
		res.hits++
	}
}

// pickTarget returns the non-hazard ball closest to the floor.
func pickTarget(sn game.Snapshot) (game.Entity, bool) {
	var best game.Entity
	found := false
	for _, e := range sn.Entities {
		if e.Kind == game.KindHazard {
			continue
		}
		if !found || e.Y > best.Y {
			best = e
			found = true
		}
	}
	return best, found
}
