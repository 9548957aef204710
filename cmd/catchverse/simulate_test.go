package main

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
	"github.com/vovakirdan/catchverse/internal/game"
	"github.com/vovakirdan/catchverse/internal/leaderboard"
	"github.com/vovakirdan/catchverse/internal/storage"
)

func newBotSession(t *testing.T, seed int64) (*game.Session, *bot, *leaderboard.Keeper) {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
	clock := &tickClock{now: time.Unix(0, 0), step: rt.TickInterval()}
	keeper := leaderboard.Load(leaderboard.NewMemoryBackend())
	s := game.NewSession(config.Default(), rt, game.WithClock(clock.Now), game.WithRecorder(keeper))
	b := &bot{rng: rand.New(rand.NewSource(seed)), accuracy: 0.05, clock: clock}
	return s, b, keeper
}

func TestBotPlaysToGameOver(t *testing.T) {
	s, b, keeper := newBotSession(t, 42)

	res, err := b.play(context.Background(), s, "bot", 200000, false)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}

	if s.Phase() != game.PhaseOver {
		t.Fatalf("phase = %v, expected over", s.Phase())
	}
	if res.ticks == 0 || res.hits > res.clicks {
		t.Errorf("result = %+v", res)
	}
	entries := keeper.Entries()
	if len(entries) != 1 || entries[0].Name != "bot" || entries[0].Score != s.Score() {
		t.Errorf("leaderboard = %v, expected the bot's result", entries)
	}
}

func TestBotTickLimit(t *testing.T) {
	s, b, keeper := newBotSession(t, 1)

	res, err := b.play(context.Background(), s, "bot", 100, false)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if res.ticks != 100 {
		t.Errorf("ticks = %d, expected 100", res.ticks)
	}
	if s.Phase() != game.PhaseActive {
		t.Errorf("phase = %v, a 100 tick game cannot have ended", s.Phase())
	}
	if keeper.Len() != 0 {
		t.Error("an unfinished game should not be recorded")
	}
}

func TestBotRealtime(t *testing.T) {
	s, b, _ := newBotSession(t, 3)
	b.clock.step = time.Millisecond

	res, err := b.play(context.Background(), s, "bot", 5, true)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if res.ticks != 5 {
		t.Errorf("ticks = %d, expected 5", res.ticks)
	}
}

func TestBotCancelled(t *testing.T) {
	s, b, _ := newBotSession(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := b.play(ctx, s, "bot", 0, false)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if res.ticks != 0 {
		t.Errorf("cancelled run played %d ticks", res.ticks)
	}
}

func TestPickTarget(t *testing.T) {
	sn := game.Snapshot{Entities: []game.Entity{
		{ID: 1, Y: 3, Kind: game.KindBenign},
		{ID: 2, Y: 9, Kind: game.KindHazard},
		{ID: 3, Y: 7, Kind: game.KindBonus},
		{ID: 4, Y: 5, Kind: game.KindBenign},
	}}

	e, ok := pickTarget(sn)
	if !ok || e.ID != 3 {
		t.Errorf("pickTarget() = %v, %v; expected ball 3", e, ok)
	}

	if _, ok := pickTarget(game.Snapshot{Entities: []game.Entity{{Kind: game.KindHazard}}}); ok {
		t.Error("pickTarget() should never choose a hazard")
	}
}

func TestPrintScores(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	entries := []leaderboard.Entry{{Name: "ada", Score: 12}, {Name: "bob", Score: 7}}
	stats := &storage.Stats{Plays: 1200, Players: 2, HighScore: 12, AvgScore: 9.5, TotalScore: 11400, LastPlayed: now.Add(-3 * time.Minute)}
	recent := []storage.Play{{Name: "ada", Score: 12, Level: 3, CreatedAt: now.Add(-3 * time.Minute)}}

	var buf bytes.Buffer
	printScores(&buf, entries, stats, recent, now)
	out := buf.String()

	for _, want := range []string{"ada", "bob", "1,200 by 2 players", "Total: 11,400", "3 minutes ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, nil, nil, nil, time.Now())
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23235":         "23235",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for in, expected := range tests {
		if got := portOf(in); got != expected {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, expected)
		}
	}
}
