package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopGenerations(t *testing.T) {
	var l Loop
	if l.Running() {
		t.Fatal("zero Loop should not be running")
	}

	first := l.Start()
	if !l.Current(first) {
		t.Fatal("first generation should be current")
	}

	second := l.Start()
	if l.Current(first) {
		t.Error("Start should supersede the previous generation")
	}
	if !l.Current(second) {
		t.Error("second generation should be current")
	}

	l.Stop()
	if l.Running() || l.Current(second) {
		t.Error("Stop should end the current run")
	}

	// Stop is idempotent
	l.Stop()
}

func TestRunStopsWhenNotAlive(t *testing.T) {
	steps := 0
	err := Run(context.Background(), time.Millisecond, func() bool { return steps < 3 }, func() { steps++ })
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if steps != 3 {
		t.Errorf("steps = %d, expected 3", steps)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, time.Hour, func() bool { return true }, func() {
		t.Error("step should not run after cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestRunDrivesSession(t *testing.T) {
	s, _, _, gen := startedSession(t)

	ticks := 0
	err := Run(context.Background(), time.Millisecond,
		func() bool { return s.Live(gen) && ticks < 61 },
		func() { s.Tick(); ticks++ })
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(s.entities) != 1 {
		t.Errorf("expected one spawned ball after 61 ticks, got %d", len(s.entities))
	}
}
