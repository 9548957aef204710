package game

import (
	"context"
	"sync"
	"time"
)

// Loop is the handle of a cancellable repeating tick task.
//
// Every Start cancels the previous run and hands out a new generation.
// Whatever drives the ticks (a Bubble Tea tick command, or Run) carries the
// generation it was started with and must stop re-arming as soon as Current
// reports it stale, so at most one run can ever mutate a session.
type Loop struct {
	mu      sync.Mutex
	gen     uint64
	running bool
}

// Start stops any previous run and begins a new one.
// Returns the generation of the new run.
func (l *Loop) Start() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.running = false
	l.gen++
	l.running = true
	return l.gen
}

// Stop cancels the current run. Safe to call when nothing is running.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = false
}

// Running reports whether a run is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Current reports whether gen is the generation of the active run.
func (l *Loop) Current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running && l.gen == gen
}

// Run calls step every interval until ctx is done or alive reports false.
// It returns ctx.Err() when cancelled and nil when the run was superseded
// or stopped.
func Run(ctx context.Context, interval time.Duration, alive func() bool, step func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !alive() {
				return nil
			}
			step()
		}
	}
}
