package leaderboard

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catchverse/internal/storage"
)

// Keeper is the process-wide leaderboard. It is loaded once, appended to on
// every game over and rewritten in full to its backend. Persistence errors
// are logged and never reach the game.
//
// A Keeper is safe for use by concurrent sessions.
type Keeper struct {
	mu      sync.Mutex
	entries []Entry
	backend Backend
	history History
	logger  *log.Logger
}

// KeeperOption configures a Keeper.
type KeeperOption func(*Keeper)

// WithLogger sets the logger for persistence warnings.
func WithLogger(logger *log.Logger) KeeperOption {
	return func(k *Keeper) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithHistory also appends every result to h.
func WithHistory(h History) KeeperOption {
	return func(k *Keeper) {
		k.history = h
	}
}

// Load reads the leaderboard from backend. A missing document starts an
// empty leaderboard; an unreadable or corrupt one does too, with a warning.
func Load(backend Backend, opts ...KeeperOption) *Keeper {
	k := &Keeper{
		backend: backend,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(k)
	}

	data, err := backend.Get(Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			k.logger.Warn("leaderboard unavailable, starting empty", "err", err)
		}
		return k
	}

	entries, err := Decode(data)
	if err != nil {
		k.logger.Warn("leaderboard corrupt, starting empty", "err", err)
		return k
	}
	k.entries = entries
	k.logger.Debug("leaderboard loaded", "entries", len(entries))
	return k
}

// Record adds a finished play-through and persists the whole leaderboard.
// It satisfies game.Recorder.
func (k *Keeper) Record(name string, score, level int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.entries = Insert(k.entries, Entry{Name: name, Score: score})

	data, err := Encode(k.entries)
	if err == nil {
		err = k.backend.Put(Key, data)
	}
	if err != nil {
		k.logger.Warn("cannot save leaderboard", "err", err)
	}

	if k.history != nil {
		if _, err := k.history.SavePlay(name, score, level); err != nil {
			k.logger.Warn("cannot save play history", "err", err)
		}
	}

	k.logger.Info("result recorded", "player", name, "score", score, "level", level, "rank", k.rankLocked(name, score))
}

// Entries returns a copy of the whole leaderboard, best first.
func (k *Keeper) Entries() []Entry {
	return k.Top(0)
}

// Top returns a copy of the best n entries. n <= 0 returns all of them.
func (k *Keeper) Top(n int) []Entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	if n <= 0 || n > len(k.entries) {
		n = len(k.entries)
	}
	out := make([]Entry, n)
	copy(out, k.entries[:n])
	return out
}

// Len returns the number of entries.
func (k *Keeper) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// rankLocked returns the 1-based position of the last entry matching name
// and score. Equal scores keep insertion order, so that is the newest one.
func (k *Keeper) rankLocked(name string, score int) int {
	for i := len(k.entries) - 1; i >= 0; i-- {
		if k.entries[i].Name == name && k.entries[i].Score == score {
			return i + 1
		}
	}
	return 0
}
