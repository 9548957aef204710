package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/leaderboard"
	"github.com/vovakirdan/catchverse/internal/storage"
)

// newLogger creates a logger writing to w at the level named by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens path for appending, creating parent directories.
// A leading ~ is expanded to the home directory.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadConfig loads the game configuration named by --config.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded",
		"base_speed", cfg.Motion.BaseSpeed,
		"debounce", cfg.Input.Debounce,
		"ledger_limit", cfg.Input.LedgerLimit,
	)
	return cfg, nil
}

// openLeaderboard loads the leaderboard from the --db database. If the
// database cannot be opened the leaderboard lives in memory only.
// The returned close function is always safe to call.
func openLeaderboard(logger *log.Logger) (*leaderboard.Keeper, *storage.Store, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("leaderboard database unavailable, scores will not be kept", "db", flagDBPath, "err", err)
		return leaderboard.Load(leaderboard.NewMemoryBackend(), leaderboard.WithLogger(logger)), nil, func() {}
	}

	keeper := leaderboard.Load(store,
		leaderboard.WithLogger(logger),
		leaderboard.WithHistory(store),
	)
	return keeper, store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close database", "err", err)
		}
	}
}
