package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catchverse/internal/core"
	"github.com/vovakirdan/catchverse/internal/platform/tui"
)

var (
	flagName    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. Your terminal must report mouse clicks.

Controls:
  Left click  - Catch a ball
  Enter       - Submit name / start game
  R           - Play again (after game over)
  X/Esc       - Exit to name entry (after game over)
  S           - Copy your score to the clipboard (after game over)
  Q/Ctrl+C    - Quit

Logs go to --log-file so they never draw over the game.

Examples:
  catchverse play
  catchverse play --name ada
  catchverse play --config ./fast.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Pre-fill the player name")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.catchverse/catchverse.log", "Path to log file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "catchverse")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	keeper, _, closeDB := openLeaderboard(logger)
	defer closeDB()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting local game", "size", [2]int{width, height}, "fps", flagFPS)
	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Keeper:  keeper,
		Logger:  logger,
		Share:   tui.LocalShare(os.Stderr),
		Name:    flagName,
	})
}
