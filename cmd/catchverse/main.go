// catchverse is a falling-balls click game for the terminal.
//
// Usage:
//
//	catchverse play                - Play in this terminal
//	catchverse serve               - Start SSH server for remote play
//	catchverse scores              - Show the leaderboard and play stats
//	catchverse simulate            - Let a bot play one game headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.catchverse/catchverse.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchverse",
	Short: "Catchverse - click the falling balls before they hit the floor",
	Long: `Catchverse is a terminal click game. Balls fall from the top of the
screen; click white ones to score, green ones to gain a heart, and stay
away from red ones. Every white ball that reaches the floor costs a heart.

Available commands:
  play      - Play in this terminal (needs mouse support)
  serve     - Start SSH server for remote play
  scores    - View the leaderboard
  simulate  - Headless bot play-through

Examples:
  catchverse play
  catchverse play --name ada
  catchverse serve --ssh :2222
  catchverse scores --limit 20
  catchverse simulate --accuracy 0.8 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catchverse/catchverse.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
