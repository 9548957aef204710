package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchverse/internal/leaderboard"
	"github.com/vovakirdan/catchverse/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top of the leaderboard, overall play statistics and the
most recent games.

Examples:
  catchverse scores
  catchverse scores --limit 25
  catchverse scores --db ./catchverse.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of leaderboard entries to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "catchverse")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	keeper := leaderboard.Load(store, leaderboard.WithLogger(logger))
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	recent, err := store.RecentPlays(5)
	if err != nil {
		return err
	}

	printScores(os.Stdout, keeper.Top(flagScoresLimit), stats, recent, time.Now())
	return nil
}

// printScores writes the leaderboard report.
func printScores(w io.Writer, entries []leaderboard.Entry, stats *storage.Stats, recent []storage.Play, now time.Time) {
	fmt.Fprintln(w, "Catchverse Leaderboard")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'catchverse play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-24s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(w, "  %-4s  %-24s  %s\n", "----", "----", "-----")

	for i, e := range entries {
		fmt.Fprintf(w, "  %-4d  %-24s  %d\n", i+1, e.Name, e.Score)
	}

	if stats == nil || stats.Plays == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games played: %s by %s\n",
		humanize.Comma(int64(stats.Plays)), pluralPlayers(stats.Players))
	fmt.Fprintf(w, "Best: %d   Average: %.1f   Total: %s\n",
		stats.HighScore, stats.AvgScore, humanize.Comma(stats.TotalScore))
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played %s\n", humanize.RelTime(stats.LastPlayed, now, "ago", "from now"))
	}

	if len(recent) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recent games:")
		for _, p := range recent {
			fmt.Fprintf(w, "  %-24s  %4d  level %-2d  %s\n",
				p.Name, p.Score, p.Level, humanize.RelTime(p.CreatedAt, now, "ago", "from now"))
		}
	}
}

func pluralPlayers(n int) string {
	if n == 1 {
		return "1 player"
	}
	return humanize.Comma(int64(n)) + " players"
}
