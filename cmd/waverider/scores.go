package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
	"github.com/vovakirdan/wave-rider/internal/platform/tui"
)

var (
	flagScoresLimit  int
	flagScoresBrowse bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [endless|timed]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the given mode (endless by default),
with how each run ended and how long it lasted.

Examples:
  waverider scores
  waverider scores timed --limit 20
  waverider scores --browse
  waverider scores timed --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store := openStore()
	if store == nil {
		fail("no scores database at %s", flagDBPath)
	}
	defer store.Close()

	if flagScoresBrowse {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := waverider.ParseMode(name)
	if err != nil {
		fail("%v", err)
	}
	gameID := waverider.ModeID(mode)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", waverider.New(mode).Title())
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", waverider.New(mode).Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		arg := "endless"
		if mode == sim.ModeTimed {
			arg = "timed"
		}
		fmt.Printf("Play 'waverider play %s' to set the first high score!\n", arg)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "Rank", "Score", "End", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "---", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-10s  %-6s  %s\n",
			i+1, entry.Score, entry.Reason, formatDuration(entry.Duration),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.Best, stats.Runs, stats.Average)
	}
}

func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
