package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
	flagScoresFor   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  blockfall scores
  blockfall scores --limit 25
  blockfall scores --player ada
  blockfall scores -i        # interactive table
  blockfall scores --clear   # delete every score`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresFor, "player", "", "Only show scores of this player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			fail("%v", err)
		}
		fmt.Println("All scores cleared.")
		return

	case flagInteractive:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresFor != "" {
		scores, err = store.PlayerScores(flagScoresFor, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Blockfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %s\n",
			i+1, entry.Player, entry.Score, entry.Lines, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
			stats.HighScore, stats.Games, stats.AvgScore, stats.TotalLines)
	}
}
