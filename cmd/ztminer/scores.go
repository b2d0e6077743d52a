package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/games/ztminer"
	"github.com/vovakirdan/zt-miner/internal/platform/tui"
	"github.com/vovakirdan/zt-miner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best ZT Miner runs.

Examples:
  ztminer scores
  ztminer scores --limit 25
  ztminer scores --tui
  ztminer scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to list")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete every recorded ZT Miner score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearScores(ztminer.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, ztminer.GameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(ztminer.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - ZT Miner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ztminer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "Rank", "Pilot", "Score", "Reached", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "----", "-----", "-----", "-------", "----")

	for i, entry := range scores {
		pilot := entry.Profile
		if pilot == "" {
			pilot = "anonymous"
		}
		reached := config.ThemeName(entry.Layer)
		if entry.Victory {
			reached = "Surface"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-10s  %s\n",
			i+1, pilot, entry.Score, reached, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(ztminer.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Surfaced: %d  Best: %d  Average: %.0f\n",
			stats.GamesCount, stats.Victories, stats.HighScore, stats.AvgScore)
	}
}
