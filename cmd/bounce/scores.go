package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [toy]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified toy, or a
summary of every toy with recorded scores.

Examples:
  bounce scores
  bounce scores defense`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresAll   bool
	flagScoresClear bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the toy")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown toy %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available toys.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bounce play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Games: %d   Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}

// runScoresSummary prints one line per toy that has recorded scores.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.AllGameStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Toy", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "---", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.1f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
