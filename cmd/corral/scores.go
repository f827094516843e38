package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkrivenko/corral/internal/platform/tui"
	"github.com/mkrivenko/corral/internal/registry"
	"github.com/mkrivenko/corral/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best containment times",
	Long: `Display the top 10 containment times for the given game variant
(default: corral), followed by the most recent rounds.

Examples:
  corral scores
  corral scores corral_solid
  corral scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a TUI table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "corral"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Valid games: corral, corral_solid")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Containment Times - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'corral play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Survived", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "--------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, tui.FormatDuration(entry.Score), dateStr)
	}

	// Recent rounds with level and outcome
	recent, err := store.RecentRounds(gameID, 5)
	if err == nil && len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent rounds:")
		for _, r := range recent {
			fmt.Printf("  %-12s  %-9s  %s\n", r.LevelID, r.Outcome, tui.FormatDuration(r.DurationMs))
		}
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil && high > 0 {
		fmt.Printf("Best: %s\n", tui.FormatDuration(high))
	}
}
