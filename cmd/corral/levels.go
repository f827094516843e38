package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrivenko/corral/internal/games/corral/levels"
	"github.com/mkrivenko/corral/internal/platform/tui"
	"github.com/mkrivenko/corral/internal/storage"
)

var flagLevelsListDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows all levels: the built-in set plus any YAML files found in the
custom levels directory. Custom levels with the same ID override the
built-in ones.

Examples:
  corral levels
  corral levels --levels-dir ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsListDir, "levels-dir", "", "Directory with custom level files")
}

func runLevels(cmd *cobra.Command, args []string) {
	loader := levels.NewLoader(flagLevelsListDir)
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Per-level stats are optional; the listing works without a database.
	var stats map[string]*storage.LevelStats
	if store, dbErr := storage.Open(flagDBPath); dbErr == nil {
		stats, _ = store.GetAllLevelStats()
		store.Close()
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %-6s  %-5s  %-6s  %-7s  %s\n",
		"ID", "Name", "Mode", "Gaps", "Limit", "Quiver", "Best")
	fmt.Printf("  %-12s  %-20s  %-6s  %-5s  %-6s  %-7s  %s\n",
		"--", "----", "----", "----", "-----", "------", "----")

	for _, lvl := range all {
		mode := "gaps"
		if lvl.Params.Solid {
			mode = "solid"
		}

		quiver := "∞"
		if lvl.Params.Quiver > 0 {
			quiver = fmt.Sprintf("%d", lvl.Params.Quiver)
		}

		best := "-"
		if s, ok := stats[lvl.ID]; ok && s.RoundsPlayed > 0 {
			best = tui.FormatDuration(s.BestMs)
		}

		source := ""
		if lvl.FilePath != "" {
			source = "  (custom)"
		}

		fmt.Printf("  %-12s  %-20s  %-6s  %-5d  %-6.0f  %-7s  %s%s\n",
			lvl.ID, lvl.Name, mode, len(lvl.Params.Gaps), lvl.Params.TimeLimit, quiver, best, source)
	}

	fmt.Println()
	fmt.Println("Run 'corral play --level <id>' to play a level.")
}
