// corral is a terminal containment game: keep a bouncing ball penned
// inside a gapped fence by shooting obstacles into the arena.
//
// Usage:
//
//	corral play [game]       - Play (default: corral)
//	corral levels            - List available levels
//	corral scores [game]     - Show best containment times
//	corral serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.corral/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/mkrivenko/corral/internal/games/corral"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "corral",
	Short: "Corral - pen a bouncing ball with well-placed obstacles",
	Long: `Corral is a terminal containment game. A ball ricochets inside a
fenced arena with escape gaps; click to shoot obstacles that keep it
penned in until the round timer runs out.

Available commands:
  play     - Play a round (corral or corral_solid)
  levels   - List available levels
  scores   - View best containment times
  serve    - Start SSH server for remote play

Examples:
  corral play
  corral play corral_solid
  corral play --level windmills --difficulty hard
  corral levels
  corral scores corral
  corral serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.corral/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
