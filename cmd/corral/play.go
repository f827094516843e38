package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkrivenko/corral/internal/core"
	"github.com/mkrivenko/corral/internal/games/corral"
	"github.com/mkrivenko/corral/internal/platform/tui"
	"github.com/mkrivenko/corral/internal/registry"
	"github.com/mkrivenko/corral/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start a round. Without arguments plays "corral"; pass "corral_solid"
for the solid-wall survival variant.

Controls:
  Mouse click - Shoot at that spot
  P/Esc       - Pause
  R           - Restart (after the round ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ball, forgiving quiver
  normal - Default progression
  hard   - Faster ball, wider gaps, harsher direct-hit penalty
  fixed  - No progression during the round

Examples:
  corral play
  corral play corral_solid
  corral play --level windmills
  corral play --difficulty hard --seed 42
  corral play --config ./my-corral.yaml --levels-dir ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play (default: first available)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level files")
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path, level, and difficulty before creation
	corral.SetConfigPath(flagConfig)
	corral.SetDifficultyPreset(flagDifficulty)
	corral.SetLevelID(flagLevel)
	corral.SetLevelsDir(flagLevelsDir)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
