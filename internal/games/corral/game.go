// Package corral implements the containment game: a ball bounces inside a
// fenced arena with escape gaps, and the player shoots at positions to
// place obstacles that keep it penned in until the round timer runs out.
package corral

import (
	"math/rand"

	"github.com/mkrivenko/corral/internal/config"
	"github.com/mkrivenko/corral/internal/core"
	"github.com/mkrivenko/corral/internal/games/corral/engine"
	"github.com/mkrivenko/corral/internal/games/corral/levels"
	"github.com/mkrivenko/corral/internal/registry"
)

// GameMode selects the boundary behavior.
type GameMode int

const (
	// ModeGaps plays the level's gapped boundary: the ball can escape.
	ModeGaps GameMode = iota
	// ModeSolid forces solid walls: pure survival against the clock.
	ModeSolid
)

// configPath stores the custom config path set via CLI
var configPath string

// levelsDir stores the custom levels directory set via CLI
var levelsDir string

// selectedLevelID stores the level chosen via CLI; empty picks the first
var selectedLevelID string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsDir sets the directory scanned for level files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLevelID selects the level to play.
func SetLevelID(id string) {
	selectedLevelID = id
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game adapts the corral engine to the platform's Game interface.
type Game struct {
	mode GameMode

	round *engine.Round
	level levels.Level
	rng   *rand.Rand

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.CorralConfig
	difficulty *config.DifficultyManager
	baseSpeed  float64 // level ball speed after the global scale

	// Round-local state
	tickCount      int
	retrievalTicks int // remaining pause ticks while the quiver refills
	paused         bool
	over           bool
	won            bool
	score          int
	loadErr        error
}

// New creates a gap-mode game instance.
func New() *Game {
	return &Game{mode: ModeGaps}
}

// NewSolid creates a solid-wall survival instance.
func NewSolid() *Game {
	return &Game{mode: ModeSolid}
}

func init() {
	registry.Register("corral", func() registry.Game { return New() })
	registry.Register("corral_solid", func() registry.Game { return NewSolid() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSolid {
		return "corral_solid"
	}
	return "corral"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSolid {
		return "Corral: Closed Pen"
	}
	return "Corral"
}

// Reset loads config and the selected level and builds a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tickCount = 0
	g.retrievalTicks = 0
	g.paused = false
	g.over = false
	g.won = false
	g.score = 0
	g.loadErr = nil

	g.cfg, _ = config.LoadCorral(configPath)
	if difficultyPreset != "" {
		config.ApplyCorralPreset(&g.cfg, difficultyPreset)
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	loader := levels.NewLoader(levelsDir)
	lvl, err := g.pickLevel(loader)
	if err != nil {
		g.loadErr = err
		g.over = true
		return
	}
	g.level = lvl

	params := lvl.Params
	if g.cfg.Physics.SpeedScale > 0 {
		params.BallSpeed *= g.cfg.Physics.SpeedScale
	}
	g.baseSpeed = params.BallSpeed
	if g.cfg.Physics.DirectHitPenalty > 0 {
		params.SpeedPenalty = g.cfg.Physics.DirectHitPenalty
	}
	if g.cfg.Quiver.Size > 0 {
		params.Quiver = g.cfg.Quiver.Size
	}
	params.Quiver = g.difficulty.Quiver(params.Quiver, 0, 0)

	if g.mode == ModeSolid {
		params.Solid = true
		params.Gaps = nil
	} else {
		// Gaps widen with the starting difficulty level.
		for i := range params.Gaps {
			params.Gaps[i].Width = g.difficulty.GapWidth(params.Gaps[i].Width, 0, 0)
		}
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	round, err := engine.NewRound(params, g.rng)
	if err != nil {
		g.loadErr = err
		g.over = true
		return
	}
	g.round = round
}

// pickLevel resolves the selected level, defaulting to the first available.
func (g *Game) pickLevel(loader *levels.Loader) (levels.Level, error) {
	if selectedLevelID != "" {
		return loader.LoadByID(selectedLevelID)
	}
	all, err := loader.LoadAll()
	if err != nil {
		return levels.Level{}, err
	}
	return all[0], nil
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	if g.paused || g.over || g.round == nil {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1.0 / float64(tickRate)

	// Quiver retrieval: the round ignores hits until the pause elapses.
	if g.round.Retrieving() {
		if g.retrievalTicks == 0 {
			g.retrievalTicks = int(g.cfg.Quiver.RetrievalSeconds * float64(tickRate))
		}
		g.retrievalTicks--
		if g.retrievalTicks <= 0 {
			g.round.Reload()
			g.retrievalTicks = 0
		}
	}

	for _, hit := range in.Hits {
		g.round.HandleHit(g.screenToWorld(hit))
	}

	// Difficulty ramps the base ball speed over the round.
	g.round.Ball().BaseSpeed = g.difficulty.Speed(g.baseSpeed, g.score, g.tickCount)

	g.round.Update(dt)
	g.score = g.round.ElapsedMs()

	if outcome := g.round.Outcome(); outcome != engine.OutcomeNone {
		g.over = true
		g.won = outcome == engine.OutcomeTimeLimit
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// LastRound reports the finished round for persistence. ok is false while
// the round is still running or nothing was loaded.
func (g *Game) LastRound() (levelID, outcome string, durationMs int, ok bool) {
	if !g.over || g.round == nil {
		return "", "", 0, false
	}
	return g.level.ID, g.round.Outcome().String(), g.round.ElapsedMs(), true
}

// Level returns the loaded level (for the HUD and tests).
func (g *Game) Level() levels.Level {
	return g.level
}
