package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCorralEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files around, the embedded default
	// must load and match the hardcoded fallback.
	cfg, err := LoadCorral("")
	if err != nil {
		t.Fatalf("LoadCorral: %v", err)
	}

	def := DefaultCorralConfig()
	if cfg.Physics.SpeedScale != def.Physics.SpeedScale {
		t.Errorf("speed scale = %v, expected %v", cfg.Physics.SpeedScale, def.Physics.SpeedScale)
	}
	if cfg.Quiver.RetrievalSeconds != def.Quiver.RetrievalSeconds {
		t.Errorf("retrieval = %v, expected %v", cfg.Quiver.RetrievalSeconds, def.Quiver.RetrievalSeconds)
	}
	if cfg.Difficulty.Progression.Type != "time" {
		t.Errorf("progression type = %q, expected time", cfg.Difficulty.Progression.Type)
	}
}

func TestLoadCorralCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corral.yaml")
	content := "physics:\n  speed_scale: 1.5\nquiver:\n  size: 8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadCorral(path)
	if err != nil {
		t.Fatalf("LoadCorral: %v", err)
	}
	if cfg.Physics.SpeedScale != 1.5 || cfg.Quiver.Size != 8 {
		t.Errorf("custom config not applied: %+v", cfg)
	}

	if _, err := LoadCorral(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestApplyCorralPreset(t *testing.T) {
	cfg := DefaultCorralConfig()

	ApplyCorralPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.Physics.SpeedScale != 1.2 || cfg.Physics.DirectHitPenalty != 1.4 {
		t.Errorf("hard preset physics: %+v", cfg.Physics)
	}

	ApplyCorralPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset must disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, GapWidening: 0.4, QuiverReduction: 2},
	})

	if got := mgr.Level(0, 0); got != 0 {
		t.Errorf("level at start = %v", got)
	}
	if got := mgr.Level(0, 200); got != 1 {
		t.Errorf("level past max_at = %v, expected 1", got)
	}

	if got := mgr.Speed(100, 0, 100); got != 150 {
		t.Errorf("speed at max = %v, expected 150", got)
	}
	if got := mgr.GapWidth(100, 0, 100); got != 140 {
		t.Errorf("gap width at max = %v, expected 140", got)
	}
	if got := mgr.Quiver(5, 0, 100); got != 3 {
		t.Errorf("quiver at max = %d, expected 3", got)
	}
	if got := mgr.Quiver(3, 0, 100); got != 2 {
		t.Errorf("quiver floor = %d, expected 2", got)
	}
	if got := mgr.Quiver(0, 0, 100); got != 0 {
		t.Errorf("unlimited quiver = %d, expected 0", got)
	}

	mgr.SetEnabled(false)
	if got := mgr.Level(0, 200); got != 0 {
		t.Errorf("disabled manager level = %v, expected initial", got)
	}
}
