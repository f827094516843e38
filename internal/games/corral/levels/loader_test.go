package levels

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkrivenko/corral/internal/games/corral/engine"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

const sampleLevel = `
id: test_ring
name: Test Ring
arena: {w: 640, h: 480}
ball:
  speed: 100
  radius: 10
  angle: 45
boundary:
  mode: gaps
  gaps:
    - {edge: top, start: 0.4, width: 96}
    - {edge: diagonal, start: 0.1, width: 50}
spinners:
  - {x: 320, y: 240, shape: hexagon, size: 28, rotation: 90}
sequence:
  order: shuffle
  modes:
    - mode: deflector
      length: {min: 40, max: 80}
      aim: ball
    - mode: connect
      threshold: 110
max_deflectors: 8
time_limit: 45
quiver: 5
penalty: 1.5
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if lvl.ID != "test_ring" || lvl.Name != "Test Ring" {
		t.Errorf("identity = %q/%q", lvl.ID, lvl.Name)
	}

	p := lvl.Params
	if p.Width != 640 || p.Height != 480 {
		t.Errorf("arena = %vx%v, expected 640x480", p.Width, p.Height)
	}
	if p.BallSpeed != 100 || p.BallRadius != 10 {
		t.Errorf("ball = speed %v radius %v", p.BallSpeed, p.BallRadius)
	}
	if math.Abs(p.BallAngle-math.Pi/4) > 1e-9 {
		t.Errorf("ball angle = %v rad, expected π/4", p.BallAngle)
	}

	// The invalid "diagonal" gap is skipped, the valid one kept.
	if len(p.Gaps) != 1 {
		t.Fatalf("gaps = %d, expected 1", len(p.Gaps))
	}
	if p.Gaps[0].Edge != engine.EdgeTop || p.Gaps[0].StartFraction != 0.4 || p.Gaps[0].Width != 96 {
		t.Errorf("gap = %+v", p.Gaps[0])
	}
	if p.Solid {
		t.Error("level with gaps should not be solid")
	}

	if len(p.Spinners) != 1 || p.Spinners[0].Sides != 6 {
		t.Errorf("spinners = %+v, expected one hexagon", p.Spinners)
	}

	if !p.Shuffle {
		t.Error("shuffle order not detected")
	}
	if len(p.Sequence) != 2 {
		t.Fatalf("sequence = %d steps, expected 2", len(p.Sequence))
	}
	def := p.Sequence[0]
	if def.Mode != engine.ModeDeflector {
		t.Errorf("first mode = %s", def.Mode)
	}
	if def.Config.Length.Kind != engine.ValueRange {
		t.Errorf("length spec = %+v, expected a range", def.Config.Length)
	}
	if def.Config.AngleOrigin != engine.AngleOriginBall {
		t.Error("aim: ball not mapped to AngleOriginBall")
	}
	if p.Sequence[1].Config.ConnectThreshold != 110 {
		t.Errorf("connect threshold = %v", p.Sequence[1].Config.ConnectThreshold)
	}

	if p.MaxDeflectors != 8 || p.TimeLimit != 45 || p.Quiver != 5 || p.SpeedPenalty != 1.5 {
		t.Errorf("limits = %+v", p)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: bare\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	p := lvl.Params
	if p.Width != defaultArenaW || p.Height != defaultArenaH {
		t.Errorf("arena defaults = %vx%v", p.Width, p.Height)
	}
	if p.BallSpeed != defaultBallSpeed || p.BallRadius != defaultBallRadius {
		t.Errorf("ball defaults = %v/%v", p.BallSpeed, p.BallRadius)
	}
	if p.TimeLimit != defaultTimeLimit {
		t.Errorf("time limit default = %v", p.TimeLimit)
	}
	// No gaps means a solid arena.
	if !p.Solid {
		t.Error("gapless level should be solid")
	}

	// A bare level must still build a playable round.
	if _, err := engine.NewRound(p, newTestRNG()); err != nil {
		t.Errorf("bare level params rejected by the engine: %v", err)
	}
}

func TestParseYAMLRejectsMissingID(t *testing.T) {
	if _, err := ParseYAML([]byte("name: nameless\n")); err == nil {
		t.Error("level without id should be rejected")
	}
	if _, err := ParseYAML([]byte("{invalid")); err == nil {
		t.Error("unparseable yaml should be rejected")
	}
}

func TestBuiltinLevels(t *testing.T) {
	builtin := Builtin()
	if len(builtin) == 0 {
		t.Fatal("expected embedded built-in levels")
	}

	ids := map[string]bool{}
	for _, lvl := range builtin {
		if ids[lvl.ID] {
			t.Errorf("duplicate built-in level id %q", lvl.ID)
		}
		ids[lvl.ID] = true

		// Every built-in must produce a playable round.
		if _, err := engine.NewRound(lvl.Params, newTestRNG()); err != nil {
			t.Errorf("built-in level %q rejected by the engine: %v", lvl.ID, err)
		}
	}
	for _, want := range []string{"pasture", "windmills", "stockyard"} {
		if !ids[want] {
			t.Errorf("missing built-in level %q", want)
		}
	}
}

func TestLoaderMergesDirectoryOverBuiltin(t *testing.T) {
	dir := t.TempDir()

	// A custom level plus an override of a built-in ID.
	custom := "id: custom_pen\narena: {w: 500, h: 500}\n"
	override := "id: pasture\nname: Replaced Pasture\n"
	junk := "{not yaml"

	for name, content := range map[string]string{
		"custom.yaml":  custom,
		"override.yml": override,
		"broken.yaml":  junk,
		"ignored.txt":  custom,
		"noid.yaml":    "name: nameless\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	loader := NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	byID := map[string]Level{}
	for _, lvl := range all {
		byID[lvl.ID] = lvl
	}

	if _, ok := byID["custom_pen"]; !ok {
		t.Error("custom level not loaded")
	}
	if byID["pasture"].Name != "Replaced Pasture" {
		t.Errorf("built-in not overridden: %q", byID["pasture"].Name)
	}
	if len(byID) != len(Builtin())+1 {
		t.Errorf("level count = %d, expected builtins plus one custom", len(byID))
	}

	// Sorted by ID.
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("levels not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}

	if _, err := loader.LoadByID("custom_pen"); err != nil {
		t.Errorf("LoadByID(custom_pen): %v", err)
	}
	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("LoadByID should fail for unknown levels")
	}
}

func TestLoaderMissingRootServesBuiltins(t *testing.T) {
	loader := NewLoader("/nonexistent/levels/dir")
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != len(Builtin()) {
		t.Errorf("levels = %d, expected the built-in set", len(all))
	}
}
