package levels

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/mkrivenko/corral/internal/core"
	"github.com/mkrivenko/corral/internal/games/corral/engine"
)

// Built-in defaults for fields a level file may omit.
const (
	defaultArenaW     = 800.0
	defaultArenaH     = 600.0
	defaultBallSpeed  = 120.0
	defaultBallRadius = 12.0
	defaultBallAngle  = 37.0 // degrees; deliberately off-axis
	defaultTimeLimit  = 60.0
)

// yamlLevel is the on-disk level schema.
type yamlLevel struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Arena    yamlSize      `yaml:"arena"`
	Ball     yamlBall      `yaml:"ball"`
	Boundary yamlBoundary  `yaml:"boundary"`
	Spinners []yamlSpinner `yaml:"spinners,omitempty"`
	Sequence yamlSequence  `yaml:"sequence"`

	MaxDeflectors int     `yaml:"max_deflectors,omitempty"`
	TimeLimit     float64 `yaml:"time_limit,omitempty"`
	Quiver        int     `yaml:"quiver,omitempty"`
	Penalty       float64 `yaml:"penalty,omitempty"`
}

type yamlSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlBall struct {
	Speed  float64 `yaml:"speed,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Angle  float64 `yaml:"angle,omitempty"` // degrees
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
}

type yamlBoundary struct {
	Mode string    `yaml:"mode,omitempty"` // "gaps" or "solid"
	Gaps []yamlGap `yaml:"gaps,omitempty"`
}

type yamlGap struct {
	Edge  string  `yaml:"edge"`
	Start float64 `yaml:"start"`
	Width float64 `yaml:"width"`
}

type yamlSpinner struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Shape    string  `yaml:"shape,omitempty"`
	Size     float64 `yaml:"size,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"` // deg/s
}

type yamlSequence struct {
	Order string     `yaml:"order,omitempty"` // "ordered" (default) or "shuffle"
	Modes []yamlMode `yaml:"modes"`
}

type yamlMode struct {
	Mode          string    `yaml:"mode"`
	Size          yamlValue `yaml:"size,omitempty"`
	Length        yamlValue `yaml:"length,omitempty"`
	Angle         yamlValue `yaml:"angle,omitempty"` // degrees
	Aim           string    `yaml:"aim,omitempty"`   // "ball" aims at the ball
	Shape         string    `yaml:"shape,omitempty"`
	Shapes        []string  `yaml:"shapes,omitempty"`
	Rotation      yamlValue `yaml:"rotation,omitempty"` // deg/s
	Interval      float64   `yaml:"interval,omitempty"`
	Pulsate       bool      `yaml:"pulsate,omitempty"`
	PulsateAmount float64   `yaml:"pulsate_amount,omitempty"`
	Growth        float64   `yaml:"growth,omitempty"`
	MaxSize       float64   `yaml:"max_size,omitempty"`
	Decay         float64   `yaml:"decay,omitempty"`
	Threshold     float64   `yaml:"threshold,omitempty"`
}

// yamlValue accepts either a scalar (fixed value) or a {min, max} mapping
// (uniform range). Anything else is left unset so the engine's built-in
// default applies; a bad value never fails the whole level.
type yamlValue struct {
	spec engine.ValueSpec
}

func (v *yamlValue) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err == nil {
		v.spec = engine.FixedValue(f)
		return nil
	}
	var r struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	}
	if err := node.Decode(&r); err == nil && (r.Min != 0 || r.Max != 0) {
		v.spec = engine.RangeValue(r.Min, r.Max)
		return nil
	}
	v.spec = engine.ValueSpec{}
	return nil
}

// ParseYAML parses a level file into a Level. Only a missing ID or totally
// unreadable YAML is an error; field-level problems fall back to defaults
// (invalid gaps and spinners are skipped).
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("levels: level file has no id")
	}

	p := engine.Params{
		Width:         yl.Arena.W,
		Height:        yl.Arena.H,
		BallSpeed:     yl.Ball.Speed,
		BallRadius:    yl.Ball.Radius,
		BallAngle:     degToRad(yl.Ball.Angle),
		BallPosition:  core.V(yl.Ball.X, yl.Ball.Y),
		SpeedPenalty:  yl.Penalty,
		MaxDeflectors: yl.MaxDeflectors,
		TimeLimit:     yl.TimeLimit,
		Quiver:        yl.Quiver,
		Shuffle:       yl.Sequence.Order == "shuffle",
	}
	if p.Width <= 0 {
		p.Width = defaultArenaW
	}
	if p.Height <= 0 {
		p.Height = defaultArenaH
	}
	if p.BallSpeed <= 0 {
		p.BallSpeed = defaultBallSpeed
	}
	if p.BallRadius <= 0 {
		p.BallRadius = defaultBallRadius
	}
	if yl.Ball.Angle == 0 {
		p.BallAngle = degToRad(defaultBallAngle)
	}
	if p.TimeLimit <= 0 {
		p.TimeLimit = defaultTimeLimit
	}

	for _, g := range yl.Boundary.Gaps {
		edge, err := engine.ParseEdge(g.Edge)
		if err != nil || g.Start < 0 || g.Start > 1 || g.Width <= 0 {
			continue
		}
		p.Gaps = append(p.Gaps, engine.Gap{Edge: edge, StartFraction: g.Start, Width: g.Width})
	}
	// An arena without gaps is solid regardless of the declared mode.
	p.Solid = yl.Boundary.Mode == "solid" || len(p.Gaps) == 0

	for _, s := range yl.Spinners {
		sides := engine.SidesForShape(s.Shape)
		size := s.Size
		if size <= 0 {
			size = 30
		}
		p.Spinners = append(p.Spinners, engine.SpinnerPlacement{
			Position:      core.V(s.X, s.Y),
			Sides:         sides,
			Size:          size,
			RotationSpeed: s.Rotation,
		})
	}

	for _, m := range yl.Sequence.Modes {
		if m.Mode == "" {
			continue
		}
		p.Sequence = append(p.Sequence, engine.ModeStep{
			Mode:   engine.Mode(m.Mode),
			Config: m.toConfig(),
		})
	}

	return Level{ID: yl.ID, Name: yl.Name, Params: p}, nil
}

func (m yamlMode) toConfig() engine.ModeConfig {
	cfg := engine.ModeConfig{
		Size:             m.Size.spec,
		Length:           m.Length.spec,
		Angle:            m.Angle.spec,
		Shape:            m.Shape,
		Shapes:           m.Shapes,
		RotationSpeed:    m.Rotation.spec,
		MorphInterval:    m.Interval,
		Pulsate:          m.Pulsate,
		PulsateAmount:    m.PulsateAmount,
		GrowthPerHit:     m.Growth,
		MaxSize:          m.MaxSize,
		DecayRate:        m.Decay,
		ConnectThreshold: m.Threshold,
	}
	if m.Aim == "ball" {
		cfg.AngleOrigin = engine.AngleOriginBall
	}
	return cfg
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
