package engine

import (
	"math"
	"math/rand"

	"github.com/mkrivenko/corral/internal/core"
)

// Mode is an obstacle-spawn behavior selected per player hit.
type Mode string

const (
	ModeDeflector Mode = "deflector"
	ModeSpinner   Mode = "spinner"
	ModePoint     Mode = "point"
	ModeConnect   Mode = "connect"
	ModeMorph     Mode = "morph"
	ModeGrow      Mode = "grow"
)

// Built-in defaults used whenever a level omits a mode parameter. Malformed
// or missing config fields degrade to these, never to an error.
const (
	defaultDeflectorLength  = 60.0
	defaultSpinnerSize      = 30.0
	defaultRotationSpeed    = 90.0 // deg/s
	defaultPointRadius      = 6.0
	defaultMorphInterval    = 2.0 // seconds
	defaultPulsateAmount    = 0.3
	defaultGrowSize         = 15.0
	defaultGrowMaxSize      = 60.0
	defaultGrowthPerHit     = 0.25
	defaultConnectThreshold = 120.0
)

// defaultMorphShapes is the shape cycle used when a level names none.
var defaultMorphShapes = []int{3, 4, 6}

// shapeSides maps level-file shape names to polygon side counts.
var shapeSides = map[string]int{
	"triangle": 3,
	"square":   4,
	"pentagon": 5,
	"hexagon":  6,
	"heptagon": 7,
	"octagon":  8,
}

// SidesForShape resolves a shape name; unknown names fall back to a square.
func SidesForShape(name string) int {
	if n, ok := shapeSides[name]; ok {
		return n
	}
	return 4
}

// ValueKind tags how a ValueSpec resolves.
type ValueKind int

const (
	ValueUnset ValueKind = iota
	ValueFixed
	ValueRange
)

// ValueSpec is a mode parameter that is either a fixed value, a uniform
// [Min,Max] range sampled at spawn time, or unset (built-in default).
type ValueSpec struct {
	Kind  ValueKind
	Value float64
	Min   float64
	Max   float64
}

// FixedValue returns a ValueSpec holding a single value.
func FixedValue(v float64) ValueSpec {
	return ValueSpec{Kind: ValueFixed, Value: v}
}

// RangeValue returns a ValueSpec sampled uniformly from [lo, hi].
func RangeValue(lo, hi float64) ValueSpec {
	if hi < lo {
		lo, hi = hi, lo
	}
	return ValueSpec{Kind: ValueRange, Min: lo, Max: hi}
}

// Resolve produces a concrete value, using def when the spec is unset.
func (v ValueSpec) Resolve(rng *rand.Rand, def float64) float64 {
	switch v.Kind {
	case ValueFixed:
		return v.Value
	case ValueRange:
		if v.Max == v.Min {
			return v.Min
		}
		return v.Min + rng.Float64()*(v.Max-v.Min)
	default:
		return def
	}
}

// AngleOrigin selects how a deflector's angle is derived when it is not a
// fixed or sampled value.
type AngleOrigin string

const (
	// AngleOriginNone uses the Angle ValueSpec (or a random angle if unset).
	AngleOriginNone AngleOrigin = ""
	// AngleOriginBall aims the deflector along hit − ball position.
	AngleOriginBall AngleOrigin = "ball"
)

// ModeConfig carries the per-mode parameters from the level file. Zero
// values mean "unset"; every field has a built-in default.
type ModeConfig struct {
	Size             ValueSpec   // spinner/morph circumradius, point/grow radius
	Length           ValueSpec   // deflector length
	Angle            ValueSpec   // deflector angle, degrees
	AngleOrigin      AngleOrigin // overrides Angle when set
	Shape            string      // spinner shape name
	Shapes           []string    // morph shape cycle
	RotationSpeed    ValueSpec   // deg/s, sign randomized at spawn
	MorphInterval    float64     // seconds
	Pulsate          bool
	PulsateAmount    float64
	GrowthPerHit     float64
	MaxSize          float64
	DecayRate        float64
	ConnectThreshold float64 // world units
}

// ModeStep is one entry of a level's hit-mode sequence.
type ModeStep struct {
	Mode   Mode
	Config ModeConfig
}

// Sequence is the level's ordered (or shuffled) hit-mode list with a cursor
// that advances on every dispatched hit. Ordered sequences wrap; shuffled
// sequences are re-shuffled each time the cursor wraps.
type Sequence struct {
	steps   []ModeStep
	shuffle bool
	cursor  int
	rng     *rand.Rand
}

// NewSequence builds a sequence. An empty step list falls back to a single
// deflector mode with defaults.
func NewSequence(steps []ModeStep, shuffle bool, rng *rand.Rand) *Sequence {
	if len(steps) == 0 {
		steps = []ModeStep{{Mode: ModeDeflector}}
	}
	s := &Sequence{steps: steps, shuffle: shuffle, rng: rng}
	if shuffle {
		s.reshuffle()
	}
	return s
}

func (s *Sequence) reshuffle() {
	s.rng.Shuffle(len(s.steps), func(i, j int) {
		s.steps[i], s.steps[j] = s.steps[j], s.steps[i]
	})
}

// Next returns the current step and advances the cursor.
func (s *Sequence) Next() ModeStep {
	step := s.steps[s.cursor]
	s.cursor++
	if s.cursor >= len(s.steps) {
		s.cursor = 0
		if s.shuffle {
			s.reshuffle()
		}
	}
	return step
}

// Len returns the number of steps in the sequence.
func (s *Sequence) Len() int { return len(s.steps) }

// Dispatcher turns player hit positions into obstacle spawns and mutations
// according to the level's hit-mode sequence.
type Dispatcher struct {
	seq           *Sequence
	reg           *Registry
	rng           *rand.Rand
	maxDeflectors int // 0 means no cap
	dots          []*PointObstacle
}

// NewDispatcher wires a dispatcher to a registry.
func NewDispatcher(seq *Sequence, reg *Registry, rng *rand.Rand, maxDeflectors int) *Dispatcher {
	return &Dispatcher{seq: seq, reg: reg, rng: rng, maxDeflectors: maxDeflectors}
}

// Dots returns the number of pending connect-mode dots.
func (d *Dispatcher) Dots() int { return len(d.dots) }

// Dispatch handles one player hit. A hit inside an existing grow obstacle
// always feeds that obstacle instead of advancing the mode sequence.
func (d *Dispatcher) Dispatch(hit core.Vec2, ball *Ball) {
	for _, g := range d.reg.Grows() {
		if g.TryGrow(hit) {
			return
		}
	}

	step := d.seq.Next()
	switch step.Mode {
	case ModeDeflector:
		d.spawnDeflector(hit, ball, step.Config)
	case ModeSpinner:
		d.spawnSpinner(hit, step.Config)
	case ModePoint:
		d.spawnPoint(hit, step.Config)
	case ModeConnect:
		d.connect(hit, step.Config)
	case ModeMorph:
		d.spawnMorph(hit, step.Config)
	case ModeGrow:
		d.spawnGrow(hit, step.Config)
	default:
		// Unknown mode names degrade to a plain deflector.
		d.spawnDeflector(hit, ball, step.Config)
	}
}

func (d *Dispatcher) resolveAngle(hit core.Vec2, ball *Ball, cfg ModeConfig) float64 {
	if cfg.AngleOrigin == AngleOriginBall && ball != nil {
		return hit.Sub(ball.Position).Angle()
	}
	deg := cfg.Angle.Resolve(d.rng, d.rng.Float64()*360)
	return deg * (math.Pi / 180)
}

func (d *Dispatcher) spawnDeflector(hit core.Vec2, ball *Ball, cfg ModeConfig) {
	if d.maxDeflectors > 0 && d.reg.DeflectorCount() >= d.maxDeflectors {
		// Cap reached: the hit is spent with no effect.
		return
	}
	length := cfg.Length.Resolve(d.rng, defaultDeflectorLength)
	def, err := NewDeflector(hit, d.resolveAngle(hit, ball, cfg), length)
	if err != nil {
		def, _ = NewDeflector(hit, 0, defaultDeflectorLength)
	}
	d.reg.AddDeflector(def)
}

func (d *Dispatcher) spawnSpinner(hit core.Vec2, cfg ModeConfig) {
	sides := SidesForShape(cfg.Shape)
	size := cfg.Size.Resolve(d.rng, defaultSpinnerSize)
	speed := cfg.RotationSpeed.Resolve(d.rng, defaultRotationSpeed)
	if d.rng.Intn(2) == 0 {
		speed = -speed
	}
	sp, err := NewSpinner(hit, sides, size, speed)
	if err != nil {
		sp, _ = NewSpinner(hit, 4, defaultSpinnerSize, defaultRotationSpeed)
	}
	d.reg.AddSpinner(sp)
}

func (d *Dispatcher) spawnPoint(hit core.Vec2, cfg ModeConfig) *PointObstacle {
	radius := cfg.Size.Resolve(d.rng, defaultPointRadius)
	p, err := NewPointObstacle(hit, radius)
	if err != nil {
		p, _ = NewPointObstacle(hit, defaultPointRadius)
	}
	d.reg.AddPoint(p)
	return p
}

// connect chains dots into deflector walls: a hit near a pending dot spawns
// a deflector spanning dot → hit and the hit becomes the next pending dot.
func (d *Dispatcher) connect(hit core.Vec2, cfg ModeConfig) {
	threshold := cfg.ConnectThreshold
	if threshold <= 0 {
		threshold = defaultConnectThreshold
	}

	for i, dot := range d.dots {
		if dot.Center().Distance(hit) > threshold {
			continue
		}
		if def, err := deflectorBetween(dot.Center(), hit); err == nil {
			d.reg.AddDeflector(def)
		}
		d.reg.RemovePoint(dot)
		d.dots = append(d.dots[:i], d.dots[i+1:]...)
		d.dots = append(d.dots, d.spawnPoint(hit, cfg))
		return
	}

	// No dot in range: the hit starts a new chain.
	d.dots = append(d.dots, d.spawnPoint(hit, cfg))
}

func (d *Dispatcher) spawnMorph(hit core.Vec2, cfg ModeConfig) {
	shapes := make([]int, 0, len(cfg.Shapes))
	for _, name := range cfg.Shapes {
		shapes = append(shapes, SidesForShape(name))
	}
	if len(shapes) == 0 {
		shapes = append(shapes, defaultMorphShapes...)
	}
	size := cfg.Size.Resolve(d.rng, defaultSpinnerSize)
	speed := cfg.RotationSpeed.Resolve(d.rng, defaultRotationSpeed)
	if d.rng.Intn(2) == 0 {
		speed = -speed
	}
	interval := cfg.MorphInterval
	if interval <= 0 {
		interval = defaultMorphInterval
	}
	amount := cfg.PulsateAmount
	if cfg.Pulsate && amount <= 0 {
		amount = defaultPulsateAmount
	}
	m, err := NewMorph(hit, shapes, size, speed, interval, cfg.Pulsate, amount)
	if err != nil {
		m, _ = NewMorph(hit, defaultMorphShapes, defaultSpinnerSize, defaultRotationSpeed, defaultMorphInterval, false, 0)
	}
	d.reg.AddMorph(m)
}

func (d *Dispatcher) spawnGrow(hit core.Vec2, cfg ModeConfig) {
	size := cfg.Size.Resolve(d.rng, defaultGrowSize)
	maxSize := cfg.MaxSize
	if maxSize < size {
		maxSize = math.Max(size, defaultGrowMaxSize)
	}
	growth := cfg.GrowthPerHit
	if growth <= 0 {
		growth = defaultGrowthPerHit
	}
	g, err := NewGrow(hit, size, maxSize, growth, cfg.DecayRate)
	if err != nil {
		g, _ = NewGrow(hit, defaultGrowSize, defaultGrowMaxSize, defaultGrowthPerHit, 0)
	}
	d.reg.AddGrow(g)
}
