package engine

import (
	"fmt"
	"math/rand"

	"github.com/mkrivenko/corral/internal/core"
)

// Outcome is the terminal state of a round.
type Outcome int

const (
	// OutcomeNone means the round is still running.
	OutcomeNone Outcome = iota
	// OutcomeEscaped means the ball left through a gap (loss).
	OutcomeEscaped
	// OutcomeTimeLimit means the ball was contained for the full round (win).
	OutcomeTimeLimit
)

// String returns the outcome's name as stored with round results.
func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomeTimeLimit:
		return "contained"
	default:
		return "running"
	}
}

// SpinnerPlacement is an initial spinner defined by the level.
type SpinnerPlacement struct {
	Position      core.Vec2
	Sides         int
	Size          float64
	RotationSpeed float64
}

// Params is the normalized level configuration a round is built from.
// The level loader produces it; the engine never reads files itself.
type Params struct {
	Width  float64
	Height float64

	BallPosition core.Vec2 // zero value spawns at the arena center
	BallAngle    float64   // launch direction, radians
	BallSpeed    float64
	BallRadius   float64
	SpeedPenalty float64 // direct-hit multiplier; 0 means DefaultSpeedPenalty

	Solid bool
	Gaps  []Gap

	Spinners []SpinnerPlacement

	Sequence      []ModeStep
	Shuffle       bool
	MaxDeflectors int

	TimeLimit float64 // seconds
	Quiver    int     // shots before a retrieval pause; 0 means unlimited
}

// Round owns one complete simulation: ball, obstacles, boundary, dispatcher,
// quiver, and clock. Rounds are never reused; reset means a fresh Round.
type Round struct {
	ball     *Ball
	reg      *Registry
	boundary *Boundary
	disp     *Dispatcher
	rng      *rand.Rand

	penalty   float64
	elapsed   float64
	timeLimit float64
	outcome   Outcome

	quiverSize int
	shotsLeft  int
	retrieving bool
}

// NewRound validates params and constructs a fresh round. The caller owns
// the RNG so rounds stay deterministic under a fixed seed.
func NewRound(p Params, rng *rand.Rand) (*Round, error) {
	boundary, err := NewBoundary(p.Width, p.Height, p.Gaps, p.Solid)
	if err != nil {
		return nil, err
	}
	pos := p.BallPosition
	if pos.IsZero() {
		pos = core.V(p.Width/2, p.Height/2)
	}
	ball, err := NewBall(pos, core.FromAngle(p.BallAngle), p.BallSpeed, p.BallRadius)
	if err != nil {
		return nil, err
	}
	if p.TimeLimit <= 0 {
		return nil, fmt.Errorf("engine: round time limit must be positive, got %v", p.TimeLimit)
	}

	reg := NewRegistry()
	for _, sp := range p.Spinners {
		s, err := NewSpinner(sp.Position, sp.Sides, sp.Size, sp.RotationSpeed)
		if err != nil {
			return nil, fmt.Errorf("engine: bad initial spinner: %w", err)
		}
		reg.AddSpinner(s)
	}

	penalty := p.SpeedPenalty
	if penalty <= 0 {
		penalty = DefaultSpeedPenalty
	}

	seq := NewSequence(p.Sequence, p.Shuffle, rng)
	return &Round{
		ball:       ball,
		reg:        reg,
		boundary:   boundary,
		disp:       NewDispatcher(seq, reg, rng, p.MaxDeflectors),
		rng:        rng,
		penalty:    penalty,
		timeLimit:  p.TimeLimit,
		quiverSize: p.Quiver,
		shotsLeft:  p.Quiver,
	}, nil
}

// Outcome returns the round's terminal state, OutcomeNone while running.
func (r *Round) Outcome() Outcome { return r.outcome }

// Elapsed returns the survived time in seconds.
func (r *Round) Elapsed() float64 { return r.elapsed }

// ElapsedMs returns the survived time in whole milliseconds (the score).
func (r *Round) ElapsedMs() int { return int(r.elapsed * 1000) }

// ShotsLeft returns the remaining quiver; -1 when the quiver is unlimited.
func (r *Round) ShotsLeft() int {
	if r.quiverSize == 0 {
		return -1
	}
	return r.shotsLeft
}

// Retrieving reports whether the quiver is exhausted and hits are ignored
// until Reload is called.
func (r *Round) Retrieving() bool { return r.retrieving }

// Reload refills the quiver after a retrieval pause.
func (r *Round) Reload() {
	if r.quiverSize == 0 {
		return
	}
	r.shotsLeft = r.quiverSize
	r.retrieving = false
}

// HandleHit processes one player shot at a world position. A shot landing
// on the ball itself applies the speed penalty; anything else goes to the
// dispatcher. Hits are ignored once the round has ended or while a
// retrieval pause is pending.
func (r *Round) HandleHit(pos core.Vec2) {
	if r.outcome != OutcomeNone || r.retrieving {
		return
	}
	if PointInCircle(pos, r.ball.Position, r.ball.Radius) {
		r.ball.ApplySpeedPenalty(r.penalty)
	} else {
		r.disp.Dispatch(pos, r.ball)
	}
	if r.quiverSize > 0 {
		r.shotsLeft--
		if r.shotsLeft <= 0 {
			r.retrieving = true
		}
	}
}

// Update advances the simulation one tick: integrate the ball, test the
// boundary, resolve at most one collision, then run obstacle hooks.
// A wall bounce counts as that tick's one resolution.
func (r *Round) Update(dt float64) {
	if r.outcome != OutcomeNone {
		return
	}

	r.ball.Integrate(dt)

	escaped, bounced := r.boundary.Resolve(r.ball)
	if escaped {
		r.outcome = OutcomeEscaped
		return
	}
	if !bounced {
		if hit, ok := r.reg.FirstCollision(r.ball.Position, r.ball.Radius); ok {
			r.ball.Reflect(hit.Normal, hit.Depth)
		}
	}

	r.reg.Update(dt)

	r.elapsed += dt
	if r.elapsed >= r.timeLimit {
		r.outcome = OutcomeTimeLimit
	}
}

// BallView is a read-only ball snapshot for rendering.
type BallView struct {
	Position   core.Vec2
	Radius     float64
	Speed      float64
	Multiplier float64
	Bounces    int
}

// SegmentView is a deflector snapshot.
type SegmentView struct {
	A, B core.Vec2
}

// PolygonView is a spinner or morph snapshot.
type PolygonView struct {
	Vertices []core.Vec2
	Morphing bool
}

// CircleView is a point or grow obstacle snapshot.
type CircleView struct {
	Center core.Vec2
	Radius float64
	Kind   Kind
}

// Snapshot is the full read-only view of a round, taken once per frame
// after Update completes. Renderers never touch live obstacle state.
type Snapshot struct {
	Ball       BallView
	Segments   []SegmentView
	Polygons   []PolygonView
	Circles    []CircleView
	Gaps       []Gap
	Elapsed    float64
	TimeLimit  float64
	ShotsLeft  int
	Retrieving bool
	Outcome    Outcome
}

// Snapshot captures the current round state for rendering.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		Ball: BallView{
			Position:   r.ball.Position,
			Radius:     r.ball.Radius,
			Speed:      r.ball.Speed(),
			Multiplier: r.ball.SpeedMultiplier,
			Bounces:    r.ball.BounceCount,
		},
		Gaps:       r.boundary.Gaps,
		Elapsed:    r.elapsed,
		TimeLimit:  r.timeLimit,
		ShotsLeft:  r.ShotsLeft(),
		Retrieving: r.retrieving,
		Outcome:    r.outcome,
	}
	for _, d := range r.reg.deflectors {
		a, b := d.Segment()
		snap.Segments = append(snap.Segments, SegmentView{A: a, B: b})
	}
	for _, s := range r.reg.spinners {
		snap.Polygons = append(snap.Polygons, PolygonView{Vertices: s.Vertices()})
	}
	for _, m := range r.reg.morphs {
		snap.Polygons = append(snap.Polygons, PolygonView{Vertices: m.Vertices(), Morphing: true})
	}
	for _, p := range r.reg.points {
		snap.Circles = append(snap.Circles, CircleView{Center: p.Center(), Radius: p.Radius(), Kind: KindPoint})
	}
	for _, g := range r.reg.grows {
		snap.Circles = append(snap.Circles, CircleView{Center: g.Center(), Radius: g.Size(), Kind: KindGrow})
	}
	return snap
}

// Ball exposes the live ball for the caller's direct-hit pre-check and for
// tests. Renderers should use Snapshot instead.
func (r *Round) Ball() *Ball { return r.ball }

// Registry exposes the live obstacle collections for tests.
func (r *Round) Registry() *Registry { return r.reg }

// Dispatcher exposes the dispatcher for tests.
func (r *Round) Dispatcher() *Dispatcher { return r.disp }
