package engine

import (
	"fmt"

	"github.com/mkrivenko/corral/internal/core"
)

// reflectEpsilon is the extra separation applied after every push-out so the
// ball never re-penetrates the same surface on the next tick.
const reflectEpsilon = 1.0

// DefaultSpeedPenalty is the multiplier applied when a shot lands on the
// ball itself instead of open field.
const DefaultSpeedPenalty = 1.25

// Ball is the kinetic body contained by the arena. Velocity carries
// direction only; actual movement speed is BaseSpeed * SpeedMultiplier.
type Ball struct {
	Position        core.Vec2
	Velocity        core.Vec2
	BaseSpeed       float64
	SpeedMultiplier float64 // never decreases during a round
	Radius          float64
	BounceCount     int
}

// NewBall constructs a ball, failing fast on degenerate parameters: the
// round must never start with a body that cannot move or collide.
func NewBall(pos, dir core.Vec2, speed, radius float64) (*Ball, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("engine: ball speed must be positive, got %v", speed)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("engine: ball radius must be positive, got %v", radius)
	}
	if dir.IsZero() {
		return nil, fmt.Errorf("engine: ball direction must be non-zero")
	}
	return &Ball{
		Position:        pos,
		Velocity:        dir.Normalize(),
		BaseSpeed:       speed,
		SpeedMultiplier: 1,
		Radius:          radius,
	}, nil
}

// Speed returns the effective movement speed.
func (b *Ball) Speed() float64 {
	return b.BaseSpeed * b.SpeedMultiplier
}

// Integrate advances position by one time step. No-op for a zero velocity.
func (b *Ball) Integrate(dt float64) {
	if b.Velocity.IsZero() {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Normalize().Scale(b.Speed() * dt))
}

// Reflect mirrors velocity across the unit normal n and separates the ball
// by pushOut plus an epsilon. Velocity changes only when the ball is moving
// toward the surface (v·n < 0); a departing ball still gets the push-out so
// a contact that lingers across ticks is not resolved twice.
func (b *Ball) Reflect(n core.Vec2, pushOut float64) {
	if dot := b.Velocity.Dot(n); dot < 0 {
		b.Velocity = b.Velocity.Sub(n.Scale(2 * dot))
		b.BounceCount++
	}
	b.Position = b.Position.Add(n.Scale(pushOut + reflectEpsilon))
}

// ApplySpeedPenalty permanently scales the speed multiplier. Factors below 1
// are ignored; the multiplier never decreases during a round.
func (b *Ball) ApplySpeedPenalty(factor float64) {
	if factor < 1 {
		return
	}
	b.SpeedMultiplier *= factor
}

// BounceHorizontal flips the horizontal velocity axis (vertical wall).
func (b *Ball) BounceHorizontal() {
	b.Velocity.X = -b.Velocity.X
	b.BounceCount++
}

// BounceVertical flips the vertical velocity axis (horizontal wall).
func (b *Ball) BounceVertical() {
	b.Velocity.Y = -b.Velocity.Y
	b.BounceCount++
}
