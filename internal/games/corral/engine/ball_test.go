package engine

import (
	"math"
	"testing"

	"github.com/mkrivenko/corral/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustBall(t *testing.T, pos, dir core.Vec2, speed, radius float64) *Ball {
	t.Helper()
	b, err := NewBall(pos, dir, speed, radius)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return b
}

func TestNewBallValidation(t *testing.T) {
	tests := []struct {
		name   string
		dir    core.Vec2
		speed  float64
		radius float64
	}{
		{"zero speed", core.V(1, 0), 0, 10},
		{"negative speed", core.V(1, 0), -5, 10},
		{"zero radius", core.V(1, 0), 100, 0},
		{"zero direction", core.V(0, 0), 100, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBall(core.V(0, 0), tc.dir, tc.speed, tc.radius); err == nil {
				t.Error("expected construction error, got nil")
			}
		})
	}
}

func TestBallIntegrate(t *testing.T) {
	b := mustBall(t, core.V(100, 100), core.V(1, 0), 50, 5)

	b.Integrate(0.5)
	if !approx(b.Position.X, 125) || !approx(b.Position.Y, 100) {
		t.Errorf("position after integrate = %v, expected (125, 100)", b.Position)
	}

	// A degenerate velocity must not move or panic.
	b.Velocity = core.Vec2{}
	before := b.Position
	b.Integrate(0.5)
	if b.Position != before {
		t.Errorf("zero-velocity integrate moved ball to %v", b.Position)
	}
}

func TestReflectionLaw(t *testing.T) {
	// For v·n < 0, the reflection must satisfy v'·n == -(v·n) and preserve
	// the velocity magnitude.
	tests := []struct {
		name   string
		dir    core.Vec2
		normal core.Vec2
	}{
		{"head on", core.V(1, 0), core.V(-1, 0)},
		{"oblique", core.V(1, 1), core.V(-1, 0)},
		{"diagonal normal", core.V(0, -1), core.FromAngle(math.Pi / 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBall(t, core.V(0, 0), tc.dir, 100, 10)
			vIn := b.Velocity
			dotIn := vIn.Dot(tc.normal)
			if dotIn >= 0 {
				t.Fatalf("test setup: v·n = %v, expected negative", dotIn)
			}

			b.Reflect(tc.normal, 0)

			if !approx(b.Velocity.Dot(tc.normal), -dotIn) {
				t.Errorf("v'·n = %v, expected %v", b.Velocity.Dot(tc.normal), -dotIn)
			}
			if !approx(b.Velocity.Length(), vIn.Length()) {
				t.Errorf("|v'| = %v, expected %v", b.Velocity.Length(), vIn.Length())
			}
			if b.BounceCount != 1 {
				t.Errorf("BounceCount = %d, expected 1", b.BounceCount)
			}
		})
	}
}

func TestReflectNoOpWhenDeparting(t *testing.T) {
	// A ball already moving away from the surface keeps its velocity but
	// still receives the push-out.
	b := mustBall(t, core.V(0, 0), core.V(1, 0), 100, 10)
	n := core.V(1, 0) // same direction as motion: v·n > 0

	before := b.Velocity
	b.Reflect(n, 5)

	if b.Velocity != before {
		t.Errorf("departing reflect changed velocity to %v", b.Velocity)
	}
	if b.BounceCount != 0 {
		t.Errorf("departing reflect counted a bounce")
	}
	if b.Position.X <= 5 {
		t.Errorf("push-out not applied, position = %v", b.Position)
	}
}

func TestSpeedPenaltyMonotonic(t *testing.T) {
	b := mustBall(t, core.V(0, 0), core.V(1, 0), 100, 10)

	prev := b.SpeedMultiplier
	for i := 0; i < 5; i++ {
		b.ApplySpeedPenalty(DefaultSpeedPenalty)
		if b.SpeedMultiplier <= prev {
			t.Fatalf("multiplier did not increase on hit %d: %v -> %v", i, prev, b.SpeedMultiplier)
		}
		if !approx(b.SpeedMultiplier, prev*DefaultSpeedPenalty) {
			t.Fatalf("multiplier = %v, expected %v", b.SpeedMultiplier, prev*DefaultSpeedPenalty)
		}
		prev = b.SpeedMultiplier
	}

	// Factors below 1 must never shrink the multiplier.
	b.ApplySpeedPenalty(0.5)
	if b.SpeedMultiplier < prev {
		t.Errorf("multiplier decreased: %v -> %v", prev, b.SpeedMultiplier)
	}

	if !approx(b.Speed(), b.BaseSpeed*b.SpeedMultiplier) {
		t.Errorf("Speed() = %v, expected %v", b.Speed(), b.BaseSpeed*b.SpeedMultiplier)
	}
}

func TestAxisBounces(t *testing.T) {
	b := mustBall(t, core.V(0, 0), core.V(1, 1), 100, 10)
	vx, vy := b.Velocity.X, b.Velocity.Y

	b.BounceHorizontal()
	if !approx(b.Velocity.X, -vx) || !approx(b.Velocity.Y, vy) {
		t.Errorf("BounceHorizontal gave %v", b.Velocity)
	}

	b.BounceVertical()
	if !approx(b.Velocity.Y, -vy) {
		t.Errorf("BounceVertical gave %v", b.Velocity)
	}

	if b.BounceCount != 2 {
		t.Errorf("BounceCount = %d, expected 2", b.BounceCount)
	}
}
