package engine

import (
	"testing"

	"github.com/mkrivenko/corral/internal/core"
)

func mustBoundary(t *testing.T, w, h float64, gaps []Gap, solid bool) *Boundary {
	t.Helper()
	b, err := NewBoundary(w, h, gaps, solid)
	if err != nil {
		t.Fatalf("NewBoundary: %v", err)
	}
	return b
}

func TestParseEdge(t *testing.T) {
	for _, name := range []string{"top", "bottom", "left", "right"} {
		e, err := ParseEdge(name)
		if err != nil {
			t.Errorf("ParseEdge(%q): %v", name, err)
		}
		if e.String() != name {
			t.Errorf("ParseEdge(%q).String() = %q", name, e.String())
		}
	}
	if _, err := ParseEdge("diagonal"); err == nil {
		t.Error("ParseEdge should reject unknown edge names")
	}
}

func TestBoundaryValidation(t *testing.T) {
	if _, err := NewBoundary(0, 600, nil, false); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := NewBoundary(800, 600, []Gap{{Edge: EdgeTop, StartFraction: 1.5, Width: 10}}, false); err == nil {
		t.Error("out-of-range gap start should be rejected")
	}
	if _, err := NewBoundary(800, 600, []Gap{{Edge: EdgeTop, StartFraction: 0.5, Width: 0}}, false); err == nil {
		t.Error("zero gap width should be rejected")
	}
}

// For any boundary contact, escape and wall bounce are mutually exclusive
// and exhaustive.
func TestGapExclusivity(t *testing.T) {
	b := mustBoundary(t, 800, 600, []Gap{
		{Edge: EdgeTop, StartFraction: 0.4, Width: 160}, // x in [320, 480]
	}, false)

	for x := 0.0; x <= 800; x += 10 {
		inGap := b.InGap(EdgeTop, x)

		ball := mustBall(t, core.V(x, 5), core.V(0, -1), 100, 10)
		escaped, bounced := b.Resolve(ball)

		if escaped == bounced {
			t.Fatalf("x=%v: escaped=%v bounced=%v, exactly one must hold", x, escaped, bounced)
		}
		if escaped != inGap {
			t.Errorf("x=%v: escaped=%v but InGap=%v", x, escaped, inGap)
		}
	}
}

// Ball crossing the top edge inside the gap range [0.4, 0.6] escapes;
// outside it, it bounces and the vertical velocity flips sign.
func TestTopGapScenario(t *testing.T) {
	b := mustBoundary(t, 800, 600, []Gap{
		{Edge: EdgeTop, StartFraction: 0.4, Width: 160},
	}, false)

	// Normalized x = 0.5, inside the gap.
	ball := mustBall(t, core.V(400, 5), core.V(0, -1), 100, 10)
	escaped, bounced := b.Resolve(ball)
	if !escaped || bounced {
		t.Errorf("x=400: escaped=%v bounced=%v, expected escape", escaped, bounced)
	}

	// Normalized x = 0.1, solid wall.
	ball = mustBall(t, core.V(80, 5), core.V(0, -1), 100, 10)
	escaped, bounced = b.Resolve(ball)
	if escaped || !bounced {
		t.Errorf("x=80: escaped=%v bounced=%v, expected bounce", escaped, bounced)
	}
	if ball.Velocity.Y <= 0 {
		t.Errorf("velocity.Y = %v, expected sign flip to positive", ball.Velocity.Y)
	}
	if ball.Position.Y < ball.Radius {
		t.Errorf("ball not clamped inside bounds: y = %v", ball.Position.Y)
	}
}

func TestAllFourEdgesBounce(t *testing.T) {
	b := mustBoundary(t, 800, 600, nil, false)

	tests := []struct {
		name string
		pos  core.Vec2
		dir  core.Vec2
	}{
		{"top", core.V(400, 5), core.V(0, -1)},
		{"bottom", core.V(400, 595), core.V(0, 1)},
		{"left", core.V(5, 300), core.V(-1, 0)},
		{"right", core.V(795, 300), core.V(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := mustBall(t, tc.pos, tc.dir, 100, 10)
			escaped, bounced := b.Resolve(ball)
			if escaped || !bounced {
				t.Fatalf("escaped=%v bounced=%v, expected bounce", escaped, bounced)
			}
			// Ball must now be moving back into the arena.
			if ball.Velocity.Dot(tc.dir) >= 0 {
				t.Errorf("velocity %v still points outward", ball.Velocity)
			}
		})
	}

	// A ball in the interior touches nothing.
	ball := mustBall(t, core.V(400, 300), core.V(1, 1), 100, 10)
	if escaped, bounced := b.Resolve(ball); escaped || bounced {
		t.Error("interior ball should not contact the boundary")
	}
}

func TestSolidModeNeverEscapes(t *testing.T) {
	// Gaps are configured but solid mode overrides them.
	b := mustBoundary(t, 800, 600, []Gap{
		{Edge: EdgeTop, StartFraction: 0, Width: 800},
	}, true)

	ball := mustBall(t, core.V(400, 5), core.V(0, -1), 100, 10)
	escaped, bounced := b.Resolve(ball)
	if escaped {
		t.Error("solid boundary must never allow escape")
	}
	if !bounced {
		t.Error("solid boundary must bounce")
	}
}
