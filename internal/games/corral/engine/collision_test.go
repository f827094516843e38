package engine

import (
	"math"
	"testing"

	"github.com/mkrivenko/corral/internal/core"
)

func TestClosestPointOnSegment(t *testing.T) {
	a, b := core.V(0, 0), core.V(10, 0)

	tests := []struct {
		name     string
		p        core.Vec2
		expected core.Vec2
	}{
		{"above middle", core.V(5, 3), core.V(5, 0)},
		{"beyond start", core.V(-4, 2), core.V(0, 0)},
		{"beyond end", core.V(14, -2), core.V(10, 0)},
		{"on segment", core.V(7, 0), core.V(7, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClosestPointOnSegment(a, b, tc.p)
			if !approx(got.X, tc.expected.X) || !approx(got.Y, tc.expected.Y) {
				t.Errorf("ClosestPointOnSegment = %v, expected %v", got, tc.expected)
			}
		})
	}

	// Zero-length segment degenerates to the point.
	got := ClosestPointOnSegment(core.V(3, 3), core.V(3, 3), core.V(9, 9))
	if got != core.V(3, 3) {
		t.Errorf("degenerate segment closest point = %v, expected (3, 3)", got)
	}
}

func TestCircleVsSegment(t *testing.T) {
	a, b := core.V(0, 0), core.V(10, 0)

	// Circle above the segment, overlapping.
	hit, ok := CircleVsSegment(a, b, core.V(5, 3), 5)
	if !ok {
		t.Fatal("expected collision")
	}
	if !approx(hit.Normal.X, 0) || !approx(hit.Normal.Y, 1) {
		t.Errorf("normal = %v, expected (0, 1)", hit.Normal)
	}
	if !approx(hit.Depth, 2) {
		t.Errorf("depth = %v, expected 2", hit.Depth)
	}

	// Circle clear of the segment.
	if _, ok := CircleVsSegment(a, b, core.V(5, 8), 5); ok {
		t.Error("expected no collision at distance 8 with radius 5")
	}

	// Touching exactly is not a collision (strict inequality).
	if _, ok := CircleVsSegment(a, b, core.V(5, 5), 5); ok {
		t.Error("tangent contact should not report a collision")
	}

	// Center exactly on the segment: perpendicular fallback, full depth.
	hit, ok = CircleVsSegment(a, b, core.V(5, 0), 4)
	if !ok {
		t.Fatal("expected collision with center on segment")
	}
	if !approx(hit.Normal.Length(), 1) {
		t.Errorf("fallback normal not unit length: %v", hit.Normal)
	}
	if !approx(hit.Normal.Dot(b.Sub(a).Normalize()), 0) {
		t.Errorf("fallback normal not perpendicular to segment: %v", hit.Normal)
	}
	if !approx(hit.Depth, 4) {
		t.Errorf("fallback depth = %v, expected radius", hit.Depth)
	}

	// Zero-length segment behaves as a point test.
	hit, ok = CircleVsSegment(core.V(0, 0), core.V(0, 0), core.V(2, 0), 3)
	if !ok {
		t.Fatal("expected collision against degenerate segment")
	}
	if !approx(hit.Normal.X, 1) || !approx(hit.Normal.Y, 0) {
		t.Errorf("normal = %v, expected (1, 0)", hit.Normal)
	}
}

func TestCircleVsCircle(t *testing.T) {
	hit, ok := CircleVsCircle(core.V(8, 0), 5, core.V(0, 0), 5)
	if !ok {
		t.Fatal("expected collision")
	}
	if !approx(hit.Normal.X, 1) || !approx(hit.Normal.Y, 0) {
		t.Errorf("normal = %v, expected (1, 0)", hit.Normal)
	}
	if !approx(hit.Depth, 2) {
		t.Errorf("depth = %v, expected 2", hit.Depth)
	}

	if _, ok := CircleVsCircle(core.V(20, 0), 5, core.V(0, 0), 5); ok {
		t.Error("expected no collision at distance 20")
	}

	// Coincident centers: deterministic fixed-axis fallback.
	hit, ok = CircleVsCircle(core.V(3, 3), 2, core.V(3, 3), 4)
	if !ok {
		t.Fatal("expected collision for coincident centers")
	}
	if hit.Normal != core.V(1, 0) {
		t.Errorf("fallback normal = %v, expected (1, 0)", hit.Normal)
	}
	if !approx(hit.Depth, 6) {
		t.Errorf("fallback depth = %v, expected 6", hit.Depth)
	}
}

func TestPointInCircle(t *testing.T) {
	center := core.V(10, 10)

	if !PointInCircle(core.V(12, 10), center, 5) {
		t.Error("point inside not detected")
	}
	if PointInCircle(core.V(20, 10), center, 5) {
		t.Error("point outside wrongly detected")
	}
	// Boundary is exclusive.
	if PointInCircle(core.V(15, 10), center, 5) {
		t.Error("point on circle should not count as inside")
	}
}

func TestPointOnSegmentDistance(t *testing.T) {
	d := PointOnSegmentDistance(core.V(0, 0), core.V(10, 0), core.V(5, 4))
	if !approx(d, 4) {
		t.Errorf("distance = %v, expected 4", d)
	}
}

// A ball heading straight into a vertical deflector must come out with its
// horizontal velocity mirrored and its position separated from the segment.
func TestDeflectorReflectionScenario(t *testing.T) {
	ball := mustBall(t, core.V(400, 300), core.V(1, 0), 100, 20)
	def, err := NewDeflector(core.V(410, 300), math.Pi/2, 40) // vertical, y in [280, 320]
	if err != nil {
		t.Fatalf("NewDeflector: %v", err)
	}

	ball.Integrate(0.05) // x -> 405, 5 units from the segment, radius 20

	hit, ok := def.Collide(ball.Position, ball.Radius)
	if !ok {
		t.Fatal("expected collision with deflector")
	}
	ball.Reflect(hit.Normal, hit.Depth)

	if !approx(ball.Velocity.X, -1) || !approx(ball.Velocity.Y, 0) {
		t.Errorf("velocity direction = %v, expected (-1, 0)", ball.Velocity)
	}
	if ball.Position.X > 410-ball.Radius {
		t.Errorf("ball not separated from deflector: x = %v", ball.Position.X)
	}
}
