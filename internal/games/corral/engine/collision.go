// Package engine implements the corral containment simulation: a ball
// bouncing inside a gapped boundary, a registry of player-placed obstacles,
// and the hit-mode dispatcher that turns shot positions into obstacles.
// The package is pure: no I/O, no globals, everything owned by one Round.
package engine

import (
	"math"

	"github.com/mkrivenko/corral/internal/core"
)

// Hit describes a resolved contact: a unit normal pointing from the obstacle
// toward the ball, and the penetration depth to push out along it.
type Hit struct {
	Normal core.Vec2
	Depth  float64
}

// ClosestPointOnSegment returns the point on segment [a,b] nearest to p.
// A zero-length segment degenerates to the point a.
func ClosestPointOnSegment(a, b, p core.Vec2) core.Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a
	}
	t := core.ClampF(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Scale(t))
}

// CircleVsSegment tests a circle against segment [a,b].
// On contact the normal points from the closest segment point toward the
// circle center. If the center lies exactly on the segment, the segment's
// perpendicular is used as a fallback; callers that know the owning shape's
// center should orient it away from that center.
func CircleVsSegment(a, b, center core.Vec2, radius float64) (Hit, bool) {
	closest := ClosestPointOnSegment(a, b, center)
	delta := center.Sub(closest)
	dist := delta.Length()
	if dist >= radius {
		return Hit{}, false
	}
	if dist == 0 {
		n := b.Sub(a).Normalize().Perp()
		if n.IsZero() {
			n = core.V(1, 0)
		}
		return Hit{Normal: n, Depth: radius}, true
	}
	return Hit{Normal: delta.Scale(1 / dist), Depth: radius - dist}, true
}

// CircleVsCircle tests circle A (the ball) against circle B (the obstacle).
// The normal points from B's center toward A's. Coincident centers fall back
// to a fixed axis so the push-out is deterministic.
func CircleVsCircle(centerA core.Vec2, radiusA float64, centerB core.Vec2, radiusB float64) (Hit, bool) {
	delta := centerA.Sub(centerB)
	dist := delta.Length()
	sum := radiusA + radiusB
	if dist >= sum {
		return Hit{}, false
	}
	if dist == 0 {
		return Hit{Normal: core.V(1, 0), Depth: sum}, true
	}
	return Hit{Normal: delta.Scale(1 / dist), Depth: sum - dist}, true
}

// PointInCircle reports whether p lies strictly inside the circle.
func PointInCircle(p, center core.Vec2, radius float64) bool {
	return p.Sub(center).LengthSquared() < radius*radius
}

// PointOnSegmentDistance returns the distance from p to segment [a,b].
func PointOnSegmentDistance(a, b, p core.Vec2) float64 {
	return p.Distance(ClosestPointOnSegment(a, b, p))
}

// wrapAngle normalizes an angle to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
