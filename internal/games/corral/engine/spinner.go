package engine

import (
	"fmt"
	"math"

	"github.com/mkrivenko/corral/internal/core"
)

// Spinner is a regular N-sided polygon rotating at a constant angular
// velocity. The ball collides with its edges.
type Spinner struct {
	center        core.Vec2
	sides         int
	size          float64 // circumradius
	angle         float64 // radians, wrapped to [0, 2π)
	rotationSpeed float64 // degrees per second, signed
}

// NewSpinner constructs a spinner, rejecting degenerate polygons.
func NewSpinner(center core.Vec2, sides int, size, rotationSpeed float64) (*Spinner, error) {
	if sides < 3 {
		return nil, fmt.Errorf("engine: spinner needs at least 3 sides, got %d", sides)
	}
	if size <= 0 {
		return nil, fmt.Errorf("engine: spinner size must be positive, got %v", size)
	}
	return &Spinner{center: center, sides: sides, size: size, rotationSpeed: rotationSpeed}, nil
}

// Center returns the polygon center.
func (s *Spinner) Center() core.Vec2 { return s.center }

// Angle returns the current rotation in radians.
func (s *Spinner) Angle() float64 { return s.angle }

// Vertices returns the polygon's current vertex positions: vertex i sits at
// angle + i*(2π/N) on the circumcircle.
func (s *Spinner) Vertices() []core.Vec2 {
	return polygonVertices(s.center, s.sides, s.size, s.angle)
}

// Kind implements Obstacle.
func (s *Spinner) Kind() Kind { return KindSpinner }

// Update integrates the rotation. Spinners never expire.
func (s *Spinner) Update(dt float64) bool {
	s.angle = wrapAngle(s.angle + s.rotationSpeed*(math.Pi/180)*dt)
	return true
}

// Collide implements Obstacle: the first edge in contact wins.
func (s *Spinner) Collide(center core.Vec2, radius float64) (Hit, bool) {
	return polygonCollide(s.Vertices(), s.center, center, radius)
}

// polygonVertices computes N vertices on a circumcircle.
func polygonVertices(center core.Vec2, sides int, size, angle float64) []core.Vec2 {
	verts := make([]core.Vec2, sides)
	for i := 0; i < sides; i++ {
		a := angle + float64(i)*(2*math.Pi/float64(sides))
		verts[i] = center.Add(core.FromAngle(a).Scale(size))
	}
	return verts
}

// polygonCollide tests a circle against the polygon's edges (consecutive
// vertex pairs, wrapping). The contact normal is oriented away from the
// polygon center so the ball is never reflected into the shape.
func polygonCollide(verts []core.Vec2, polyCenter, center core.Vec2, radius float64) (Hit, bool) {
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		hit, ok := CircleVsSegment(a, b, center, radius)
		if !ok {
			continue
		}
		if hit.Normal.Dot(center.Sub(polyCenter)) < 0 {
			hit.Normal = hit.Normal.Scale(-1)
		}
		return hit, true
	}
	return Hit{}, false
}
