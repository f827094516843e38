package engine

import (
	"fmt"
	"math"

	"github.com/mkrivenko/corral/internal/core"
)

// Deflector is an immutable line-segment obstacle placed by the player.
// It lives until round reset.
type Deflector struct {
	center core.Vec2
	angle  float64 // radians
	length float64
}

// NewDeflector constructs a deflector, rejecting non-positive lengths.
func NewDeflector(center core.Vec2, angle, length float64) (*Deflector, error) {
	if length <= 0 {
		return nil, fmt.Errorf("engine: deflector length must be positive, got %v", length)
	}
	return &Deflector{center: center, angle: wrapAngle(angle), length: length}, nil
}

// Segment returns the deflector's endpoints.
func (d *Deflector) Segment() (core.Vec2, core.Vec2) {
	half := core.FromAngle(d.angle).Scale(d.length / 2)
	return d.center.Sub(half), d.center.Add(half)
}

// Center returns the segment midpoint.
func (d *Deflector) Center() core.Vec2 { return d.center }

// Angle returns the segment orientation in radians.
func (d *Deflector) Angle() float64 { return d.angle }

// Length returns the segment length.
func (d *Deflector) Length() float64 { return d.length }

// Kind implements Obstacle.
func (d *Deflector) Kind() Kind { return KindDeflector }

// Update implements Obstacle; deflectors are static and never expire.
func (d *Deflector) Update(dt float64) bool { return true }

// Collide implements Obstacle.
func (d *Deflector) Collide(center core.Vec2, radius float64) (Hit, bool) {
	a, b := d.Segment()
	return CircleVsSegment(a, b, center, radius)
}

// PointObstacle is a static circular marker. It doubles as a "dot" in
// connect mode: a pending endpoint for the next chained deflector.
type PointObstacle struct {
	center core.Vec2
	radius float64
}

// NewPointObstacle constructs a point obstacle, rejecting non-positive radii.
func NewPointObstacle(center core.Vec2, radius float64) (*PointObstacle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("engine: point radius must be positive, got %v", radius)
	}
	return &PointObstacle{center: center, radius: radius}, nil
}

// Center returns the marker position.
func (p *PointObstacle) Center() core.Vec2 { return p.center }

// Radius returns the marker radius.
func (p *PointObstacle) Radius() float64 { return p.radius }

// Kind implements Obstacle.
func (p *PointObstacle) Kind() Kind { return KindPoint }

// Update implements Obstacle; points are static and never expire.
func (p *PointObstacle) Update(dt float64) bool { return true }

// Collide implements Obstacle.
func (p *PointObstacle) Collide(center core.Vec2, radius float64) (Hit, bool) {
	return CircleVsCircle(center, radius, p.center, p.radius)
}

// deflectorBetween builds the connect-mode deflector spanning two dots.
func deflectorBetween(a, b core.Vec2) (*Deflector, error) {
	mid := a.Add(b).Scale(0.5)
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	return NewDeflector(mid, angle, a.Distance(b))
}
