package engine

import (
	"fmt"
	"math"

	"github.com/mkrivenko/corral/internal/core"
)

// Grow is a circular obstacle that enlarges when another shot lands inside
// it, capped at a maximum size, and optionally decays away over time.
type Grow struct {
	center       core.Vec2
	size         float64
	maxSize      float64
	growthPerHit float64 // multiplicative: size *= 1 + growthPerHit
	decayRate    float64 // size units per second; 0 disables decay
}

// NewGrow constructs a grow obstacle, validating sizes at the boundary so
// the per-tick loop never sees a degenerate circle.
func NewGrow(center core.Vec2, size, maxSize, growthPerHit, decayRate float64) (*Grow, error) {
	if size <= 0 {
		return nil, fmt.Errorf("engine: grow size must be positive, got %v", size)
	}
	if maxSize < size {
		return nil, fmt.Errorf("engine: grow max size %v is below initial size %v", maxSize, size)
	}
	if growthPerHit < 0 || decayRate < 0 {
		return nil, fmt.Errorf("engine: grow rates must be non-negative")
	}
	return &Grow{center: center, size: size, maxSize: maxSize, growthPerHit: growthPerHit, decayRate: decayRate}, nil
}

// Center returns the circle center.
func (g *Grow) Center() core.Vec2 { return g.center }

// Size returns the current radius.
func (g *Grow) Size() float64 { return g.size }

// Contains reports whether a hit position lands inside the current circle.
func (g *Grow) Contains(p core.Vec2) bool {
	return PointInCircle(p, g.center, g.size)
}

// TryGrow enlarges the obstacle if the hit lies inside it, never past the
// maximum size. Returns whether the hit was absorbed.
func (g *Grow) TryGrow(hit core.Vec2) bool {
	if !g.Contains(hit) {
		return false
	}
	g.size = math.Min(g.size*(1+g.growthPerHit), g.maxSize)
	return true
}

// Kind implements Obstacle.
func (g *Grow) Kind() Kind { return KindGrow }

// Update applies decay; reports false once the obstacle has shrunk away.
func (g *Grow) Update(dt float64) bool {
	if g.decayRate > 0 {
		g.size -= g.decayRate * dt
	}
	return g.size > 0
}

// Collide implements Obstacle.
func (g *Grow) Collide(center core.Vec2, radius float64) (Hit, bool) {
	return CircleVsCircle(center, radius, g.center, g.size)
}
