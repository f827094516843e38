package engine

import (
	"fmt"
	"math"

	"github.com/mkrivenko/corral/internal/core"
)

// pulsateRate is the phase advance speed for pulsating morph obstacles.
const pulsateRate = 3.0 // rad/s

// Morph is a rotating polygon that cycles through a list of side counts on
// a fixed interval and may pulsate its radius sinusoidally.
type Morph struct {
	center        core.Vec2
	shapes        []int // side counts, cycled in order
	shapeIndex    int
	size          float64
	angle         float64
	rotationSpeed float64 // degrees per second, signed
	morphInterval float64 // seconds between shape changes
	morphTimer    float64
	pulsate       bool
	pulsateAmount float64
	pulsatePhase  float64
}

// NewMorph constructs a morph obstacle. Every shape in the cycle must be a
// valid polygon.
func NewMorph(center core.Vec2, shapes []int, size, rotationSpeed, morphInterval float64, pulsate bool, pulsateAmount float64) (*Morph, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("engine: morph needs at least one shape")
	}
	for _, n := range shapes {
		if n < 3 {
			return nil, fmt.Errorf("engine: morph shape needs at least 3 sides, got %d", n)
		}
	}
	if size <= 0 {
		return nil, fmt.Errorf("engine: morph size must be positive, got %v", size)
	}
	if morphInterval <= 0 {
		return nil, fmt.Errorf("engine: morph interval must be positive, got %v", morphInterval)
	}
	return &Morph{
		center:        center,
		shapes:        shapes,
		size:          size,
		rotationSpeed: rotationSpeed,
		morphInterval: morphInterval,
		pulsate:       pulsate,
		pulsateAmount: pulsateAmount,
	}, nil
}

// Center returns the polygon center.
func (m *Morph) Center() core.Vec2 { return m.center }

// EffectiveSize returns the current radius, including pulsation.
func (m *Morph) EffectiveSize() float64 {
	if !m.pulsate {
		return m.size
	}
	return m.size * (1 + math.Sin(m.pulsatePhase)*m.pulsateAmount)
}

// Sides returns the current side count.
func (m *Morph) Sides() int { return m.shapes[m.shapeIndex] }

// Vertices returns the polygon's current vertex positions.
func (m *Morph) Vertices() []core.Vec2 {
	return polygonVertices(m.center, m.Sides(), m.EffectiveSize(), m.angle)
}

// Kind implements Obstacle.
func (m *Morph) Kind() Kind { return KindMorph }

// Update integrates rotation, the morph timer, and the pulsate phase.
// Morph obstacles never expire.
func (m *Morph) Update(dt float64) bool {
	m.angle = wrapAngle(m.angle + m.rotationSpeed*(math.Pi/180)*dt)
	m.morphTimer += dt
	for m.morphTimer >= m.morphInterval {
		m.morphTimer -= m.morphInterval
		m.shapeIndex = (m.shapeIndex + 1) % len(m.shapes)
	}
	if m.pulsate {
		m.pulsatePhase += pulsateRate * dt
	}
	return true
}

// Collide implements Obstacle.
func (m *Morph) Collide(center core.Vec2, radius float64) (Hit, bool) {
	return polygonCollide(m.Vertices(), m.center, center, radius)
}
