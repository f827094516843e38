package engine

import "github.com/mkrivenko/corral/internal/core"

// Kind identifies an obstacle variant.
type Kind int

const (
	KindDeflector Kind = iota
	KindSpinner
	KindPoint
	KindMorph
	KindGrow
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindDeflector:
		return "deflector"
	case KindSpinner:
		return "spinner"
	case KindPoint:
		return "point"
	case KindMorph:
		return "morph"
	case KindGrow:
		return "grow"
	default:
		return "unknown"
	}
}

// Obstacle is the uniform capability every variant exposes: a per-tick
// update hook (returning false when the obstacle should be removed) and a
// collision test against a circle.
type Obstacle interface {
	Kind() Kind
	Update(dt float64) bool
	Collide(center core.Vec2, radius float64) (Hit, bool)
}

// Registry owns all live obstacles for one round. Collections are flat and
// scanned linearly each tick; entity counts stay in the tens.
type Registry struct {
	deflectors []*Deflector
	spinners   []*Spinner
	points     []*PointObstacle
	morphs     []*Morph
	grows      []*Grow
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) AddDeflector(d *Deflector)  { r.deflectors = append(r.deflectors, d) }
func (r *Registry) AddSpinner(s *Spinner)      { r.spinners = append(r.spinners, s) }
func (r *Registry) AddPoint(p *PointObstacle)  { r.points = append(r.points, p) }
func (r *Registry) AddMorph(m *Morph)          { r.morphs = append(r.morphs, m) }
func (r *Registry) AddGrow(g *Grow)            { r.grows = append(r.grows, g) }

// RemovePoint drops a point obstacle (a consumed connect dot).
func (r *Registry) RemovePoint(p *PointObstacle) {
	for i, q := range r.points {
		if q == p {
			r.points = append(r.points[:i], r.points[i+1:]...)
			return
		}
	}
}

// DeflectorCount reports live deflectors, used for the spawn-time cap.
func (r *Registry) DeflectorCount() int { return len(r.deflectors) }

// Count reports the total number of live obstacles.
func (r *Registry) Count() int {
	return len(r.deflectors) + len(r.spinners) + len(r.points) + len(r.morphs) + len(r.grows)
}

// Grows returns the live grow obstacles, in insertion order.
func (r *Registry) Grows() []*Grow { return r.grows }

// Update runs every obstacle's per-tick hook and drops the ones that report
// expiry (only grow obstacles decay; the rest live until round reset).
func (r *Registry) Update(dt float64) {
	for _, s := range r.spinners {
		s.Update(dt)
	}
	for _, m := range r.morphs {
		m.Update(dt)
	}
	alive := r.grows[:0]
	for _, g := range r.grows {
		if g.Update(dt) {
			alive = append(alive, g)
		}
	}
	r.grows = alive
}

// FirstCollision scans obstacles in the legacy check order — spinners,
// deflectors, points, morphs, grows — and returns the first contact found.
// At most one obstacle collision is resolved per tick; at low frame rates a
// ball wedged between two obstacles can go under-detected. Known limitation,
// kept for parity with observed behavior.
func (r *Registry) FirstCollision(center core.Vec2, radius float64) (Hit, bool) {
	for _, s := range r.spinners {
		if hit, ok := s.Collide(center, radius); ok {
			return hit, true
		}
	}
	for _, d := range r.deflectors {
		if hit, ok := d.Collide(center, radius); ok {
			return hit, true
		}
	}
	for _, p := range r.points {
		if hit, ok := p.Collide(center, radius); ok {
			return hit, true
		}
	}
	for _, m := range r.morphs {
		if hit, ok := m.Collide(center, radius); ok {
			return hit, true
		}
	}
	for _, g := range r.grows {
		if hit, ok := g.Collide(center, radius); ok {
			return hit, true
		}
	}
	return Hit{}, false
}
