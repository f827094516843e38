package engine

import (
	"fmt"
)

// Edge identifies one of the arena's four boundary edges.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the edge's name as used in level files.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseEdge converts a level-file edge name to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	default:
		return 0, fmt.Errorf("engine: unknown edge %q", s)
	}
}

// Gap is an opening in a boundary edge: a normalized start offset along the
// edge plus a width in world units. Immutable once the round starts.
type Gap struct {
	Edge          Edge
	StartFraction float64
	Width         float64
}

// Boundary is the arena's four edges with their gaps. In solid mode all
// edges bounce and escape is impossible.
type Boundary struct {
	Width  float64
	Height float64
	Gaps   []Gap
	Solid  bool
}

// NewBoundary constructs a boundary for the given arena size.
func NewBoundary(width, height float64, gaps []Gap, solid bool) (*Boundary, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: arena size must be positive, got %vx%v", width, height)
	}
	for _, g := range gaps {
		if g.StartFraction < 0 || g.StartFraction > 1 || g.Width <= 0 {
			return nil, fmt.Errorf("engine: invalid gap on %s edge: start=%v width=%v", g.Edge, g.StartFraction, g.Width)
		}
	}
	return &Boundary{Width: width, Height: height, Gaps: gaps, Solid: solid}, nil
}

// edgeLength returns the length of an edge in world units.
func (b *Boundary) edgeLength(e Edge) float64 {
	if e == EdgeLeft || e == EdgeRight {
		return b.Height
	}
	return b.Width
}

// InGap reports whether a coordinate along the given edge falls inside one
// of that edge's gaps. Exactly one of InGap / wall-bounce holds for any
// boundary contact.
func (b *Boundary) InGap(e Edge, coord float64) bool {
	if b.Solid {
		return false
	}
	for _, g := range b.Gaps {
		if g.Edge != e {
			continue
		}
		start := g.StartFraction * b.edgeLength(e)
		if coord >= start && coord <= start+g.Width {
			return true
		}
	}
	return false
}

// Resolve tests the ball's leading edge against all four boundary edges.
// A crossing inside a gap is an escape; any other crossing is an
// axis-aligned bounce with the position clamped back inside. Returns
// whether the ball escaped and whether a wall bounce was applied.
func (b *Boundary) Resolve(ball *Ball) (escaped, bounced bool) {
	r := ball.Radius

	if ball.Position.Y-r <= 0 {
		if b.InGap(EdgeTop, ball.Position.X) {
			return true, false
		}
		if ball.Velocity.Y < 0 {
			ball.BounceVertical()
		}
		ball.Position.Y = r
		return false, true
	}
	if ball.Position.Y+r >= b.Height {
		if b.InGap(EdgeBottom, ball.Position.X) {
			return true, false
		}
		if ball.Velocity.Y > 0 {
			ball.BounceVertical()
		}
		ball.Position.Y = b.Height - r
		return false, true
	}
	if ball.Position.X-r <= 0 {
		if b.InGap(EdgeLeft, ball.Position.Y) {
			return true, false
		}
		if ball.Velocity.X < 0 {
			ball.BounceHorizontal()
		}
		ball.Position.X = r
		return false, true
	}
	if ball.Position.X+r >= b.Width {
		if b.InGap(EdgeRight, ball.Position.Y) {
			return true, false
		}
		if ball.Velocity.X > 0 {
			ball.BounceHorizontal()
		}
		ball.Position.X = b.Width - r
		return false, true
	}
	return false, false
}
