package corral

import (
	"fmt"
	"math"

	"github.com/mkrivenko/corral/internal/core"
	"github.com/mkrivenko/corral/internal/games/corral/engine"
)

// Render characters
const (
	BallChar      = '●'
	DeflectorChar = '█'
	PolygonChar   = '▒'
	PointChar     = '•'
	GrowChar      = '○'
	GapChar       = '·'
)

const hudRows = 1

const (
	minScreenWidth  = 24
	minScreenHeight = 10
)

// playfield returns the screen rectangle holding the fence and arena.
// Row 0 is the HUD; the fence sits on the rectangle's perimeter and the
// world maps onto the interior cells.
func (g *Game) playfield() core.Rect {
	return core.NewRect(0, hudRows, g.runtime.ScreenW, g.runtime.ScreenH-hudRows)
}

// worldToScreen maps a world position to an interior playfield cell.
func (g *Game) worldToScreen(p core.Vec2) (int, int) {
	field := g.playfield()
	innerW := field.W - 2
	innerH := field.H - 2
	worldW := g.level.Params.Width
	worldH := g.level.Params.Height
	if innerW < 1 || innerH < 1 || worldW <= 0 || worldH <= 0 {
		return field.X + 1, field.Y + 1
	}

	sx := field.X + 1 + int(p.X/worldW*float64(innerW))
	sy := field.Y + 1 + int(p.Y/worldH*float64(innerH))
	sx = core.Clamp(sx, field.X+1, field.Right()-2)
	sy = core.Clamp(sy, field.Y+1, field.Bottom()-2)
	return sx, sy
}

// screenToWorld maps a clicked screen cell to world coordinates, using the
// cell center so a click lands where the glyph appears.
func (g *Game) screenToWorld(hit core.Vec2) core.Vec2 {
	field := g.playfield()
	innerW := float64(field.W - 2)
	innerH := float64(field.H - 2)
	worldW := g.level.Params.Width
	worldH := g.level.Params.Height
	if innerW < 1 || innerH < 1 {
		return core.V(0, 0)
	}

	wx := (hit.X - float64(field.X+1) + 0.5) / innerW * worldW
	wy := (hit.Y - float64(field.Y+1) + 0.5) / innerH * worldH
	return core.V(core.ClampF(wx, 0, worldW), core.ClampF(wy, 0, worldH))
}

// Render draws the HUD, the fence with its gaps, all obstacles, and the ball.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		return
	}
	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Level load failed")
		dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		return
	}
	if g.round == nil {
		return
	}

	snap := g.round.Snapshot()

	g.renderHUD(dst, snap)
	g.renderFence(dst, snap)

	for _, seg := range snap.Segments {
		g.drawWorldSegment(dst, seg.A, seg.B, DeflectorChar, core.ColorCyan)
	}
	for _, poly := range snap.Polygons {
		color := core.ColorMagenta
		if poly.Morphing {
			color = core.ColorBlue
		}
		g.drawWorldPolygon(dst, poly.Vertices, color)
	}
	for _, c := range snap.Circles {
		switch c.Kind {
		case engine.KindGrow:
			g.drawWorldCircle(dst, c.Center, c.Radius, GrowChar, core.ColorGreen)
		default:
			x, y := g.worldToScreen(c.Center)
			dst.SetColored(x, y, PointChar, core.ColorYellow)
		}
	}

	bx, by := g.worldToScreen(snap.Ball.Position)
	dst.SetColored(bx, by, BallChar, core.ColorBrightYellow)

	g.renderOverlay(dst, snap)
}

// renderHUD draws the status line above the playfield.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	shots := "∞"
	if snap.ShotsLeft >= 0 {
		shots = fmt.Sprintf("%d", snap.ShotsLeft)
	}
	if snap.Retrieving {
		shots = "..."
	}

	hud := fmt.Sprintf(" %s │ TIME %5.1f/%.0f │ SHOTS %s │ SPEED x%.2f",
		g.level.Name, snap.Elapsed, snap.TimeLimit, shots, snap.Ball.Multiplier)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
}

// renderFence draws the arena border, marking gap spans so the player can
// see where the ball may escape.
func (g *Game) renderFence(dst *core.Screen, snap engine.Snapshot) {
	field := g.playfield()
	left := field.X
	right := field.Right() - 1
	top := field.Y
	bottom := field.Bottom() - 1
	innerW := field.W - 2
	innerH := field.H - 2
	worldW := g.level.Params.Width
	worldH := g.level.Params.Height

	// Horizontal edges
	for i := 0; i < innerW; i++ {
		wx := (float64(i) + 0.5) / float64(innerW) * worldW
		g.drawFenceCell(dst, left+1+i, top, '─', snap.Gaps, engine.EdgeTop, wx, worldW)
		g.drawFenceCell(dst, left+1+i, bottom, '─', snap.Gaps, engine.EdgeBottom, wx, worldW)
	}
	// Vertical edges
	for i := 0; i < innerH; i++ {
		wy := (float64(i) + 0.5) / float64(innerH) * worldH
		g.drawFenceCell(dst, left, top+1+i, '│', snap.Gaps, engine.EdgeLeft, wy, worldH)
		g.drawFenceCell(dst, right, top+1+i, '│', snap.Gaps, engine.EdgeRight, wy, worldH)
	}

	dst.SetColored(left, top, '┌', core.ColorGray)
	dst.SetColored(right, top, '┐', core.ColorGray)
	dst.SetColored(left, bottom, '└', core.ColorGray)
	dst.SetColored(right, bottom, '┘', core.ColorGray)
}

// drawFenceCell draws one border cell: a wall rune, or a dim gap marker when
// the world coordinate falls inside a gap on that edge.
func (g *Game) drawFenceCell(dst *core.Screen, x, y int, wall rune, gaps []engine.Gap, edge engine.Edge, coord, edgeLen float64) {
	for _, gap := range gaps {
		if gap.Edge != edge {
			continue
		}
		start := gap.StartFraction * edgeLen
		if coord >= start && coord <= start+gap.Width {
			dst.SetColored(x, y, GapChar, core.ColorGray)
			return
		}
	}
	dst.SetColored(x, y, wall, core.ColorWhite)
}

// drawWorldSegment rasterizes a world-space segment by sampling points
// along it at sub-cell resolution.
func (g *Game) drawWorldSegment(dst *core.Screen, a, b core.Vec2, ch rune, color core.Color) {
	length := a.Distance(b)
	steps := int(length) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(b.Sub(a).Scale(t))
		x, y := g.worldToScreen(p)
		dst.SetColored(x, y, ch, color)
	}
}

// drawWorldPolygon draws the polygon outline edge by edge.
func (g *Game) drawWorldPolygon(dst *core.Screen, verts []core.Vec2, color core.Color) {
	for i := range verts {
		next := verts[(i+1)%len(verts)]
		g.drawWorldSegment(dst, verts[i], next, PolygonChar, color)
	}
}

// drawWorldCircle samples the circle's perimeter.
func (g *Game) drawWorldCircle(dst *core.Screen, center core.Vec2, radius float64, ch rune, color core.Color) {
	steps := core.Max(12, int(radius))
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		p := center.Add(core.FromAngle(angle).Scale(radius))
		x, y := g.worldToScreen(p)
		dst.SetColored(x, y, ch, color)
	}
}

// renderOverlay draws pause, retrieval, and round-end messages.
func (g *Game) renderOverlay(dst *core.Screen, snap engine.Snapshot) {
	centerY := dst.Height() / 2

	if g.paused {
		dst.DrawTextCentered(centerY, "PAUSED")
		dst.DrawTextCentered(centerY+1, "Press P to resume")
		return
	}
	if snap.Retrieving && !g.over {
		dst.DrawTextCentered(centerY, "Retrieving shots...")
		return
	}
	if !g.over {
		return
	}

	switch snap.Outcome {
	case engine.OutcomeTimeLimit:
		dst.DrawTextColored(dst.Width()/2-5, centerY, "CONTAINED!", core.ColorBrightGreen)
	case engine.OutcomeEscaped:
		dst.DrawTextColored(dst.Width()/2-4, centerY, "ESCAPED!", core.ColorBrightRed)
	}
	dst.DrawTextCentered(centerY+1, fmt.Sprintf("Survived %.1fs", snap.Elapsed))
	dst.DrawTextCentered(centerY+2, "Press R to restart, Q to quit")
}
