package world

import (
	"math"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Viewport maps the world view rectangle onto a grid of terminal cells.
// World Y grows upwards, screen rows grow downwards.
type Viewport struct {
	View core.Bounds3
	W, H int
}

// NewViewport creates a viewport of w x h cells.
func NewViewport(view core.Bounds3, w, h int) Viewport {
	return Viewport{View: view, W: w, H: h}
}

// ToScreen returns the cell containing p. ok is false outside the grid.
func (v Viewport) ToScreen(p core.Vec2) (col, row int, ok bool) {
	spanX := v.View.Max.X - v.View.Min.X
	spanY := v.View.Max.Y - v.View.Min.Y
	if v.W <= 0 || v.H <= 0 || spanX <= 0 || spanY <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((p.X - v.View.Min.X) / spanX * float64(v.W)))
	row = int(math.Floor((v.View.Max.Y - p.Y) / spanY * float64(v.H)))
	ok = col >= 0 && col < v.W && row >= 0 && row < v.H
	return col, row, ok
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(col, row int) core.Vec2 {
	if v.W <= 0 || v.H <= 0 {
		return core.Vec2{}
	}
	spanX := v.View.Max.X - v.View.Min.X
	spanY := v.View.Max.Y - v.View.Min.Y
	return core.Vec2{
		X: v.View.Min.X + (float64(col)+0.5)/float64(v.W)*spanX,
		Y: v.View.Max.Y - (float64(row)+0.5)/float64(v.H)*spanY,
	}
}
