package world

import "github.com/vovakirdan/tui-slicer/internal/core"

// Blade is the player's cutting implement. It cuts along the segment it
// travelled since the last arena step, and only while enabled.
type Blade struct {
	pos     core.Vec2
	prev    core.Vec2
	view    core.Bounds3 // Movement is clamped to this region
	step    float64      // World units per Nudge
	enabled bool
	moved   bool
}

// NewBlade creates a disabled blade at the centre of the view.
func NewBlade(view core.Bounds3, step float64) *Blade {
	center := core.Vec2{
		X: (view.Min.X + view.Max.X) / 2,
		Y: (view.Min.Y + view.Max.Y) / 2,
	}
	return &Blade{pos: center, prev: center, view: view, step: step}
}

// Enable lets the blade cut. Movement made while disabled does not count.
func (b *Blade) Enable() {
	b.enabled = true
	b.prev = b.pos
	b.moved = false
}

// Disable stops the blade from cutting.
func (b *Blade) Disable() {
	b.enabled = false
	b.moved = false
}

// Enabled reports whether the blade can cut.
func (b *Blade) Enabled() bool {
	return b.enabled
}

// Position returns the blade tip in world units.
func (b *Blade) Position() core.Vec2 {
	return b.pos
}

// MoveTo places the blade tip, clamped to the view.
func (b *Blade) MoveTo(p core.Vec2) {
	p.X = core.ClampF(p.X, b.view.Min.X, b.view.Max.X)
	p.Y = core.ClampF(p.Y, b.view.Min.Y, b.view.Max.Y)
	if p == b.pos {
		return
	}
	b.pos = p
	b.moved = true
}

// Nudge moves the blade by whole steps (keyboard control).
func (b *Blade) Nudge(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	b.MoveTo(core.Vec2{
		X: b.pos.X + float64(dx)*b.step,
		Y: b.pos.Y + float64(dy)*b.step,
	})
}

// segment returns the cut made since the last settle.
func (b *Blade) segment() (from, to core.Vec2, ok bool) {
	return b.prev, b.pos, b.enabled && b.moved
}

// settle marks the current position as the start of the next cut.
func (b *Blade) settle() {
	b.prev = b.pos
	b.moved = false
}
