package game

import (
	"fmt"

	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/session"
)

const bladeRune = '+'

// Render draws the arena, the HUD and any visible panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, e := range g.arena.Entities() {
		col, row, ok := g.viewport.ToScreen(e.Position.XY())
		if !ok {
			continue
		}
		kind := g.arena.Kind(e)
		dst.SetColored(col, row, kind.Rune(), core.ParseColor(kind.Color))
	}

	if g.blade.Enabled() {
		if col, row, ok := g.viewport.ToScreen(g.blade.Position()); ok {
			dst.SetColored(col, row, bladeRune, core.ColorBrightWhite)
		}
	}

	v := g.panel.View()
	if v.HUD {
		g.renderHUD(dst, v)
	}
	switch {
	case v.EndPanel:
		g.renderEndPanel(dst, v)
	case v.StartPanel:
		g.renderStartPanel(dst, v)
	}
}

func (g *Game) renderHUD(dst *core.Screen, v session.PanelView) {
	dst.DrawTextColored(1, 0, "Score: "+v.Score, core.ColorBrightWhite)
	x := dst.Width() - len(v.Timer) - 1
	dst.DrawTextColored(core.Max(0, x), 0, v.Timer, core.ColorBrightYellow)
}

// panelRect centres a box of the given size on the screen.
func panelRect(dst *core.Screen, w, h int) core.Rect {
	w = core.Min(w, dst.Width())
	h = core.Min(h, dst.Height())
	return core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
}

func (g *Game) renderStartPanel(dst *core.Screen, v session.PanelView) {
	r := panelRect(dst, 34, 9)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorCyan)

	dst.DrawTextCentered(r.Y+2, "S L I C E R", core.ColorBrightCyan)
	dst.DrawTextCentered(r.Y+4, v.HighScore, core.ColorYellow)
	dst.DrawTextCentered(r.Y+6, "Enter: play   Q: quit", core.ColorGray)
}

func (g *Game) renderEndPanel(dst *core.Screen, v session.PanelView) {
	r := panelRect(dst, 34, 10)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorRed)

	title := "TIME UP"
	if g.ctl.TimeRemaining() > 0 {
		title = "BOOM"
	}
	dst.DrawTextCentered(r.Y+2, title, core.ColorBrightRed)
	dst.DrawTextCentered(r.Y+4, v.FinalScore, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+5, v.HighScore, core.ColorYellow)
	dst.DrawTextCentered(r.Y+7, fmt.Sprintf("R: restart   Q: quit   (%d cut)", g.arena.Sliced()), core.ColorGray)
}
