package session

import (
	"sync"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Presenter is the presentation sink the controller writes to.
type Presenter interface {
	SetScoreText(text string)
	SetTimerText(text string)
	SetFinalScoreText(text string)
	SetHighScoreText(text string)
	ShowHUD(visible bool)
	ShowStartPanel(visible bool)
	ShowEndPanel(visible bool)
	SetFadeColor(c core.RGBA)
}

// Panel is an in-memory Presenter. The renderer reads it through View.
type Panel struct {
	mu   sync.RWMutex
	view PanelView
}

// PanelView is a snapshot of everything the panel shows.
type PanelView struct {
	Score      string
	Timer      string
	FinalScore string
	HighScore  string
	HUD        bool
	StartPanel bool
	EndPanel   bool
	Fade       core.RGBA
}

// NewPanel creates an empty panel with every element hidden.
func NewPanel() *Panel {
	return &Panel{}
}

// View returns a copy of the current panel state.
func (p *Panel) View() PanelView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

func (p *Panel) update(fn func(v *PanelView)) {
	p.mu.Lock()
	fn(&p.view)
	p.mu.Unlock()
}

func (p *Panel) SetScoreText(text string)      { p.update(func(v *PanelView) { v.Score = text }) }
func (p *Panel) SetTimerText(text string)      { p.update(func(v *PanelView) { v.Timer = text }) }
func (p *Panel) SetFinalScoreText(text string) { p.update(func(v *PanelView) { v.FinalScore = text }) }
func (p *Panel) SetHighScoreText(text string)  { p.update(func(v *PanelView) { v.HighScore = text }) }
func (p *Panel) ShowHUD(visible bool)          { p.update(func(v *PanelView) { v.HUD = visible }) }
func (p *Panel) ShowStartPanel(visible bool)   { p.update(func(v *PanelView) { v.StartPanel = visible }) }
func (p *Panel) ShowEndPanel(visible bool)     { p.update(func(v *PanelView) { v.EndPanel = visible }) }
func (p *Panel) SetFadeColor(c core.RGBA)      { p.update(func(v *PanelView) { v.Fade = c }) }
