// Package game assembles the session controller, the spawn director, the
// arena and audio into one playable slicer instance.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/session"
	"github.com/vovakirdan/tui-slicer/internal/spawn"
	"github.com/vovakirdan/tui-slicer/internal/storage"
	"github.com/vovakirdan/tui-slicer/internal/world"
)

// ID is used for score storage.
const ID = "slicer"

// Game is one player's slicer. Logic is pure; the platform supplies input,
// real frame time and a screen buffer.
type Game struct {
	cfg    config.Config
	store  session.HighScoreStore
	sounds *audio.Board
	logger *log.Logger

	runtime  core.RuntimeConfig
	viewport world.Viewport
	panel    *session.Panel
	blade    *world.Blade
	arena    *world.Arena
	director *spawn.Director
	ctl      *session.Controller

	tick    uint64
	quit    bool
	started bool // The high score is reset on the first Reset only
}

// New creates a game. Reset must be called before Step.
// A nil sounds board is silent and a nil store keeps the high score in memory.
func New(cfg config.Config, store session.HighScoreStore, sounds *audio.Board, logger *log.Logger) *Game {
	if store == nil {
		store = storage.NewMemoryPrefs()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		store:  store,
		sounds: sounds,
		logger: logger,
	}
}

// ID returns the storage identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Slicer" }

// Reset builds a fresh world from the runtime config and returns to the
// start panel.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.tick = 0
	g.quit = false

	g.viewport = world.NewViewport(g.cfg.World.View, rc.ScreenW, rc.ScreenH)
	g.panel = session.NewPanel()
	g.blade = world.NewBlade(g.cfg.World.View, g.cfg.World.BladeStep)
	g.arena = world.NewArena(g.cfg.World, g.cfg.Spawner, g.blade, g.sounds)

	rng := rand.New(rand.NewSource(rc.Seed))
	g.director = spawn.NewDirector(g.cfg.Spawner, rng, g.arena, g.arena, g.sounds, g.logger.WithPrefix("spawn"))

	sessionCfg := g.cfg.Session
	if g.started {
		sessionCfg.ResetHighScore = false
	}
	g.started = true

	g.ctl = session.New(sessionCfg, session.Deps{
		Spawner:   g.director,
		Implement: g.blade,
		Scene:     g.arena,
		Store:     g.store,
		Presenter: g.panel,
		Sounds:    g.sounds,
		Quitter:   g,
		Logger:    g.logger.WithPrefix("session"),
	})
	g.arena.SetReporter(g.ctl)
}

// Resize adapts the projection to a new terminal size without resetting play.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.viewport = world.NewViewport(g.cfg.World.View, w, h)
}

// Step advances the game by one host frame of dt real time.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.ctl.Quit()
	}

	switch g.ctl.State() {
	case session.StateIdle:
		if in.Has(core.ActionConfirm) {
			g.ctl.StartSession()
		}
	case session.StateEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.ctl.RestartSession()
		}
	}

	dx := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	dy := in.Count(core.ActionUp) - in.Count(core.ActionDown)
	g.blade.Nudge(dx, dy)

	g.ctl.Tick(dt)
	scaled := g.ctl.Scaled(dt)
	g.director.Tick(scaled)
	g.arena.Step(scaled)

	return core.StepResult{State: g.State()}
}

// PointTo moves the blade to the world point under a screen cell.
func (g *Game) PointTo(col, row int) {
	g.blade.MoveTo(g.viewport.ToWorld(col, row))
}

// Quit marks the game as finished. It satisfies session.Quitter.
func (g *Game) Quit() {
	g.quit = true
}

// QuitRequested reports whether the player asked to leave.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// State returns the summary used by the platform.
func (g *Game) State() core.GameState {
	st := g.ctl.State()
	return core.GameState{
		Score:    g.ctl.Score(),
		Phase:    st.String(),
		GameOver: st == session.StateEnded,
		Quit:     g.quit,
	}
}

// Overlay returns the fade overlay colour.
func (g *Game) Overlay() core.RGBA {
	return g.panel.View().Fade
}

// Controller exposes the session controller.
func (g *Game) Controller() *session.Controller { return g.ctl }

// Director exposes the spawn director.
func (g *Game) Director() *spawn.Director { return g.director }

// Arena exposes the arena.
func (g *Game) Arena() *world.Arena { return g.arena }

// Tick returns the number of frames stepped since the last reset.
func (g *Game) Tick() uint64 { return g.tick }
