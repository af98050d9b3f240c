package game

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/session"
	"github.com/vovakirdan/tui-slicer/internal/spawn"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

const frame = 16 * time.Millisecond

func newTestGame(cfg config.Config, seed int64) *Game {
	g := New(cfg, storage.NewMemoryPrefs(), audio.Silent(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should stay identical
	g1 := newTestGame(config.Default(), 12345)
	g2 := newTestGame(config.Default(), 12345)

	for i := 0; i < 600; i++ {
		var in core.InputFrame
		switch {
		case i == 0:
			in = press(core.ActionConfirm)
		case i%7 == 0:
			in = press(core.ActionLeft, core.ActionUp)
		case i%5 == 0:
			in = press(core.ActionRight)
		default:
			in = core.NewInputFrame()
		}
		r1 := g1.Step(in, frame)
		r2 := g2.Step(in, frame)
		if r1 != r2 {
			t.Fatalf("frame %d: state mismatch %+v vs %+v", i, r1.State, r2.State)
		}
	}

	if g1.Director().Spawned() == 0 {
		t.Fatal("expected spawns after 9.6s of play")
	}
	if g1.Director().Spawned() != g2.Director().Spawned() {
		t.Errorf("spawn count mismatch: %d vs %d", g1.Director().Spawned(), g2.Director().Spawned())
	}
	if !reflect.DeepEqual(g1.Arena().Entities(), g2.Arena().Entities()) {
		t.Error("entity mismatch between identical runs")
	}
}

func TestStartFromPanel(t *testing.T) {
	g := newTestGame(config.Default(), 1)

	g.Step(core.NewInputFrame(), frame)
	if g.State().Phase != "Idle" {
		t.Fatalf("Phase = %s, expected Idle before confirm", g.State().Phase)
	}

	g.Step(press(core.ActionConfirm), frame)
	if g.State().Phase != "Playing" {
		t.Fatalf("Phase = %s, expected Playing", g.State().Phase)
	}
	if !g.Arena().Blade().Enabled() || !g.Director().Active() {
		t.Error("blade and director should be live while playing")
	}
}

func TestTimeoutAndRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Duration = time.Second
	g := newTestGame(cfg, 1)

	g.Step(press(core.ActionConfirm), 0)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), 100*time.Millisecond)
	}
	if !g.State().GameOver {
		t.Fatalf("expected game over after the session duration, phase %s", g.State().Phase)
	}

	// The world is frozen once the session ends.
	g.Arena().Spawn(spawn.Spec{Impulse: 10, Lifetime: time.Minute})
	before := g.Arena().Entities()
	g.Step(core.NewInputFrame(), time.Second)
	if !reflect.DeepEqual(before, g.Arena().Entities()) {
		t.Error("entities moved after the session ended")
	}

	g.Step(press(core.ActionRestart), frame)
	if g.State().Phase != "Playing" {
		t.Fatalf("Phase = %s, expected Playing after restart", g.State().Phase)
	}
	if g.Arena().Len() != 0 {
		t.Error("restart should clear the arena")
	}
	if g.Controller().TimeScale() != 1 {
		t.Error("restart should restore the time-scale")
	}
}

func TestHazardEndsSession(t *testing.T) {
	g := newTestGame(config.Default(), 1)
	g.Step(press(core.ActionConfirm), frame)

	// A hazard at rest right of centre, then a sweep across it.
	g.Arena().Spawn(spawn.Spec{
		Choice:   spawn.Choice{Kind: spawn.KindHazard},
		Pose:     spawn.Pose{Position: core.Vec3{X: 1, Y: 0}},
		Lifetime: time.Minute,
	})
	g.PointTo(20, 12)
	g.Step(core.NewInputFrame(), frame)
	if g.State().Phase != "Playing" {
		t.Fatal("moving away from the hazard should not hit it")
	}
	g.PointTo(50, 12)
	g.Step(core.NewInputFrame(), frame)

	if g.State().Phase != "Ending" {
		t.Fatalf("Phase = %s, expected Ending", g.State().Phase)
	}
	if g.Director().Active() {
		t.Error("director should stop on a hazard hit")
	}

	g.Step(core.NewInputFrame(), 125*time.Millisecond)
	if g.Overlay().A <= 0 {
		t.Error("overlay should be fading in")
	}

	for i := 0; i < 40 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame(), 125*time.Millisecond)
	}
	if !g.State().GameOver {
		t.Fatal("ending sequence should finish")
	}
	if g.Overlay() != core.Transparent {
		t.Errorf("overlay = %+v after the sequence", g.Overlay())
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(config.Default(), 1)
	res := g.Step(press(core.ActionQuit), frame)
	if !res.State.Quit || !g.QuitRequested() {
		t.Error("quit action should be reported")
	}
}

func TestHighScoreResetOnlyOnce(t *testing.T) {
	prefs := storage.NewMemoryPrefs()
	prefs.SetFloat("hiscore", 50)

	g := New(config.Default(), prefs, nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.Controller().HighScore() != 0 {
		t.Fatal("first reset should clear the stored high score")
	}

	prefs.SetFloat("hiscore", 12)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})
	if g.Controller().HighScore() != 12 {
		t.Errorf("later resets should keep the high score, got %v", g.Controller().HighScore())
	}
}

func TestRenderPanels(t *testing.T) {
	g := newTestGame(config.Default(), 1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "S L I C E R") {
		t.Error("start panel should be drawn before play")
	}

	g.Step(press(core.ActionConfirm), frame)
	g.Render(scr)
	out := scr.String()
	if strings.Contains(out, "S L I C E R") {
		t.Error("start panel should be hidden while playing")
	}
	if !strings.Contains(scr.Row(0), "Score: 0") || !strings.Contains(scr.Row(0), "Time: 60") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if g.State().Phase != session.StatePlaying.String() {
		t.Errorf("Phase = %s", g.State().Phase)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(config.Default(), 1)
	g.Step(press(core.ActionConfirm), frame)
	g.Resize(120, 40)

	if g.State().Phase != "Playing" {
		t.Error("resize should not reset the session")
	}
	scr := core.NewScreen(120, 40)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Time: 60") {
		t.Errorf("HUD row after resize = %q", scr.Row(0))
	}
}
