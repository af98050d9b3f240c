package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick uses nominal rate", time.Time{}, now, time.Second / 60},
		{"measured", now, now.Add(20 * time.Millisecond), 20 * time.Millisecond},
		{"capped", now, now.Add(3 * time.Second), maxFrame},
		{"clock went back", now, now.Add(-time.Second), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.prev, tc.now, 60); got != tc.want {
				t.Errorf("frameDelta() = %s, expected %s", got, tc.want)
			}
		})
	}
}

func newTestModel(cfg config.Config) Model {
	g := game.New(cfg, nil, nil, nil)
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartAndQuit(t *testing.T) {
	m := newTestModel(config.Default())
	t0 := time.Now()

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := step(t, m, TickMsg(t0))
	if m.GameState().Phase != "Playing" {
		t.Fatalf("Phase = %s, expected Playing", m.GameState().Phase)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m, _ = step(t, m, runeKey('q'))
	m, cmd = step(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if !m.GameState().Quit || cmd == nil {
		t.Error("quit key should end the program")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Duration = time.Second
	m := newTestModel(cfg)
	t0 := time.Now()

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i <= 6; i++ {
		m, _ = step(t, m, TickMsg(t0.Add(time.Duration(i)*200*time.Millisecond)))
	}
	if !m.GameState().GameOver {
		t.Fatalf("expected game over, phase %s", m.GameState().Phase)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("end panel should show the final score")
	}
}

func TestModelResizeAndMute(t *testing.T) {
	m := newTestModel(config.Default())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m, _ = step(t, m, runeKey('m'))
	if !strings.Contains(m.View(), "[muted]") {
		t.Error("mute should be shown in the footer")
	}
}

func TestRenderScreenOverlay(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ab")

	plain := RenderScreen(s, core.Transparent)
	if !strings.Contains(plain, "ab") {
		t.Errorf("plain render = %q", plain)
	}
	faded := RenderScreen(s, core.White)
	if !strings.Contains(faded, "ab") {
		t.Errorf("overlay render lost the text: %q", faded)
	}
}
