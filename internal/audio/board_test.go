package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer did not finish")
	return total
}

func TestSynthesizeLength(t *testing.T) {
	s := Synthesize(CueSpawn, 1)
	if s == nil {
		t.Fatal("Synthesize(CueSpawn) returned nil")
	}

	expected := SampleRate.N(40*time.Millisecond) * 2
	if got := drain(t, s); got != expected {
		t.Errorf("spawn cue produced %d samples, expected %d", got, expected)
	}
}

func TestSynthesizeVolume(t *testing.T) {
	loud := Synthesize(CueSlice, 1)
	quiet := Synthesize(CueSlice, 0.25)

	bufLoud := make([][2]float64, 256)
	bufQuiet := make([][2]float64, 256)
	loud.Stream(bufLoud)
	quiet.Stream(bufQuiet)

	for i := range bufLoud {
		want := bufLoud[i][0] * 0.25
		if diff := bufQuiet[i][0] - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("sample %d: quiet = %f, expected %f", i, bufQuiet[i][0], want)
		}
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if s := Synthesize(Cue(99), 1); s != nil {
		t.Error("unknown cue should synthesize to nil")
	}
}

func TestBoardPlaysIntoMixer(t *testing.T) {
	out := NewMixerOutput(nil)
	b := NewBoard(out, 0.5)

	b.Play(CueSpawn)
	b.Play(CueHazard)

	if out.Len() != 2 {
		t.Errorf("mixer has %d cues, expected 2", out.Len())
	}
	if b.Played(CueSpawn) != 1 || b.Played(CueHazard) != 1 {
		t.Error("board should count played cues")
	}

	out.Clear()
	if out.Len() != 0 {
		t.Error("Clear should empty the mixer")
	}
}

func TestBoardMutedAndSilent(t *testing.T) {
	out := NewMixerOutput(nil)
	b := NewBoard(out, 1)
	b.SetMuted(true)
	b.Play(CueSlice)

	if out.Len() != 0 {
		t.Error("muted board should not reach the output")
	}
	if b.Played(CueSlice) != 1 {
		t.Error("muted board should still count cues")
	}

	s := Silent()
	s.Play(CueSessionEnd)
	if s.Played(CueSessionEnd) != 1 {
		t.Error("silent board should count cues")
	}

	var nilBoard *Board
	nilBoard.Play(CueSpawn) // must not panic
}

func TestCueString(t *testing.T) {
	if CueSessionEnd.String() != "session_end" {
		t.Errorf("CueSessionEnd.String() = %q", CueSessionEnd.String())
	}
	if Cue(42).String() != "unknown" {
		t.Errorf("Cue(42).String() = %q", Cue(42).String())
	}
}
