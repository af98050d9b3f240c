// Package audio synthesises the game's sound cues with beep and plays them
// fire-and-forget through a pluggable output.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate used for every generated cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueSpawn      Cue = iota // Entity launched
	CueSlice                 // Benign entity cut
	CueHazard                // Hazard hit
	CueSessionEnd            // End-of-session sting
)

// String returns the cue name for logs.
func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueSlice:
		return "slice"
	case CueHazard:
		return "hazard"
	case CueSessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Output receives finished streamers. Implementations must not block.
type Output interface {
	Play(s beep.Streamer)
}

// tone is one step of a cue.
type tone struct {
	freq float64
	dur  time.Duration
}

// cueTones describes every cue as a short sequence of sine tones.
var cueTones = map[Cue][]tone{
	CueSpawn:      {{freq: 330, dur: 40 * time.Millisecond}, {freq: 440, dur: 40 * time.Millisecond}},
	CueSlice:      {{freq: 880, dur: 30 * time.Millisecond}, {freq: 1320, dur: 50 * time.Millisecond}},
	CueHazard:     {{freq: 110, dur: 250 * time.Millisecond}, {freq: 70, dur: 350 * time.Millisecond}},
	CueSessionEnd: {{freq: 523, dur: 120 * time.Millisecond}, {freq: 392, dur: 120 * time.Millisecond}, {freq: 262, dur: 240 * time.Millisecond}},
}

// Board turns cues into streamers and sends them to an Output.
// A nil Board or a Board without output is silent.
type Board struct {
	mu     sync.Mutex
	out    Output
	volume float64 // Linear gain in [0, 1]
	muted  bool
	played map[Cue]int
}

// NewBoard creates a board playing into out at the given linear volume.
func NewBoard(out Output, volume float64) *Board {
	return &Board{
		out:    out,
		volume: volume,
		played: make(map[Cue]int),
	}
}

// Silent returns a board that counts cues but never produces sound.
func Silent() *Board {
	return NewBoard(nil, 0)
}

// Play synthesises the cue and hands it to the output without waiting.
func (b *Board) Play(cue Cue) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.played[cue]++
	if b.out == nil || b.muted || b.volume <= 0 {
		return
	}
	s := Synthesize(cue, b.volume)
	if s == nil {
		return
	}
	b.out.Play(s)
}

// SetMuted toggles output without losing the configured volume.
func (b *Board) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// Played returns how many times a cue was requested.
func (b *Board) Played(cue Cue) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played[cue]
}

// Synthesize builds the streamer for a cue at a linear volume in (0, 1].
// Returns nil for unknown cues.
func Synthesize(cue Cue, volume float64) beep.Streamer {
	tones, ok := cueTones[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(SampleRate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(SampleRate.N(t.dur), sine))
	}
	if len(parts) == 0 {
		return nil
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   gainToVolume(volume),
	}
}

// gainToVolume converts linear gain to beep's base-2 exponent.
func gainToVolume(gain float64) float64 {
	if gain >= 1 {
		return 0
	}
	return math.Log2(gain)
}
