package session

import (
	"time"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// EndingPhase is one step of the ending sequence.
type EndingPhase int

const (
	PhaseFlash   EndingPhase = iota // Overlay fades in, time-scale drops to zero
	PhaseHold                       // Full white, full stop
	PhaseFadeOut                    // Overlay fades back out
	PhaseDone
)

// String returns the phase name for logs.
func (p EndingPhase) String() string {
	switch p {
	case PhaseFlash:
		return "flash"
	case PhaseHold:
		return "hold"
	case PhaseFadeOut:
		return "fade_out"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// EndingSequence runs the flash / hold / fade-out transition that follows a
// hazard hit. It is advanced with unscaled time, so it keeps running while the
// world is frozen.
type EndingSequence struct {
	fade  time.Duration
	pause time.Duration

	phase   EndingPhase
	elapsed time.Duration // Time spent in the current phase
	total   time.Duration
}

// NewEndingSequence creates a sequence positioned at the start of the flash.
func NewEndingSequence(fade, pause time.Duration) *EndingSequence {
	return &EndingSequence{fade: fade, pause: pause}
}

// Advance moves the sequence forward by dt. Time left over at the end of a
// phase carries into the next one, so the whole sequence lasts exactly
// 2*fade + pause.
func (e *EndingSequence) Advance(dt time.Duration) {
	if e.phase == PhaseDone || dt <= 0 {
		return
	}
	e.total += dt
	e.elapsed += dt

	for {
		var length time.Duration
		switch e.phase {
		case PhaseFlash, PhaseFadeOut:
			length = e.fade
		case PhaseHold:
			length = e.pause
		default:
			return
		}
		if e.elapsed < length {
			return
		}
		e.elapsed -= length
		e.phase++
		if e.phase == PhaseDone {
			e.elapsed = 0
			return
		}
	}
}

// progress is the clamped ratio of the current fade.
func (e *EndingSequence) progress() float64 {
	if e.fade <= 0 {
		return 1
	}
	return min(1, float64(e.elapsed)/float64(e.fade))
}

// Overlay returns the fade overlay colour for the current position.
func (e *EndingSequence) Overlay() core.RGBA {
	switch e.phase {
	case PhaseFlash:
		return core.Transparent.Lerp(core.White, e.progress())
	case PhaseHold:
		return core.White
	case PhaseFadeOut:
		return core.White.Lerp(core.Transparent, e.progress())
	default:
		return core.Transparent
	}
}

// TimeScale returns the world time multiplier. It only moves during the flash.
func (e *EndingSequence) TimeScale() float64 {
	if e.phase == PhaseFlash {
		return core.Lerp(1, 0, e.progress())
	}
	return 0
}

// Phase returns the current phase.
func (e *EndingSequence) Phase() EndingPhase {
	return e.phase
}

// Done reports whether the fade-out has finished.
func (e *EndingSequence) Done() bool {
	return e.phase == PhaseDone
}

// Elapsed returns the unscaled time consumed so far.
func (e *EndingSequence) Elapsed() time.Duration {
	return e.total
}
