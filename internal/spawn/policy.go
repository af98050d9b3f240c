package spawn

import (
	"time"

	"github.com/vovakirdan/tui-slicer/internal/config"
)

// Policy holds the spawn delay bounds and tightens them as active time
// accumulates. Both bounds are clamped at the floor.
type Policy struct {
	HazardChance float64
	MinDelay     time.Duration
	MaxDelay     time.Duration
	Floor        time.Duration
	Interval     time.Duration // Active time per ramp
	Step         time.Duration // Reduction per ramp; zero disables ramping
	Elapsed      time.Duration // Active time since the last ramp
	Ramps        int           // Ramps applied since the last reset
}

// NewPolicy builds a policy from the spawner config.
func NewPolicy(cfg config.SpawnerConfig) Policy {
	return Policy{
		HazardChance: cfg.HazardChance,
		MinDelay:     cfg.MinDelay,
		MaxDelay:     cfg.MaxDelay,
		Floor:        cfg.DelayFloor,
		Interval:     cfg.RampInterval,
		Step:         cfg.RampStep,
	}
}

// Advance adds active time and applies one ramp per full interval crossed.
// Returns the number of ramps applied.
func (p *Policy) Advance(dt time.Duration) int {
	if dt <= 0 || p.Step <= 0 || p.Interval <= 0 {
		return 0
	}
	p.Elapsed += dt

	applied := 0
	for p.Elapsed >= p.Interval {
		p.Elapsed -= p.Interval
		p.MinDelay = max(p.Floor, p.MinDelay-p.Step)
		p.MaxDelay = max(p.Floor, p.MaxDelay-p.Step)
		p.Ramps++
		applied++
	}
	return applied
}

// NextDelay draws the wait before the next spawn, uniform in [MinDelay, MaxDelay].
func (p Policy) NextDelay(rng Rand) time.Duration {
	lo, hi := p.MinDelay, p.MaxDelay
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Float64()*float64(hi-lo))
}
