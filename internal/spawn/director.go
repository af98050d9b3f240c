// Package spawn implements the spawn director: a tick-driven loop that picks
// what to launch, where, and how soon, tightening its delays as play goes on.
package spawn

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Pose is where and how an entity starts.
type Pose struct {
	Position core.Vec3
	Tilt     float64 // Degrees about the forward axis
}

// Spec is everything the factory needs to create one entity.
type Spec struct {
	Choice   Choice
	Pose     Pose
	Impulse  float64       // Magnitude along the tilted up vector
	Lifetime time.Duration // Forced removal after this
}

// Volume provides the region spawn positions are sampled from.
type Volume interface {
	Bounds() core.Bounds3
}

// Factory creates world entities. It owns their removal after Spec.Lifetime.
type Factory interface {
	Spawn(spec Spec)
}

// SoundPlayer plays cues fire-and-forget.
type SoundPlayer interface {
	Play(cue audio.Cue)
}

// Director runs the spawn loop while active.
type Director struct {
	cfg     config.SpawnerConfig
	rng     Rand
	volume  Volume
	factory Factory
	sounds  SoundPlayer
	logger  *log.Logger

	policy  Policy
	active  bool
	warmUp  time.Duration // Remaining warm-up; zero once the loop runs
	wait    time.Duration // Remaining wait before the next spawn
	spawned int
}

// NewDirector creates an inactive director.
func NewDirector(cfg config.SpawnerConfig, rng Rand, volume Volume, factory Factory, sounds SoundPlayer, logger *log.Logger) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Director{
		cfg:     cfg,
		rng:     rng,
		volume:  volume,
		factory: factory,
		sounds:  sounds,
		logger:  logger,
		policy:  NewPolicy(cfg),
	}
}

// Reset restores the configured delay bounds and clears the ramp accumulator.
func (d *Director) Reset() {
	d.policy = NewPolicy(d.cfg)
	d.spawned = 0
}

// Activate starts the loop: a warm-up wait, then spawning.
// Activating an active director is a no-op.
func (d *Director) Activate() {
	if d.active {
		return
	}
	d.active = true
	d.warmUp = d.cfg.WarmUp
	d.wait = 0
	d.logger.Debug("spawner activated", "warm_up", d.warmUp)
}

// Deactivate halts the loop and drops any pending wait.
func (d *Director) Deactivate() {
	if !d.active {
		return
	}
	d.active = false
	d.warmUp = 0
	d.wait = 0
	d.logger.Debug("spawner deactivated", "spawned", d.spawned)
}

// Active reports whether the loop is running.
func (d *Director) Active() bool {
	return d.active
}

// Policy returns the current delay policy.
func (d *Director) Policy() Policy {
	return d.policy
}

// Spawned returns how many entities were emitted since the last reset.
func (d *Director) Spawned() int {
	return d.spawned
}

// Tick advances the loop by dt of scaled game time.
func (d *Director) Tick(dt time.Duration) {
	if !d.active || dt <= 0 {
		return
	}

	if d.warmUp > 0 {
		if dt < d.warmUp {
			d.warmUp -= dt
			return
		}
		dt -= d.warmUp
		d.warmUp = 0
	}

	if n := d.policy.Advance(dt); n > 0 {
		d.logger.Debug("spawn delays ramped",
			"min", d.policy.MinDelay,
			"max", d.policy.MaxDelay,
			"ramps", d.policy.Ramps,
		)
	}

	d.wait -= dt
	for d.active && d.wait <= 0 {
		d.spawnOne()
		d.wait += d.policy.NextDelay(d.rng)
		if d.policy.MaxDelay <= 0 {
			break // zero delays spawn at most once per tick
		}
	}
}

// spawnOne picks, places and launches a single entity.
func (d *Director) spawnOne() {
	choice := ChooseKind(d.rng, d.policy.HazardChance, len(d.cfg.Benign))
	pose := Pose{
		Position: SamplePosition(d.rng, d.volume.Bounds()),
		Tilt:     SampleTilt(d.rng, d.cfg.MinAngle, d.cfg.MaxAngle),
	}
	impulse := SampleRange(d.rng, d.cfg.MinForce, d.cfg.MaxForce)

	d.factory.Spawn(Spec{
		Choice:   choice,
		Pose:     pose,
		Impulse:  impulse,
		Lifetime: d.cfg.MaxLifetime,
	})
	d.sounds.Play(audio.CueSpawn)
	d.spawned++
}
