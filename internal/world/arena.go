// Package world hosts the entities the spawn director launches: it moves them
// under gravity, expires them, and reports blade hits back to the session.
package world

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/spawn"
)

// Entity is one launched object.
type Entity struct {
	ID       int
	Kind     spawn.Kind
	Variant  int // Index into the benign kinds; unused for hazards
	Position core.Vec3
	Velocity core.Vec3
	Tilt     float64 // Degrees; kept for rendering
	Age      time.Duration
	Lifetime time.Duration
	Collider bool // False once a hazard has been hit
}

// HitReporter receives the outcome of blade hits.
type HitReporter interface {
	IncreaseScore(points int)
	TriggerHazard()
}

// SoundPlayer plays cues fire-and-forget.
type SoundPlayer interface {
	Play(cue audio.Cue)
}

// Arena owns the live entities and the blade.
type Arena struct {
	cfg      config.WorldConfig
	volume   core.Bounds3
	benign   []config.EntityKind
	hazard   config.EntityKind
	blade    *Blade
	sounds   SoundPlayer
	reporter HitReporter

	entities []*Entity
	nextID   int
	sliced   int
}

// NewArena creates an empty arena. The reporter is attached later with
// SetReporter since the session controller is built on top of the arena.
func NewArena(world config.WorldConfig, spawner config.SpawnerConfig, blade *Blade, sounds SoundPlayer) *Arena {
	return &Arena{
		cfg:    world,
		volume: spawner.Volume,
		benign: spawner.Benign,
		hazard: spawner.Hazard,
		blade:  blade,
		sounds: sounds,
	}
}

// SetReporter attaches the receiver of hit reports.
func (a *Arena) SetReporter(r HitReporter) {
	a.reporter = r
}

// Bounds returns the spawn volume.
func (a *Arena) Bounds() core.Bounds3 {
	return a.volume
}

// Blade returns the arena's blade.
func (a *Arena) Blade() *Blade {
	return a.blade
}

// Spawn launches an entity along its tilted up vector. Mass is one, so the
// impulse is the initial speed.
func (a *Arena) Spawn(spec spawn.Spec) {
	rad := spec.Pose.Tilt * math.Pi / 180
	up := core.Vec3{X: -math.Sin(rad), Y: math.Cos(rad)}

	a.nextID++
	a.entities = append(a.entities, &Entity{
		ID:       a.nextID,
		Kind:     spec.Choice.Kind,
		Variant:  spec.Choice.Variant,
		Position: spec.Pose.Position,
		Velocity: up.Scale(spec.Impulse),
		Tilt:     spec.Pose.Tilt,
		Lifetime: spec.Lifetime,
		Collider: true,
	})
}

// Clear removes every entity.
func (a *Arena) Clear() {
	clear(a.entities)
	a.entities = a.entities[:0]
}

// Step advances physics by dt of world time, expires entities past their
// lifetime, then resolves blade hits.
func (a *Arena) Step(dt time.Duration) {
	if dt > 0 {
		s := dt.Seconds()
		live := a.entities[:0]
		for _, e := range a.entities {
			e.Velocity.Y -= a.cfg.Gravity * s
			e.Position = e.Position.Add(e.Velocity.Scale(s))
			e.Age += dt
			if e.Lifetime > 0 && e.Age >= e.Lifetime {
				continue
			}
			live = append(live, e)
		}
		clear(a.entities[len(live):])
		a.entities = live
	}

	a.resolveHits()
	a.blade.settle()
}

func (a *Arena) resolveHits() {
	from, to, ok := a.blade.segment()
	if !ok {
		return
	}

	live := a.entities[:0]
	for i, e := range a.entities {
		if !e.Collider || core.SegmentPointDistance(from, to, e.Position.XY()) > a.cfg.HitRadius {
			live = append(live, e)
			continue
		}

		if e.Kind == spawn.KindHazard {
			e.Collider = false
			a.blade.Disable()
			a.sounds.Play(audio.CueHazard)
			if a.reporter != nil {
				a.reporter.TriggerHazard()
			}
			// Nothing else is cut once the blade is down.
			live = append(live, a.entities[i:]...)
			break
		}

		a.sliced++
		a.sounds.Play(audio.CueSlice)
		if a.reporter != nil {
			a.reporter.IncreaseScore(a.Kind(*e).Points)
		}
	}
	clear(a.entities[len(live):])
	a.entities = live
}

// Kind returns the configured look and value of an entity.
func (a *Arena) Kind(e Entity) config.EntityKind {
	if e.Kind == spawn.KindHazard {
		return a.hazard
	}
	if e.Variant >= 0 && e.Variant < len(a.benign) {
		return a.benign[e.Variant]
	}
	return config.EntityKind{}
}

// Entities returns a copy of the live entities.
func (a *Arena) Entities() []Entity {
	out := make([]Entity, len(a.entities))
	for i, e := range a.entities {
		out[i] = *e
	}
	return out
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Sliced returns how many benign entities were cut since the arena was created.
func (a *Arena) Sliced() int {
	return a.sliced
}
