// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets for the slicer.
package config

import (
	"time"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Config contains all tunables for one slicer session.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Spawner SpawnerConfig `yaml:"spawner"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SessionConfig defines session timing and high score persistence.
type SessionConfig struct {
	Duration       time.Duration `yaml:"duration"`         // Length of a timed session
	FadeDuration   time.Duration `yaml:"fade_duration"`    // Flash-in and fade-out length after a hazard hit (real time)
	FadePause      time.Duration `yaml:"fade_pause"`       // Hold at full white between the two fades (real time)
	HighScoreKey   string        `yaml:"high_score_key"`   // Preference key holding the high score
	ResetHighScore bool          `yaml:"reset_high_score"` // Delete the stored high score at startup
}

// SpawnerConfig defines what the spawn director emits and how fast.
type SpawnerConfig struct {
	HazardChance float64       `yaml:"hazard_chance"` // Probability in [0, 1] that a spawn is a hazard
	MinDelay     time.Duration `yaml:"min_delay"`     // Initial lower bound between spawns
	MaxDelay     time.Duration `yaml:"max_delay"`     // Initial upper bound between spawns
	DelayFloor   time.Duration `yaml:"delay_floor"`   // Bounds never ramp below this
	RampInterval time.Duration `yaml:"ramp_interval"` // Active time between ramps
	RampStep     time.Duration `yaml:"ramp_step"`     // Reduction applied to both bounds per ramp
	WarmUp       time.Duration `yaml:"warm_up"`       // Delay before the first spawn after activation
	MinAngle     float64       `yaml:"min_angle"`     // Tilt range in degrees about the forward axis
	MaxAngle     float64       `yaml:"max_angle"`
	MinForce     float64       `yaml:"min_force"` // Upward impulse range
	MaxForce     float64       `yaml:"max_force"`
	MaxLifetime  time.Duration `yaml:"max_lifetime"` // Entities are removed after this regardless of fate
	Volume       core.Bounds3  `yaml:"volume"`       // Spawn positions are sampled inside this box
	Benign       []EntityKind  `yaml:"benign"`       // Scoring variants, chosen uniformly
	Hazard       EntityKind    `yaml:"hazard"`
}

// EntityKind describes how one entity variant looks and scores.
type EntityKind struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	Points int    `yaml:"points"`
}

// Rune returns the first rune of the glyph, or '?' when empty.
func (k EntityKind) Rune() rune {
	for _, r := range k.Glyph {
		return r
	}
	return '?'
}

// WorldConfig defines the arena the entities fly in.
type WorldConfig struct {
	Gravity   float64      `yaml:"gravity"`    // Downward acceleration in world units/s²
	HitRadius float64      `yaml:"hit_radius"` // Blade-to-entity distance that counts as a cut
	BladeStep float64      `yaml:"blade_step"` // World units per key press
	View      core.Bounds3 `yaml:"view"`       // World region mapped onto the terminal (Z ignored)
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in [0, 1]
}
