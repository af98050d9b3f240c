package config

import (
	"errors"
	"fmt"
)

// Validate reports configuration that breaks the game's preconditions.
// Only the loader calls it; the game itself assumes a valid config.
func (c Config) Validate() error {
	var errs []error

	s := c.Session
	if s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("session.duration must be positive, got %s", s.Duration))
	}
	if s.FadeDuration < 0 || s.FadePause < 0 {
		errs = append(errs, errors.New("session fade timings must not be negative"))
	}
	if s.HighScoreKey == "" {
		errs = append(errs, errors.New("session.high_score_key must not be empty"))
	}

	sp := c.Spawner
	if sp.HazardChance < 0 || sp.HazardChance > 1 {
		errs = append(errs, fmt.Errorf("spawner.hazard_chance must be in [0, 1], got %g", sp.HazardChance))
	}
	if sp.MinDelay > sp.MaxDelay {
		errs = append(errs, fmt.Errorf("spawner.min_delay %s exceeds max_delay %s", sp.MinDelay, sp.MaxDelay))
	}
	if sp.DelayFloor <= 0 {
		errs = append(errs, errors.New("spawner.delay_floor must be positive"))
	}
	if sp.RampStep > 0 && sp.RampInterval <= 0 {
		errs = append(errs, errors.New("spawner.ramp_interval must be positive when ramp_step is set"))
	}
	if sp.WarmUp < 0 || sp.RampStep < 0 {
		errs = append(errs, errors.New("spawner timings must not be negative"))
	}
	if sp.MinAngle > sp.MaxAngle {
		errs = append(errs, fmt.Errorf("spawner.min_angle %g exceeds max_angle %g", sp.MinAngle, sp.MaxAngle))
	}
	if sp.MinForce > sp.MaxForce {
		errs = append(errs, fmt.Errorf("spawner.min_force %g exceeds max_force %g", sp.MinForce, sp.MaxForce))
	}
	if sp.MaxLifetime <= 0 {
		errs = append(errs, errors.New("spawner.max_lifetime must be positive"))
	}
	v := sp.Volume
	if v.Min.X > v.Max.X || v.Min.Y > v.Max.Y || v.Min.Z > v.Max.Z {
		errs = append(errs, errors.New("spawner.volume min corner exceeds max corner"))
	}
	if len(sp.Benign) == 0 {
		errs = append(errs, errors.New("spawner.benign needs at least one kind"))
	}
	for i, k := range sp.Benign {
		if k.Points < 0 {
			errs = append(errs, fmt.Errorf("spawner.benign[%d] (%s) has negative points", i, k.Name))
		}
	}

	w := c.World
	if w.View.Min.X >= w.View.Max.X || w.View.Min.Y >= w.View.Max.Y {
		errs = append(errs, errors.New("world.view must have positive width and height"))
	}
	if w.HitRadius <= 0 {
		errs = append(errs, errors.New("world.hit_radius must be positive"))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
