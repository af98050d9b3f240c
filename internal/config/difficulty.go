package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the spawn ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the spawner config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	sp := &cfg.Spawner
	switch preset {
	case DifficultyEasy:
		sp.HazardChance = 0.02
		sp.MinDelay = 400 * time.Millisecond
		sp.MaxDelay = 1200 * time.Millisecond
	case DifficultyHard:
		sp.HazardChance = 0.12
		sp.MinDelay = 200 * time.Millisecond
		sp.MaxDelay = 700 * time.Millisecond
	case DifficultyFixed:
		sp.RampStep = 0
	}
}
