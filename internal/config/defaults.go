package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// Default returns the built-in configuration. It mirrors defaults/slicer.yaml
// and is the base every loaded file is decoded on top of.
func Default() Config {
	return Config{
		Session: SessionConfig{
			Duration:       60 * time.Second,
			FadeDuration:   500 * time.Millisecond,
			FadePause:      time.Second,
			HighScoreKey:   "hiscore",
			ResetHighScore: true,
		},
		Spawner: SpawnerConfig{
			HazardChance: 0.05,
			MinDelay:     250 * time.Millisecond,
			MaxDelay:     time.Second,
			DelayFloor:   100 * time.Millisecond,
			RampInterval: 5 * time.Second,
			RampStep:     100 * time.Millisecond,
			WarmUp:       2 * time.Second,
			MinAngle:     -15,
			MaxAngle:     15,
			MinForce:     10,
			MaxForce:     13,
			MaxLifetime:  5 * time.Second,
			Volume: core.Bounds3{
				Min: core.Vec3{X: -5, Y: -6, Z: 0},
				Max: core.Vec3{X: 5, Y: -6, Z: 0},
			},
			Benign: []EntityKind{
				{Name: "apple", Glyph: "●", Color: "red", Points: 1},
				{Name: "orange", Glyph: "●", Color: "orange", Points: 1},
				{Name: "lime", Glyph: "●", Color: "bright_green", Points: 1},
				{Name: "banana", Glyph: ")", Color: "bright_yellow", Points: 2},
				{Name: "grape", Glyph: "❀", Color: "magenta", Points: 3},
			},
			Hazard: EntityKind{Name: "bomb", Glyph: "✹", Color: "gray", Points: 0},
		},
		World: WorldConfig{
			Gravity:   9.81,
			HitRadius: 0.6,
			BladeStep: 0.5,
			View: core.Bounds3{
				Min: core.Vec3{X: -8, Y: -5, Z: 0},
				Max: core.Vec3{X: 8, Y: 5, Z: 0},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSlicerYAML
}
