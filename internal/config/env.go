package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings that can come from the environment.
// Explicit CLI flags take precedence over these.
type Env struct {
	DBPath   string `env:"SLICER_DB"`
	FPS      int    `env:"SLICER_FPS"`
	Seed     int64  `env:"SLICER_SEED"`
	LogLevel string `env:"SLICER_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"SLICER_LOG_FILE"`
	Mute     bool   `env:"SLICER_MUTE"`
}

// LoadEnv parses SLICER_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
