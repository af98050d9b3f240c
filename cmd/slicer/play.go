package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/game"
	"github.com/vovakirdan/tui-slicer/internal/platform/speaker"
	"github.com/vovakirdan/tui-slicer/internal/platform/tui"
	"github.com/vovakirdan/tui-slicer/internal/session"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a slicer session in this terminal.

Controls:
  Mouse          - Move the blade
  Arrows/WASD    - Nudge the blade
  Enter/Space    - Start
  R              - Restart (after the session ends)
  M              - Mute
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Fewer bombs, slower spawns
  normal - Config defaults
  hard   - More bombs, faster spawns
  fixed  - Spawn delays never tighten

Examples:
  slicer play
  slicer play --difficulty hard
  slicer play --config ./my-slicer.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadGameConfig reads the config file and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openSounds returns a board playing through the speaker, or a silent one.
func openSounds(cfg config.AudioConfig, mute bool, logger *log.Logger) *audio.Board {
	if !cfg.Enabled || mute {
		return audio.Silent()
	}
	out, err := speaker.Open()
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Silent()
	}
	return audio.NewBoard(out, cfg.Volume)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage; the game still works without it
	var prefs session.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
		prefs = storage.NewMemoryPrefs()
	} else {
		defer store.Close()
		prefs = storage.NewPrefs(store, "", logger.WithPrefix("prefs"))
	}

	sounds := openSounds(cfg.Audio, flagMute || envSettings.Mute, logger)
	defer speaker.Close()

	g := game.New(cfg, prefs, sounds, logger)
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting session", "seed", flagSeed, "difficulty", flagDifficulty, "hazard_chance", cfg.Spawner.HazardChance)
	if err := tui.Run(g, rc, tui.Options{Store: store, Sounds: sounds, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
