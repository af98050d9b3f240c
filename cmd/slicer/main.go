// slicer is a terminal fruit-slicing arcade game.
//
// Usage:
//
//	slicer play     - Play a session in this terminal
//	slicer serve    - Start SSH server for remote play
//	slicer scores   - Show the score history
//	slicer config   - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.slicer/scores.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
//
// Every global flag can also come from SLICER_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// From SLICER_* variables
	envSettings config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "Slicer - cut fruit, avoid bombs, in your terminal",
	Long: `Slicer is a terminal arcade game. Fruit and bombs are launched from
below the screen; sweep the blade through fruit to score and keep clear
of bombs. A session lasts one minute or until a bomb is hit.

Available commands:
  play     - Play a session
  serve    - Start SSH server for remote play
  scores   - View the score history
  config   - Print the default configuration

Examples:
  slicer play
  slicer play --difficulty hard
  slicer serve --ssh :2222
  slicer scores --plain`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slicer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills global flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	envSettings = e

	flags := cmd.Flags()
	if !flags.Changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("fps") && e.FPS > 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	return nil
}

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; local play passes io.Discard since the terminal is in use.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "slicer",
		Level:           level,
	})
	return logger, closeFn, nil
}
