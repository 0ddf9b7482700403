// asteroids is a small Asteroids game for the terminal or a desktop window.
//
// Usage:
//
//	asteroids play            - Play in the terminal
//	asteroids play --window   - Play in a desktop window
//	asteroids sim             - Run a headless autopilot game and print its hash
//	asteroids config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/1GJones/asteroid-game/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly, shoot, and split rocks",
	Long: `Asteroids is a minimal arcade game: steer a ship around a wrapping
field of asteroids and shoot them into ever smaller pieces. Touching an
asteroid ends the game.

Available commands:
  play    - Play in the terminal (or a window with --window)
  sim     - Run a headless game with an autopilot
  config  - Print the default configuration

Examples:
  asteroids play
  asteroids play --window --difficulty hard
  asteroids sim --ticks 3600 --seed 42
  asteroids config > ~/.arcade/configs/asteroids.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = simulation.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending, or returns nil when unset.
func openLogFile() (*os.File, error) {
	if flagLogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	return f, nil
}

// loadConfig loads the YAML config and applies --difficulty.
func loadConfig() (config.AsteroidsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	config.ApplyAsteroidsPreset(&cfg, preset)
	return cfg, nil
}

// tickRate returns --fps, or the configured rate when the flag is unset.
func tickRate(cfg config.AsteroidsConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Simulation.FPS
}
