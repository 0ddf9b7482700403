package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1GJones/asteroid-game/internal/core"
	"github.com/1GJones/asteroid-game/internal/games/asteroids"
	"github.com/1GJones/asteroid-game/internal/platform/tui"
	"github.com/1GJones/asteroid-game/internal/platform/window"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal, or in a desktop window with --window.

Controls:
  W/Up       - Thrust
  S/Down     - Reverse
  A/Left     - Turn left
  D/Right    - Turn right
  Space      - Fire
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer, slower asteroids
  normal - Configured values
  hard   - More, faster asteroids

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --window --seed 7
  asteroids play --config ./my-asteroids.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs go to the file if given; the terminal belongs to the game.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	var sink io.Writer = io.Discard
	if logFile != nil {
		defer logFile.Close()
		sink = logFile
	}
	gameLog, err := newLogger(sink)
	if err != nil {
		return err
	}
	stderrLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.TickRate = tickRate(cfg)
	rc.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := asteroids.New(cfg, gameLog)
	gameLog.Info("starting", "window", flagWindow, "fps", rc.TickRate, "seed", rc.Seed,
		"asteroids", cfg.Asteroids.Count, "difficulty", flagDifficulty)

	var state core.GameState
	if flagWindow {
		state, err = window.Run(game, rc, gameLog)
	} else {
		state, err = tui.Run(game, rc, gameLog)
	}
	if err != nil {
		return err
	}

	if state.GameOver {
		stderrLog.Info("Game over!", "ticks", state.Tick, "asteroids", state.Asteroids)
	}
	return nil
}
