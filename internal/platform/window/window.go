// Package window runs the game in a desktop window with Ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1GJones/asteroid-game/internal/core"
)

// Game is what the window shell drives. The world is drawn 1:1 in pixels.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(input core.InputFrame) core.StepResult
	Draw(c core.Canvas)
	State() core.GameState
	WorldSize() (float64, float64)
}

// keyBindings maps physical keys to actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyA:          core.ActionRotateLeft,
	ebiten.KeyArrowLeft:  core.ActionRotateLeft,
	ebiten.KeyD:          core.ActionRotateRight,
	ebiten.KeyArrowRight: core.ActionRotateRight,
	ebiten.KeyW:          core.ActionThrust,
	ebiten.KeyArrowUp:    core.ActionThrust,
	ebiten.KeyS:          core.ActionReverse,
	ebiten.KeyArrowDown:  core.ActionReverse,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyEscape:     core.ActionPause,
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 220, G: 220, B: 220, A: 255},
	core.ColorRed:          {R: 200, G: 60, B: 60, A: 255},
	core.ColorYellow:       {R: 200, G: 180, B: 60, A: 255},
	core.ColorCyan:         {R: 80, G: 200, B: 220, A: 255},
	core.ColorWhite:        {R: 200, G: 200, B: 200, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightYellow: {R: 255, G: 230, B: 90, A: 255},
	core.ColorBrightRed:    {R: 255, G: 80, B: 80, A: 255},
	core.ColorGray:         {R: 128, G: 128, B: 128, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// imageCanvas draws world shapes onto an Ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Circle(center core.Vec2, radius float64, col core.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), 2, rgba(col), true)
}

func (c imageCanvas) Polygon(points []core.Vec2, col core.Color) {
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, rgba(col), true)
	}
}

// shell implements ebiten.Game.
type shell struct {
	game    Game
	logger  *log.Logger
	linger  int // Ticks to keep showing the final frame
	overFor int
	state   core.GameState
}

func (s *shell) input() core.InputFrame {
	frame := core.NewInputFrame()
	for k, a := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			frame.Set(a)
		}
	}
	return frame
}

func (s *shell) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if s.state.GameOver {
		s.overFor++
		if s.overFor >= s.linger {
			return ebiten.Termination
		}
		return nil
	}

	res := s.game.Step(s.input())
	s.state = res.State
	if res.Err != nil {
		s.logger.Error("game halted", "err", res.Err)
		return res.Err
	}
	if s.state.GameOver {
		s.logger.Info("game over", "tick", s.state.Tick)
	}
	return nil
}

func (s *shell) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.game.Draw(imageCanvas{dst: screen})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  rocks %d  %.0f TPS",
		s.game.Title(), s.state.Asteroids, ebiten.ActualTPS()), 8, 8)

	w, h := s.game.WorldSize()
	switch {
	case s.state.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(w)/2-27, int(h)/2-8)
	case s.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", int(w)/2-78, int(h)/2-8)
	}
}

func (s *shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := s.game.WorldSize()
	return int(w), int(h)
}

// Run resets the game and runs it in a window until game over or quit.
// It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return core.GameState{}, err
	}

	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}
	w, h := game.WorldSize()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	s := &shell{
		game:   game,
		logger: logger,
		linger: tps * 3 / 2,
		state:  game.State(),
	}
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return s.state, fmt.Errorf("window: %w", err)
	}
	return s.state, nil
}
