// Package config provides YAML-based configuration loading and difficulty
// presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AsteroidsConfig contains all tunable parameters of the simulation.
type AsteroidsConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Shots      ShotConfig       `yaml:"shots"`
	Asteroids  FieldConfig      `yaml:"asteroids"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ScreenConfig defines the world size in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Radius    float64 `yaml:"radius"`
	TurnSpeed float64 `yaml:"turn_speed"` // Degrees per second
	MoveSpeed float64 `yaml:"move_speed"` // Units per second
}

// ShotConfig defines projectiles and the fire cooldown.
type ShotConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Cooldown float64 `yaml:"cooldown"` // Seconds between shots
}

// FieldConfig defines the initial asteroid field and splitting.
type FieldConfig struct {
	Count            int     `yaml:"count"`
	SafeZone         float64 `yaml:"safe_zone"`
	MinRadius        int     `yaml:"min_radius"`
	MaxRadius        int     `yaml:"max_radius"`
	MaxSpeed         float64 `yaml:"max_speed"` // Per-axis bound of the initial velocity
	MinSplitRadius   float64 `yaml:"min_split_radius"`
	SplitAngleMin    float64 `yaml:"split_angle_min"`
	SplitAngleMax    float64 `yaml:"split_angle_max"`
	SplitSpeedFactor float64 `yaml:"split_speed_factor"`
}

// SimulationConfig defines the clock.
type SimulationConfig struct {
	FPS           int     `yaml:"fps"`
	MaxFrameDT    float64 `yaml:"max_frame_dt"`
	SpawnAttempts int     `yaml:"spawn_attempts"` // Rejection sampling cap per asteroid
}

// Validate checks that every setting is usable by the simulation.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %gx%g", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius %g", ErrInvalidConfig, c.Player.Radius)
	case c.Player.TurnSpeed < 0 || c.Player.MoveSpeed < 0:
		return fmt.Errorf("%w: negative player speed", ErrInvalidConfig)
	case c.Shots.Radius <= 0 || c.Shots.Speed <= 0:
		return fmt.Errorf("%w: shot radius %g, speed %g", ErrInvalidConfig, c.Shots.Radius, c.Shots.Speed)
	case c.Shots.Cooldown < 0:
		return fmt.Errorf("%w: shot cooldown %g", ErrInvalidConfig, c.Shots.Cooldown)
	case c.Asteroids.Count < 0:
		return fmt.Errorf("%w: asteroid count %d", ErrInvalidConfig, c.Asteroids.Count)
	case c.Asteroids.SafeZone < 0:
		return fmt.Errorf("%w: safe zone %g", ErrInvalidConfig, c.Asteroids.SafeZone)
	case c.Asteroids.MinRadius <= 0 || c.Asteroids.MaxRadius < c.Asteroids.MinRadius:
		return fmt.Errorf("%w: asteroid radius range [%d, %d]", ErrInvalidConfig, c.Asteroids.MinRadius, c.Asteroids.MaxRadius)
	case c.Asteroids.MaxSpeed < 0:
		return fmt.Errorf("%w: asteroid max speed %g", ErrInvalidConfig, c.Asteroids.MaxSpeed)
	case c.Asteroids.MinSplitRadius < 1:
		return fmt.Errorf("%w: min split radius %g", ErrInvalidConfig, c.Asteroids.MinSplitRadius)
	case c.Asteroids.SplitAngleMax < c.Asteroids.SplitAngleMin:
		return fmt.Errorf("%w: split angle range [%g, %g]", ErrInvalidConfig, c.Asteroids.SplitAngleMin, c.Asteroids.SplitAngleMax)
	case c.Asteroids.SplitSpeedFactor <= 0:
		return fmt.Errorf("%w: split speed factor %g", ErrInvalidConfig, c.Asteroids.SplitSpeedFactor)
	case c.Simulation.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Simulation.FPS)
	case c.Simulation.MaxFrameDT <= 0:
		return fmt.Errorf("%w: max frame dt %g", ErrInvalidConfig, c.Simulation.MaxFrameDT)
	case c.Simulation.SpawnAttempts <= 0:
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalidConfig, c.Simulation.SpawnAttempts)
	}
	return nil
}
