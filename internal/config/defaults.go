package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration.
// It matches defaults/asteroids.yaml.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:    50,
			TurnSpeed: 300,
			MoveSpeed: 200,
		},
		Shots: ShotConfig{
			Radius:   5,
			Speed:    500,
			Cooldown: 0.3,
		},
		Asteroids: FieldConfig{
			Count:            15,
			SafeZone:         200,
			MinRadius:        30,
			MaxRadius:        50,
			MaxSpeed:         100,
			MinSplitRadius:   10,
			SplitAngleMin:    20,
			SplitAngleMax:    50,
			SplitSpeedFactor: 1.2,
		},
		Simulation: SimulationConfig{
			FPS:           60,
			MaxFrameDT:    0.1,
			SpawnAttempts: 10000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
