package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling holds the multipliers a preset applies to the field.
type presetScaling struct {
	count float64
	speed float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {count: 0.6, speed: 0.75},
	DifficultyNormal: {count: 1.0, speed: 1.0},
	DifficultyHard:   {count: 1.4, speed: 1.3},
}

// ParsePreset converts a flag value to a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyAsteroidsPreset scales asteroid count and speed for a preset.
// Normal leaves the config untouched.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Asteroids.Count = int(math.Round(float64(cfg.Asteroids.Count) * s.count))
	cfg.Asteroids.MaxSpeed *= s.speed
}
