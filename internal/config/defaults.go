package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the stock configuration.
func Default() Config {
	return Config{
		PlayField: PlayField{
			Width:        1920,
			Height:       1080,
			GroundHeight: 100,
		},
		Player: Player{
			Width:  50,
			Height: 50,
			StartX: -500,
		},
		Physics: Physics{
			Gravity:      -2500,
			JumpVelocity: 700,
			BobAmplitude: 10,
			BobFrequency: 0.5,
		},
		Obstacles: Obstacles{
			Speed:         400,
			SpawnInterval: 1.1,
			GapSize:       225,
			PipeWidth:     100,
			MinPipeHeight: 100,
			GateWidth:     10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
