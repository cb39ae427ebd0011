// Package config provides YAML-based tuning configuration for the game.
// All values are fixed at startup; nothing is runtime-reconfigurable.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Config contains all tuning constants, in world units.
type Config struct {
	PlayField PlayField `yaml:"play_field"`
	Player    Player    `yaml:"player"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// PlayField defines the world dimensions.
type PlayField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Player defines the player hitbox and start position.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
}

// Physics defines the vertical motion constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"`
}

// Obstacles defines spawning and motion constants for obstacle groups.
type Obstacles struct {
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	GapSize       float64 `yaml:"gap_size"`
	PipeWidth     float64 `yaml:"pipe_width"`
	MinPipeHeight float64 `yaml:"min_pipe_height"`
	GateWidth     float64 `yaml:"gate_width"`
}

// Params converts the config into simulation tuning.
func (c Config) Params() sim.Params {
	return sim.Params{
		FieldW:  c.PlayField.Width,
		FieldH:  c.PlayField.Height,
		GroundH: c.PlayField.GroundHeight,

		PlayerW:      c.Player.Width,
		PlayerH:      c.Player.Height,
		PlayerStartX: c.Player.StartX,

		Gravity:      c.Physics.Gravity,
		JumpVelocity: c.Physics.JumpVelocity,
		BobAmplitude: c.Physics.BobAmplitude,
		BobFrequency: c.Physics.BobFrequency,

		ObstacleSpeed: c.Obstacles.Speed,
		SpawnInterval: c.Obstacles.SpawnInterval,
		GapSize:       c.Obstacles.GapSize,
		MinPipeHeight: c.Obstacles.MinPipeHeight,
		PipeWidth:     c.Obstacles.PipeWidth,
		GateWidth:     c.Obstacles.GateWidth,
	}
}

// Validate checks for tuning values the simulation cannot run with.
func (c Config) Validate() error {
	if c.PlayField.Width <= 0 || c.PlayField.Height <= 0 {
		return fmt.Errorf("play field dimensions must be positive, got %gx%g",
			c.PlayField.Width, c.PlayField.Height)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %g", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("obstacle speed must be positive, got %g", c.Obstacles.Speed)
	}
	if c.Physics.JumpVelocity <= 0 {
		return fmt.Errorf("jump velocity must be positive, got %g", c.Physics.JumpVelocity)
	}
	if c.Physics.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %g", c.Physics.Gravity)
	}
	return nil
}
