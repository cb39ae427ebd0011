// Package sim implements the per-frame simulation: physics integration,
// obstacle spawning and motion, collision detection, score bookkeeping and
// the game-state machine. It is pure logic with no external dependencies;
// the platform layer drives it with one Step per rendered frame.
package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// Params holds the fixed tuning constants for one simulation instance.
// All values are world units (the play field is a y-up coordinate system
// with the origin at its center). Params do not change after New.
type Params struct {
	FieldW  float64 // Play-field width
	FieldH  float64 // Play-field height
	GroundH float64 // Ground slab height, sitting on the bottom edge

	PlayerW      float64 // Player hitbox width
	PlayerH      float64 // Player hitbox height
	PlayerStartX float64 // Fixed horizontal player position

	Gravity      float64 // Vertical acceleration, negative = down
	JumpVelocity float64 // Velocity assigned on jump, positive = up
	BobAmplitude float64 // Idle bob wave amplitude
	BobFrequency float64 // Idle bob wave frequency in Hz

	ObstacleSpeed float64 // Leftward obstacle speed
	SpawnInterval float64 // Seconds between obstacle group spawns
	GapSize       float64 // Vertical gap between the hazard pair
	PipeWidth     float64 // Hazard width
	MinPipeHeight float64 // Minimum hazard height, bounds the gap placement
	GateWidth     float64 // Width of the scoring gate strip inside the gap
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		FieldW:  1920,
		FieldH:  1080,
		GroundH: 100,

		PlayerW:      50,
		PlayerH:      50,
		PlayerStartX: -500,

		Gravity:      -2500,
		JumpVelocity: 700,
		BobAmplitude: 10,
		BobFrequency: 0.5,

		ObstacleSpeed: 400,
		SpawnInterval: 1.1,
		GapSize:       225,
		PipeWidth:     100,
		MinPipeHeight: 100,
		GateWidth:     10,
	}
}

// Ceiling returns the upper clamp for the player's vertical position:
// the top of the play field plus half the player's height.
func (p Params) Ceiling() float64 {
	return p.FieldH/2 + p.PlayerH/2
}

// LeftEdge returns the x-coordinate of the left play-field boundary.
func (p Params) LeftEdge() float64 {
	return -p.FieldW / 2
}

// RightEdge returns the x-coordinate of the right play-field boundary.
func (p Params) RightEdge() float64 {
	return p.FieldW / 2
}

// playerStart is the player spawn position.
func (p Params) playerStart() core.Vec2 {
	return core.Vec2{X: p.PlayerStartX, Y: 0}
}

// playerHalf is the player's half extents.
func (p Params) playerHalf() core.Vec2 {
	return core.Vec2{X: p.PlayerW / 2, Y: p.PlayerH / 2}
}

// groundCenterY is the vertical center of the ground slab.
func (p Params) groundCenterY() float64 {
	return -p.FieldH/2 + p.GroundH/2
}
