package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame carries one tick's worth of host input: the edge-triggered
// logical signals plus the host clock readings.
type Frame struct {
	Jump    bool    // true only on the tick the jump input arrived
	Restart bool    // true only on the tick the restart input arrived
	Delta   float64 // seconds since the previous tick
	Elapsed float64 // seconds since process start, drives the idle bob
}

// Result is the observable outcome of one Step.
type Result struct {
	Mode         Mode
	Score        int
	ScoreChanged bool
}

// Sim is the simulation context: the entity arena, the score counter,
// the active mode and the per-tick event queues. All mutation happens on
// the single goroutine calling Step; the snapshot accessors return copies
// so the presentation layer never reads live state.
type Sim struct {
	params  Params
	world   *World
	spawner *Spawner
	events  events
	mode    Mode
	score   int
}

// New creates a simulation in the Idle mode with a ground, a freshly
// spawned player and no obstacles.
func New(params Params, seed int64) *Sim {
	s := &Sim{
		params:  params,
		world:   NewWorld(),
		spawner: NewSpawner(seed, params.SpawnInterval),
		events:  newEvents(),
	}

	// The ground is created once and survives every restart.
	s.world.Spawn(Entity{
		Kind: KindGround,
		Pos:  core.Vec2{X: 0, Y: params.groundCenterY()},
		Half: core.Vec2{X: params.FieldW / 2, Y: params.GroundH / 2},
	})
	s.spawnPlayer()
	return s
}

// Reset returns the simulation to a fresh Idle round: obstacles cleared,
// score zeroed through the pipeline, player respawned, spawner reseeded.
func (s *Sim) Reset(seed int64) {
	s.restart()
	s.applyScoreUpdates()
	s.events.clear()
	s.spawner.Reset(seed)
}

// Step advances the simulation by one tick. Within the tick the system
// order is fixed: input and physics mutate the player, then the spawner
// and motion mutate obstacles, then the collision detector observes the
// settled positions and emits events, then the score pipeline and state
// machine drain those events. Nothing carries over to the next tick.
func (s *Sim) Step(f Frame) Result {
	dt := sanitizeDelta(f.Delta)

	switch s.mode {
	case ModeIdle:
		idleBob(s.world.Player(), s.params.BobAmplitude, s.params.BobFrequency, f.Elapsed)
		if f.Jump {
			applyJump(s.world.Player(), s.params.JumpVelocity)
			s.mode = ModePlaying
		}

	case ModePlaying:
		if f.Jump {
			applyJump(s.world.Player(), s.params.JumpVelocity)
		}
		integrate(s.world.Player(), s.params.Gravity, s.params.Ceiling(), dt)
		s.spawner.Advance(dt, s.world, s.params)
		moveObstacles(s.world, s.params.ObstacleSpeed, dt)
		pruneOffscreen(s.world, s.params.LeftEdge())
		s.detectCollisions()

	case ModeGameOver:
		if f.Restart {
			s.restart()
		}
	}

	// Drain phase. The score pipeline consumes updates before the state
	// machine reads collisions, so a score earned on a fatal tick is
	// preserved even though the next tick never runs.
	changed := s.applyScoreUpdates()
	if s.events.hazardHit() {
		s.mode = ModeGameOver
	}
	s.events.clear()

	return Result{Mode: s.mode, Score: s.score, ScoreChanged: changed}
}

// Mode returns the active game mode.
func (s *Sim) Mode() Mode {
	return s.mode
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Params returns the tuning constants this simulation runs with.
func (s *Sim) Params() Params {
	return s.params
}

// Entities returns a read-only snapshot of all live entities for
// rendering.
func (s *Sim) Entities() []Entity {
	return s.world.Entities()
}

// PlayerSnapshot returns a copy of the player entity and whether one
// exists.
func (s *Sim) PlayerSnapshot() (Entity, bool) {
	p := s.world.Player()
	if p == nil {
		return Entity{}, false
	}
	return *p, true
}
