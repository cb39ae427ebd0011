// Package game adapts the simulation core to the platform Game contract:
// it maps semantic input actions onto simulation frames and renders world
// snapshots into the cell screen buffer.
package game

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Game hosts one simulation instance behind the platform interface.
type Game struct {
	params sim.Params
	s      *sim.Sim
	cfg    core.RuntimeConfig
	last   sim.Result
	ticks  int
}

// New creates a game with the given simulation tuning.
func New(params sim.Params) *Game {
	return &Game{params: params}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game with a fresh simulation round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.ticks = 0

	if g.s == nil {
		g.s = sim.New(g.params, cfg.Seed)
	} else {
		g.s.Reset(cfg.Seed)
	}
	g.last = sim.Result{Mode: g.s.Mode(), Score: g.s.Score()}
}

// Step advances the simulation by one tick using the host clock readings.
func (g *Game) Step(in core.InputFrame, ts core.TimeStep) core.StepResult {
	g.ticks++

	g.last = g.s.Step(sim.Frame{
		Jump:    in.Has(core.ActionJump),
		Restart: in.Has(core.ActionRestart),
		Delta:   ts.Delta,
		Elapsed: ts.Elapsed,
	})

	return core.StepResult{
		State:        g.State(),
		ScoreChanged: g.last.ScoreChanged,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Idle:     g.last.Mode == sim.ModeIdle,
		GameOver: g.last.Mode == sim.ModeGameOver,
	}
}

// Ticks returns the number of ticks since the last Reset.
func (g *Game) Ticks() int {
	return g.ticks
}
