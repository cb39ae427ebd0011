package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestGameIdentity(t *testing.T) {
	g := New(sim.DefaultParams())
	if g.ID() != "flappy" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() is empty")
	}
}

func TestGameResetStartsIdle(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	st := g.State()
	if !st.Idle || st.GameOver {
		t.Errorf("state after Reset = %+v, want idle", st)
	}
	if st.Score != 0 {
		t.Errorf("score after Reset = %d, want 0", st.Score)
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks() after Reset = %d, want 0", g.Ticks())
	}
}

func TestGameJumpStartsRound(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in, core.TimeStep{Delta: 1.0 / 60})

	st := g.State()
	if st.Idle {
		t.Error("still idle after jump")
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", g.Ticks())
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	// Start the round, then let the player free-fall into the ground.
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in, core.TimeStep{Delta: 1.0 / 60})
	in.Clear()

	ts := core.TimeStep{Delta: 1.0 / 60}
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		ts.Elapsed += ts.Delta
		g.Step(in, ts)
	}
	if !g.State().GameOver {
		t.Fatal("free fall never ended the run")
	}

	in.Set(core.ActionRestart)
	res := g.Step(in, ts)

	if !res.State.Idle || res.State.GameOver {
		t.Errorf("state after restart = %+v, want idle", res.State)
	}
	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
	if !res.ScoreChanged {
		t.Error("restart should notify the score reset")
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	run := func() []core.GameState {
		g := New(sim.DefaultParams())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 555})

		var states []core.GameState
		in := core.NewInputFrame()
		ts := core.TimeStep{Delta: 1.0 / 60}
		for i := 0; i < 300; i++ {
			in.Clear()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			if g.State().GameOver {
				in.Set(core.ActionRestart)
			}
			ts.Elapsed += ts.Delta
			res := g.Step(in, ts)
			states = append(states, res.State)
		}
		return states
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRenderBeforeResetIsBlank(t *testing.T) {
	g := New(sim.DefaultParams())
	screen := core.NewScreen(40, 12)

	// Must not panic and must leave the buffer blank.
	g.Render(screen)
	if out := strings.TrimSpace(screen.String()); out != "" {
		t.Errorf("render before Reset produced content: %q", out)
	}
}

func TestRenderIdleFrame(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, string(GroundChar)) {
		t.Error("ground missing from idle frame")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player missing from idle frame")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("score HUD missing from idle frame")
	}
	if !strings.Contains(out, "Press Space to start") {
		t.Error("start hint missing from idle frame")
	}
}

func TestRenderGameOverFrame(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in, core.TimeStep{Delta: 1.0 / 60})
	in.Clear()

	ts := core.TimeStep{Delta: 1.0 / 60}
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		ts.Elapsed += ts.Delta
		g.Step(in, ts)
	}
	if !g.State().GameOver {
		t.Fatal("free fall never ended the run")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("restart hint missing")
	}
}

func TestRenderShowsObstacles(t *testing.T) {
	g := New(sim.DefaultParams())
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	ts := core.TimeStep{Delta: 1.0 / 60}

	// Hold the jump key so the player stays airborne long enough for an
	// obstacle group to spawn and scroll into view.
	for i := 0; i < 180 && !g.State().GameOver; i++ {
		ts.Elapsed += ts.Delta
		g.Step(in, ts)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, PipeChar) {
		t.Error("hazards missing after spawn interval elapsed")
	}
}
