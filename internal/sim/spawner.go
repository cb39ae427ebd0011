package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Spawner creates obstacle groups on a repeating interval. Each group is
// three children sharing one horizontal position: an upper hazard, a lower
// hazard and a thin scoring gate centered in the gap between them.
type Spawner struct {
	rng      *rand.Rand
	interval float64
	accum    float64
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, interval float64) *Spawner {
	s := &Spawner{interval: interval}
	s.Reset(seed)
	return s
}

// Reset restarts the interval timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.accum = 0
}

// SpawnBounds derives the valid range for a group's vertical center so
// that the gap neither overlaps the ground nor extends past the top of
// the play field. halfH is the play-field half-height.
func SpawnBounds(halfH, gapSize, minHazard, groundH float64) (lower, upper float64) {
	upper = halfH - gapSize/2 - minHazard
	lower = -upper + groundH
	return lower, upper
}

// Advance accumulates dt against the interval timer and spawns one group
// per elapsed period. Returns the number of groups spawned. Degenerate
// bounds (possible only under broken tuning) skip the spawn for that
// period instead of panicking.
func (s *Spawner) Advance(dt float64, w *World, p Params) int {
	spawned := 0
	s.accum += dt
	for s.accum >= s.interval {
		s.accum -= s.interval
		if s.spawnGroup(w, p) {
			spawned++
		}
	}
	return spawned
}

// spawnGroup creates one obstacle group at the right edge of the field.
func (s *Spawner) spawnGroup(w *World, p Params) bool {
	lower, upper := SpawnBounds(p.FieldH/2, p.GapSize, p.MinPipeHeight, p.GroundH)
	if lower > upper {
		return false
	}

	centerY := lower + s.rng.Float64()*(upper-lower)
	x := p.RightEdge() + p.PipeWidth

	gapTop := centerY + p.GapSize/2
	gapBottom := centerY - p.GapSize/2

	topHeight := p.FieldH/2 - gapTop
	bottomHeight := gapBottom - (-p.FieldH / 2)

	g := w.NewGroup()

	w.Spawn(Entity{
		Kind:  KindHazard,
		Pos:   core.Vec2{X: x, Y: gapTop + topHeight/2},
		Half:  core.Vec2{X: p.PipeWidth / 2, Y: topHeight / 2},
		Group: g,
	})
	w.Spawn(Entity{
		Kind:  KindHazard,
		Pos:   core.Vec2{X: x, Y: gapBottom - bottomHeight/2},
		Half:  core.Vec2{X: p.PipeWidth / 2, Y: bottomHeight / 2},
		Group: g,
	})
	w.Spawn(Entity{
		Kind:  KindScoreGate,
		Pos:   core.Vec2{X: x, Y: centerY},
		Half:  core.Vec2{X: p.GateWidth / 2, Y: p.GapSize / 2},
		Group: g,
	})

	return true
}
