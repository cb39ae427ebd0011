package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// detectCollisions tests the player against every live collider and
// applies the outcome policy. It must run after all position updates so
// it observes this tick's post-motion state.
//
// Hazard overlaps are recorded regardless of entry side; the state
// machine consumes them after the score pipeline runs. A scoring gate
// counts only when entered through its right face, meaning the player is
// passing through left-to-right relative to the gate. A qualifying gate
// hit enqueues a score update carrying score+1 and despawns the gate in
// the same tick, so a gate can never score twice. Any other contact with
// a gate is ignored, grazing or exiting touches do not score.
func (s *Sim) detectCollisions() {
	player := s.world.Player()
	if player == nil {
		return
	}
	playerBox := player.Box()

	var scoredGates []EntityID
	s.world.ForEach(func(e *Entity) {
		if !e.Kind.Collider() {
			return
		}
		side, hit := core.Collide(playerBox, e.Box())
		if !hit {
			return
		}

		s.events.pushCollision(CollisionEvent{Entity: e.ID, Kind: e.Kind, Side: side})

		if e.Kind == KindScoreGate && side == core.SideRight {
			s.events.pushScoreUpdate(s.score + 1)
			scoredGates = append(scoredGates, e.ID)
		}
	})

	// Despawn after the sweep; mutating the arena mid-iteration would
	// invalidate the ForEach pointers.
	for _, id := range scoredGates {
		s.world.Despawn(id)
	}
}
