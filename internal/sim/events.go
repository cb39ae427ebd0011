package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// CollisionEvent records one player/collider overlap observed by the
// detector, including the face of the collider the player entered through.
type CollisionEvent struct {
	Entity EntityID
	Kind   Kind
	Side   core.Side
}

// events holds the per-tick message queues. Producers append during the
// simulation phase; the score pipeline and state machine drain them at the
// end of the same tick, so nothing leaks across tick boundaries.
type events struct {
	collisions   []CollisionEvent
	scoreUpdates []int
}

func newEvents() events {
	return events{
		collisions:   make([]CollisionEvent, 0, 4),
		scoreUpdates: make([]int, 0, 2),
	}
}

func (e *events) pushCollision(ev CollisionEvent) {
	e.collisions = append(e.collisions, ev)
}

// pushScoreUpdate enqueues an absolute score value. Updates carry the new
// value rather than a delta so the restart reset shares the same pathway.
func (e *events) pushScoreUpdate(newScore int) {
	e.scoreUpdates = append(e.scoreUpdates, newScore)
}

// hazardHit reports whether any queued collision involves a hazard.
func (e *events) hazardHit() bool {
	for _, ev := range e.collisions {
		if ev.Kind.Hazardous() {
			return true
		}
	}
	return false
}

// clear empties both queues without releasing capacity.
func (e *events) clear() {
	e.collisions = e.collisions[:0]
	e.scoreUpdates = e.scoreUpdates[:0]
}
