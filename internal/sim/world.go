package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EntityID uniquely identifies a live entity. IDs are never reused
// within one simulation instance.
type EntityID int

// GroupID links the children of one obstacle group. Zero means no group.
type GroupID int

// Kind is the tagged-variant discriminator for entities.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindGround
	KindHazard
	KindScoreGate
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindGround:
		return "Ground"
	case KindHazard:
		return "Hazard"
	case KindScoreGate:
		return "ScoreGate"
	default:
		return "Unknown"
	}
}

// Hazardous reports whether contact with this kind ends the run.
func (k Kind) Hazardous() bool {
	return k == KindGround || k == KindHazard
}

// Collider reports whether this kind participates in collision checks
// against the player.
func (k Kind) Collider() bool {
	return k != KindPlayer
}

// Entity is one live game object. Pos is the center of its box.
// Vel is only meaningful for the player; Group only for obstacle children.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec2
	Half  core.Vec2
	Vel   float64
	Group GroupID
}

// Box returns the entity's current collision box.
func (e *Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Half: e.Half}
}

// World is an indexed arena of live entities. Entities are stored densely
// for iteration; despawn swaps with the tail so iteration order is not
// stable across despawns.
type World struct {
	nextID    EntityID
	nextGroup GroupID
	list      []Entity
	index     map[EntityID]int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:    1,
		nextGroup: 1,
		list:      make([]Entity, 0, 16),
		index:     make(map[EntityID]int),
	}
}

// NewGroup allocates a fresh obstacle group id.
func (w *World) NewGroup() GroupID {
	g := w.nextGroup
	w.nextGroup++
	return g
}

// Spawn adds an entity to the world and returns its assigned id.
func (w *World) Spawn(e Entity) EntityID {
	e.ID = w.nextID
	w.nextID++
	w.index[e.ID] = len(w.list)
	w.list = append(w.list, e)
	return e.ID
}

// Despawn removes an entity by id. Unknown ids are ignored.
func (w *World) Despawn(id EntityID) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	last := len(w.list) - 1
	if i != last {
		w.list[i] = w.list[last]
		w.index[w.list[i].ID] = i
	}
	w.list = w.list[:last]
	delete(w.index, id)
}

// DespawnGroup removes every member of an obstacle group.
func (w *World) DespawnGroup(g GroupID) {
	if g == 0 {
		return
	}
	for _, id := range w.groupMembers(g) {
		w.Despawn(id)
	}
}

// DespawnObstacles removes every obstacle child (hazards and gates).
func (w *World) DespawnObstacles() {
	ids := make([]EntityID, 0, len(w.list))
	for i := range w.list {
		if w.list[i].Group != 0 {
			ids = append(ids, w.list[i].ID)
		}
	}
	for _, id := range ids {
		w.Despawn(id)
	}
}

func (w *World) groupMembers(g GroupID) []EntityID {
	var ids []EntityID
	for i := range w.list {
		if w.list[i].Group == g {
			ids = append(ids, w.list[i].ID)
		}
	}
	return ids
}

// Get returns a pointer to the live entity with the given id, or nil.
// The pointer is invalidated by the next Spawn or Despawn.
func (w *World) Get(id EntityID) *Entity {
	i, ok := w.index[id]
	if !ok {
		return nil
	}
	return &w.list[i]
}

// Player returns the live player entity, or nil if none exists
// (transiently true during a restart).
func (w *World) Player() *Entity {
	return w.firstOfKind(KindPlayer)
}

// Ground returns the ground entity.
func (w *World) Ground() *Entity {
	return w.firstOfKind(KindGround)
}

func (w *World) firstOfKind(k Kind) *Entity {
	for i := range w.list {
		if w.list[i].Kind == k {
			return &w.list[i]
		}
	}
	return nil
}

// ForEach calls fn for every live entity. fn must not spawn or despawn.
func (w *World) ForEach(fn func(*Entity)) {
	for i := range w.list {
		fn(&w.list[i])
	}
}

// Entities returns a snapshot copy of all live entities, safe for the
// presentation layer to read while the next tick mutates the world.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.list))
	copy(out, w.list)
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.list)
}

// GroupCount returns the number of distinct live obstacle groups.
func (w *World) GroupCount() int {
	seen := make(map[GroupID]struct{})
	for i := range w.list {
		if g := w.list[i].Group; g != 0 {
			seen[g] = struct{}{}
		}
	}
	return len(seen)
}
