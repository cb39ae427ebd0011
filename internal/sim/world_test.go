package sim

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestWorldSpawnAssignsUniqueIDs(t *testing.T) {
	w := NewWorld()

	a := w.Spawn(Entity{Kind: KindHazard})
	b := w.Spawn(Entity{Kind: KindHazard})
	c := w.Spawn(Entity{Kind: KindScoreGate})

	if a == b || b == c || a == c {
		t.Errorf("ids not unique: %v %v %v", a, b, c)
	}
	if w.Len() != 3 {
		t.Errorf("Len() = %d, want 3", w.Len())
	}
}

func TestWorldDespawnSwapRemove(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: 1}})
	b := w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: 2}})
	c := w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: 3}})

	w.Despawn(a)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	if w.Get(a) != nil {
		t.Error("despawned entity still reachable")
	}
	// Survivors stay reachable through the index after the swap.
	if e := w.Get(b); e == nil || e.Pos.X != 2 {
		t.Errorf("Get(b) = %+v, want X=2", e)
	}
	if e := w.Get(c); e == nil || e.Pos.X != 3 {
		t.Errorf("Get(c) = %+v, want X=3", e)
	}

	// Despawning an unknown id is a no-op.
	w.Despawn(a)
	w.Despawn(EntityID(9999))
	if w.Len() != 2 {
		t.Errorf("Len() after no-op despawns = %d, want 2", w.Len())
	}
}

func TestWorldIDsNeverReused(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Entity{Kind: KindHazard})
	w.Despawn(a)
	b := w.Spawn(Entity{Kind: KindHazard})
	if b == a {
		t.Errorf("id %v reused after despawn", a)
	}
}

func TestWorldDespawnGroup(t *testing.T) {
	w := NewWorld()
	g1 := w.NewGroup()
	g2 := w.NewGroup()
	w.Spawn(Entity{Kind: KindHazard, Group: g1})
	w.Spawn(Entity{Kind: KindHazard, Group: g1})
	w.Spawn(Entity{Kind: KindScoreGate, Group: g1})
	keep := w.Spawn(Entity{Kind: KindHazard, Group: g2})

	w.DespawnGroup(g1)

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	if w.Get(keep) == nil {
		t.Error("other group's member despawned")
	}
	if w.GroupCount() != 1 {
		t.Errorf("GroupCount() = %d, want 1", w.GroupCount())
	}

	// Group zero means ungrouped and must never match anything.
	w.Spawn(Entity{Kind: KindPlayer})
	w.DespawnGroup(0)
	if w.Len() != 2 {
		t.Errorf("DespawnGroup(0) removed ungrouped entities")
	}
}

func TestWorldDespawnObstaclesKeepsPlayerAndGround(t *testing.T) {
	w := NewWorld()
	w.Spawn(Entity{Kind: KindPlayer})
	w.Spawn(Entity{Kind: KindGround})
	g := w.NewGroup()
	w.Spawn(Entity{Kind: KindHazard, Group: g})
	w.Spawn(Entity{Kind: KindHazard, Group: g})
	w.Spawn(Entity{Kind: KindScoreGate, Group: g})

	w.DespawnObstacles()

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	if w.Player() == nil {
		t.Error("player despawned")
	}
	if w.Ground() == nil {
		t.Error("ground despawned")
	}
	if w.GroupCount() != 0 {
		t.Errorf("GroupCount() = %d, want 0", w.GroupCount())
	}
}

func TestWorldEntitiesSnapshotIsCopy(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(Entity{Kind: KindPlayer, Pos: core.Vec2{X: -500}})

	snap := w.Entities()
	snap[0].Pos.X = 0

	if w.Get(id).Pos.X != -500 {
		t.Error("mutating the snapshot changed the live entity")
	}
}

func TestMoveObstaclesOnlyGrouped(t *testing.T) {
	w := NewWorld()
	player := w.Spawn(Entity{Kind: KindPlayer, Pos: core.Vec2{X: -500}})
	g := w.NewGroup()
	hazard := w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: 1000}, Group: g})
	gate := w.Spawn(Entity{Kind: KindScoreGate, Pos: core.Vec2{X: 1000}, Group: g})

	moveObstacles(w, 400, 0.1)

	if got := w.Get(player).Pos.X; got != -500 {
		t.Errorf("player moved to %v", got)
	}
	if got := w.Get(hazard).Pos.X; !almostEqual(got, 960) {
		t.Errorf("hazard x = %v, want 960", got)
	}
	if got := w.Get(gate).Pos.X; !almostEqual(got, 960) {
		t.Errorf("gate x = %v, want 960", got)
	}
}

func TestPruneOffscreenWholeGroupsOnly(t *testing.T) {
	w := NewWorld()
	leftEdge := -960.0

	// Group fully past the edge.
	gone := w.NewGroup()
	w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: -1100}, Half: core.Vec2{X: 50}, Group: gone})
	w.Spawn(Entity{Kind: KindScoreGate, Pos: core.Vec2{X: -1100}, Half: core.Vec2{X: 5}, Group: gone})

	// Group with one member still poking past the boundary.
	stays := w.NewGroup()
	w.Spawn(Entity{Kind: KindHazard, Pos: core.Vec2{X: -940}, Half: core.Vec2{X: 50}, Group: stays})
	w.Spawn(Entity{Kind: KindScoreGate, Pos: core.Vec2{X: -1100}, Half: core.Vec2{X: 5}, Group: stays})

	pruneOffscreen(w, leftEdge)

	if w.GroupCount() != 1 {
		t.Fatalf("GroupCount() = %d, want 1", w.GroupCount())
	}
	remaining := 0
	w.ForEach(func(e *Entity) {
		if e.Group != stays {
			t.Errorf("unexpected survivor from group %v", e.Group)
		}
		remaining++
	})
	if remaining != 2 {
		t.Errorf("partially visible group lost members: %d left", remaining)
	}
}
