package sim

// moveObstacles translates every obstacle child leftward by speed*dt.
// All members of a group receive the same decrement, so they keep sharing
// one horizontal position. Pure translation, no collision side effects.
func moveObstacles(w *World, speed, dt float64) {
	w.ForEach(func(e *Entity) {
		if e.Group != 0 {
			e.Pos.X -= speed * dt
		}
	})
}

// pruneOffscreen despawns groups whose every member is fully past the
// left field boundary. Off-screen colliders sit behind the player's fixed
// horizontal position and can never overlap it again, so pruning cannot
// change scoring or collision outcomes; it only bounds memory.
func pruneOffscreen(w *World, leftEdge float64) {
	visible := make(map[GroupID]bool)
	all := make(map[GroupID]bool)
	w.ForEach(func(e *Entity) {
		if e.Group == 0 {
			return
		}
		all[e.Group] = true
		if e.Pos.X+e.Half.X > leftEdge {
			visible[e.Group] = true
		}
	})
	for g := range all {
		if !visible[g] {
			w.DespawnGroup(g)
		}
	}
}
