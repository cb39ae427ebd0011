package sim

import "math"

// integrate advances the player's vertical motion by dt seconds under
// constant acceleration:
//
//	y' = y + v*dt + 0.5*g*dt^2
//	v' = v + g*dt
//
// The position is clamped so the player cannot leave the field upward;
// there is no lower clamp, falling into the ground is a collision
// condition rather than a physics boundary.
func integrate(p *Entity, gravity, ceiling, dt float64) {
	if p == nil {
		return
	}
	p.Pos.Y += p.Vel*dt + 0.5*gravity*dt*dt
	if p.Pos.Y > ceiling {
		p.Pos.Y = ceiling
	}
	p.Vel += gravity * dt
}

// applyJump sets the player's vertical velocity to the jump constant.
// The impulse overwrites the current velocity rather than adding to it.
// A nil player (mid-restart) is a no-op.
func applyJump(p *Entity, jumpVelocity float64) {
	if p == nil {
		return
	}
	p.Vel = jumpVelocity
}

// idleBob drives the player's vertical position with a fixed sinusoid
// while the round is not armed. Parameterized by wall-clock time since
// process start, so the wave does not restart on every round.
func idleBob(p *Entity, amplitude, frequency, elapsed float64) {
	if p == nil {
		return
	}
	p.Pos.Y = amplitude * math.Sin(2*math.Pi*frequency*elapsed)
}

// sanitizeDelta clamps a host-supplied frame delta to something the
// integrator can safely consume. Negative or non-finite deltas collapse
// to zero per the upstream contract.
func sanitizeDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}
