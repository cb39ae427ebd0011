package sim

// Mode is the top-level game state. Exactly one value is active at a time.
type Mode uint8

const (
	// ModeIdle is the pre-round state: the player bobs in place and a
	// jump input arms the round.
	ModeIdle Mode = iota
	// ModePlaying runs physics, spawning, motion and collision.
	ModePlaying
	// ModeGameOver freezes the simulation; only a restart is accepted.
	ModeGameOver
	// ModePaused and ModeMainMenu are reserved extension points. The
	// core never transitions into them.
	ModePaused
	ModeMainMenu
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	case ModePaused:
		return "Paused"
	case ModeMainMenu:
		return "MainMenu"
	default:
		return "Unknown"
	}
}

// restart performs the GameOver -> Idle transition as one atomic step:
// destroy the player, destroy every obstacle group, reset the score to
// zero through the regular update pathway, then re-create a fresh player
// at the start position. The ground persists across restarts.
func (s *Sim) restart() {
	if p := s.world.Player(); p != nil {
		s.world.Despawn(p.ID)
	}
	s.world.DespawnObstacles()
	s.events.pushScoreUpdate(0)
	s.spawnPlayer()
	s.mode = ModeIdle
}

// spawnPlayer creates the single player entity at the start position
// with zero velocity.
func (s *Sim) spawnPlayer() {
	s.world.Spawn(Entity{
		Kind: KindPlayer,
		Pos:  s.params.playerStart(),
		Half: s.params.playerHalf(),
	})
}
