package sim

// applyScoreUpdates drains the score-update queue into the authoritative
// counter and reports whether a "score changed" notification should fire.
// Updates carry absolute values; the last one in the queue wins. The
// notification fires whenever at least one update was consumed, which is
// what lets the presentation layer refresh without polling.
func (s *Sim) applyScoreUpdates() bool {
	if len(s.events.scoreUpdates) == 0 {
		return false
	}
	for _, v := range s.events.scoreUpdates {
		s.score = v
	}
	return true
}
