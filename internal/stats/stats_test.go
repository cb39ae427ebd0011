package stats

import (
	"testing"
	"time"
)

func TestStoreBest(t *testing.T) {
	s := NewStore()

	if _, ok := s.Best(); ok {
		t.Error("empty store reported a best run")
	}

	s.Record(Run{Score: 3})
	s.Record(Run{Score: 11})
	s.Record(Run{Score: 7})

	best, ok := s.Best()
	if !ok {
		t.Fatal("Best() = none after recording")
	}
	if best.Score != 11 {
		t.Errorf("Best().Score = %d, want 11", best.Score)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
}

func TestStoreRecordStampsTime(t *testing.T) {
	s := NewStore()
	s.Record(Run{Score: 1})

	best, _ := s.Best()
	if best.When.IsZero() {
		t.Error("Record did not stamp a zero When")
	}

	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s2 := NewStore()
	s2.Record(Run{Score: 1, When: stamp})
	best, _ = s2.Best()
	if !best.When.Equal(stamp) {
		t.Errorf("Record overwrote the provided When: %v", best.When)
	}
}

func TestStoreTopOrderingAndLimit(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.Record(Run{Player: "a", Score: 5, When: base})
	s.Record(Run{Player: "b", Score: 9, When: base.Add(time.Minute)})
	s.Record(Run{Player: "c", Score: 5, When: base.Add(2 * time.Minute)})
	s.Record(Run{Player: "d", Score: 1, When: base.Add(3 * time.Minute)})

	top := s.Top(3)
	if len(top) != 3 {
		t.Fatalf("Top(3) returned %d runs", len(top))
	}
	if top[0].Player != "b" {
		t.Errorf("top[0] = %q, want b", top[0].Player)
	}
	// Tied scores: the more recent run ranks first.
	if top[1].Player != "c" || top[2].Player != "a" {
		t.Errorf("tie order = %q, %q, want c, a", top[1].Player, top[2].Player)
	}

	// Asking for more than recorded returns everything.
	if got := len(s.Top(100)); got != 4 {
		t.Errorf("Top(100) returned %d runs, want 4", got)
	}
}

func TestStoreTopDoesNotMutateHistory(t *testing.T) {
	s := NewStore()
	s.Record(Run{Player: "first", Score: 1})
	s.Record(Run{Player: "second", Score: 2})

	s.Top(10)

	// Recording order must survive the sorted view.
	all := s.Top(10)
	if s.Count() != 2 || len(all) != 2 {
		t.Fatalf("history changed: count=%d", s.Count())
	}
	best, _ := s.Best()
	if best.Player != "second" {
		t.Errorf("Best() = %q, want second", best.Player)
	}
}
