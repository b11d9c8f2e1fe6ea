package sim

import (
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
)

func TestGrowRivalWaitsForInterval(t *testing.T) {
	st := newTestState(t)
	st.Rival.LastGrowthTick = 0
	rep := st.Rival.Reputation

	st.WithLock(func(s *State) { s.growRival(10) })
	if st.Rival.Reputation != rep {
		t.Error("rival grew before interval elapsed")
	}

	st.WithLock(func(s *State) { s.growRival(30) })
	if st.Rival.Reputation != rep+2 {
		t.Errorf("rival reputation = %f, want %f", st.Rival.Reputation, rep+2)
	}
	if st.Rival.LastGrowthTick != 30 {
		t.Errorf("last growth tick = %d, want 30", st.Rival.LastGrowthTick)
	}
}

func TestGrowRivalDayRolloverFlag(t *testing.T) {
	st := newTestState(t)
	// A wrapped counter alone never satisfies the elapsed check.
	st.Rival.LastGrowthTick = 55
	rep := st.Rival.Reputation

	st.WithLock(func(s *State) { s.growRival(5) })
	if st.Rival.Reputation != rep {
		t.Error("rival grew without the rollover flag")
	}

	st.WithLock(func(s *State) {
		s.markRivalDayRolled()
		s.growRival(5)
	})
	if st.Rival.Reputation != rep+2 {
		t.Errorf("rival reputation = %f, want %f", st.Rival.Reputation, rep+2)
	}
	if st.Rival.dayRolled {
		t.Error("rollover flag not cleared after growth")
	}
}

func TestGrowRivalScalesWithPlayerRank(t *testing.T) {
	st := newTestState(t)
	st.Reputation = catalog.StoreRanks[4].MinReputation
	st.Rival.LastGrowthTick = 0
	rep := st.Rival.Reputation

	st.WithLock(func(s *State) { s.growRival(30) })
	want := rep + 2 + float64(catalog.RankIndex(st.Reputation))*0.5
	// Gain uses floor of the rank bonus.
	if st.Rival.Reputation != rep+4 {
		t.Errorf("rival reputation = %f, want %f (raw %f)", st.Rival.Reputation, rep+4, want)
	}
}

func TestGrowRivalOneLevelPerEvaluation(t *testing.T) {
	st := newTestState(t)
	st.Rival.Reputation = 1400 // above thresholds for levels 2, 3 and 4
	st.Rival.Level = 1
	st.Rival.LastGrowthTick = 0

	st.WithLock(func(s *State) { s.growRival(30) })
	if st.Rival.Level != 2 {
		t.Errorf("rival level = %d, want 2", st.Rival.Level)
	}

	st.WithLock(func(s *State) { s.growRival(60) })
	if st.Rival.Level != 3 {
		t.Errorf("rival level = %d, want 3", st.Rival.Level)
	}
}

func TestRivalAttractionFormula(t *testing.T) {
	st := newTestState(t)
	st.Rival.Reputation = 198 // 200 after the +2 gain
	st.Rival.Level = 3
	st.Rival.LastGrowthTick = 0

	st.WithLock(func(s *State) { s.growRival(30) })
	// After growth: rep 200, level 3 (threshold 400 not reached).
	if want := 200.0 + 2*30; st.Rival.Attraction != want {
		t.Errorf("attraction = %f, want %f", st.Rival.Attraction, want)
	}
}
