package sim

import (
	"testing"

	"github.com/mkweon/grandmall/internal/entropy"
)

// scriptedRand returns queued values, then falls back to fixed defaults.
// Tests that depend on a particular roll load the queue; everything else
// gets a neutral 0.5 / 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) > 0 {
		v := s.floats[0]
		s.floats = s.floats[1:]
		return v
	}
	return 0.5
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) > 0 {
		v := s.ints[0] % n
		s.ints = s.ints[1:]
		return v
	}
	return 0
}

func newTestState(t *testing.T) *State {
	t.Helper()
	st := New(entropy.NewSeeded(42))
	st.EnsureRival()
	return st
}

func lastLog(st *State) string {
	if len(st.Log) == 0 {
		return ""
	}
	return st.Log[len(st.Log)-1].Text
}
