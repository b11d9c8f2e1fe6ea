package weather

import "testing"

func TestSameSeedSameForecast(t *testing.T) {
	a, b := New(7), New(7)
	for day := 1; day <= 60; day++ {
		if a.ConditionFor(day) != b.ConditionFor(day) {
			t.Fatalf("forecast diverged on day %d", day)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	for day := 1; day <= 120; day++ {
		if a.ConditionFor(day) != b.ConditionFor(day) {
			return
		}
	}
	t.Error("two seeds produced identical 120-day forecasts")
}

func TestConditionsAreValid(t *testing.T) {
	valid := map[Condition]bool{Clear: true, Cloudy: true, Rainy: true, Stormy: true}
	f := New(42)
	for day := 1; day <= 365; day++ {
		if c := f.ConditionFor(day); !valid[c] {
			t.Fatalf("day %d: unknown condition %q", day, c)
		}
	}
}

func TestWetMatchesCondition(t *testing.T) {
	f := New(99)
	for day := 1; day <= 365; day++ {
		c := f.ConditionFor(day)
		want := c == Rainy || c == Stormy
		if f.Wet(day) != want {
			t.Errorf("day %d: Wet()=%v for condition %s", day, f.Wet(day), c)
		}
	}
}
