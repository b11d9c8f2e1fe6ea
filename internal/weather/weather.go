// Package weather generates the mall's ambient forecast. Conditions are
// procedural: smooth simplex noise over the day index, so weather varies
// day to day but is fully reproducible for a given seed.
package weather

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Condition classifies a day's weather.
type Condition string

const (
	Clear  Condition = "CLEAR"
	Cloudy Condition = "CLOUDY"
	Rainy  Condition = "RAINY"
	Stormy Condition = "STORMY"
)

// Noise thresholds, applied to simplex output in [-1, 1]. Roughly 55%
// clear, 25% cloudy, 15% rainy, 5% stormy over a long run.
const (
	cloudyThreshold = 0.1
	rainyThreshold  = 0.6
	stormyThreshold = 0.9

	// Frequency along the day axis. Low enough that weather fronts span
	// a few days rather than flipping every morning.
	dayScale = 0.35
)

// Forecaster produces per-day conditions from a seeded noise field.
type Forecaster struct {
	noise opensimplex.Noise
}

// New creates a forecaster. The same seed always yields the same forecast.
func New(seed int64) *Forecaster {
	return &Forecaster{noise: opensimplex.NewNormalized(seed)}
}

// ConditionFor returns the condition for a simulation day.
func (f *Forecaster) ConditionFor(day int) Condition {
	// NewNormalized output is in [0, 1]; re-center to [-1, 1].
	v := f.noise.Eval2(float64(day)*dayScale, 0)*2 - 1
	switch {
	case v >= stormyThreshold:
		return Stormy
	case v >= rainyThreshold:
		return Rainy
	case v >= cloudyThreshold:
		return Cloudy
	default:
		return Clear
	}
}

// Wet reports whether the day brings rain, storm included. The simulation
// uses this to gate its rainy-day event.
func (f *Forecaster) Wet(day int) bool {
	c := f.ConditionFor(day)
	return c == Rainy || c == Stormy
}
