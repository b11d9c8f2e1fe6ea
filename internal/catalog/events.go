package catalog

// GameEvent is a timed store-wide modifier. Trigger conditions are evaluated
// by the simulation (they need live state); definitions here carry only the
// static payload.
type GameEvent struct {
	ID              string
	Name            string
	Description     string
	DurationTicks   int
	IncomeMult      float64 // 0 means no income effect
	ReputationMult  float64 // 0 means no reputation effect
	AttractionBoost int
}

var GameEvents = []GameEvent{
	{
		ID: "WEEKEND_SALE", Name: "Weekend Sale!",
		Description:     "It's the weekend! All shops earn more and draw bigger crowds.",
		DurationTicks:   2 * TicksPerDay,
		IncomeMult:      1.5,
		ReputationMult:  1.2,
		AttractionBoost: 10,
	},
	{
		ID: "CELEBRITY_VISIT", Name: "Celebrity Visit!",
		Description:     "A celebrity dropped by! Reputation and foot traffic surge.",
		DurationTicks:   1 * TicksPerDay,
		ReputationMult:  2.0,
		AttractionBoost: 25,
	},
	{
		ID: "RAINY_DAY", Name: "Rainy Day",
		Description:     "Heavy rain keeps some shoppers at home.",
		DurationTicks:   1 * TicksPerDay,
		IncomeMult:      0.9,
		AttractionBoost: -5,
	},
}

// EventByID looks up an event definition.
func EventByID(id string) (GameEvent, bool) {
	for _, e := range GameEvents {
		if e.ID == id {
			return e, true
		}
	}
	return GameEvent{}, false
}
