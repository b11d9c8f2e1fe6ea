package sim

import (
	"fmt"
	"math"

	"github.com/mkweon/grandmall/internal/catalog"
)

// growRival advances the AI competitor when its growth interval has elapsed.
// The tick counter wraps to zero at every day boundary, so a wrapped counter
// alone would stall the elapsed check; the explicit dayRolled flag set by
// the orchestrator covers that case.
//
// The rival advances at most one level per evaluation even when a
// reputation jump spans two thresholds. That throttle is deliberate.
func (st *State) growRival(tick int) {
	r := &st.Rival
	elapsed := tick-r.LastGrowthTick >= catalog.AIGrowthIntervalTicks || r.dayRolled
	if !elapsed {
		return
	}

	rankIdx := catalog.RankIndex(st.Reputation)
	gain := float64(catalog.AIRepGainBase) + math.Floor(float64(rankIdx)*catalog.AIRepGainPerPlayerRank)
	r.Reputation = math.Max(0, r.Reputation+gain)

	if r.Level < len(catalog.AILevelThresholds) {
		next := float64(catalog.AILevelThresholds[r.Level])
		if r.Reputation >= next {
			r.Level++
			r.Activity = fmt.Sprintf("%s is expanding! (reached level %d)", r.Name, r.Level)
			st.addLog("info", "%s", r.Activity)
		} else if st.rng.Float64() < 0.2 {
			r.Activity = r.Name + "'s reputation is on the rise."
		}
	} else if st.rng.Float64() < 0.2 {
		r.Activity = r.Name + "'s reputation is on the rise."
	}

	r.Attraction = r.Reputation*catalog.AIRepAttractionWeight + float64(r.Level-1)*catalog.AILevelAttractionBonus
	r.LastGrowthTick = tick
	r.dayRolled = false
}

// markRivalDayRolled records a day-boundary tick wrap for the next growth
// evaluation.
func (st *State) markRivalDayRolled() {
	st.Rival.dayRolled = true
}
