package sim

import (
	"math"

	"github.com/mkweon/grandmall/internal/catalog"
)

// playerAttraction computes the store's pull on the customer market:
// reputation, shop count, average shop level, average cleanliness, and flat
// boosts from any active event or campaign, jittered by a small symmetric
// random factor and floored at 1.
func (st *State) playerAttraction() float64 {
	score := float64(st.Reputation) * catalog.PlayerRepAttractionWeight

	total := st.totalShops()
	score += float64(total) * catalog.PlayerShopCountAttractionWeight

	if total > 0 {
		levels := 0
		for _, f := range st.Floors {
			for _, s := range f.Slots {
				if s.Shop != nil {
					levels += s.Shop.Level
				}
			}
		}
		score += float64(levels) / float64(total) * catalog.PlayerAvgLevelAttractionWeight
	}

	if len(st.Floors) > 0 {
		clean := 0.0
		for _, f := range st.Floors {
			clean += f.Cleanliness
		}
		avg := clean / float64(len(st.Floors))
		score += (avg / 100) * catalog.PlayerCleanlinessAttractionWeight * 100
	}

	if st.ActiveEvent != nil {
		if ev, ok := catalog.EventByID(st.ActiveEvent.ID); ok && ev.AttractionBoost != 0 {
			score += float64(ev.AttractionBoost) * 5
		}
	}
	if st.ActiveCampaign != nil {
		if c, ok := catalog.CampaignByID(st.ActiveCampaign.ID); ok && c.Effects.AttractionBoost != 0 {
			score += float64(c.Effects.AttractionBoost) * 5
		}
	}

	jitter := st.rng.Float64()*catalog.AttractionJitter*2 - catalog.AttractionJitter
	score *= 1 + jitter
	if score < 1 {
		score = 1
	}
	return score
}

// customerCap is the soft per-type population ceiling, a function of how
// large and prestigious the store has become.
func (st *State) customerCap() int {
	return 10 + st.Reputation/20 + len(st.Floors)*3 + st.totalShops()/2
}

// updateCustomers runs the per-tick market model: market share against the
// rival, new admissions distributed uniformly over unlocked segments, hard
// reset of locked segments, stochastic attrition, and per-type caps.
func (st *State) updateCustomers() {
	player := st.playerAttraction()
	ai := st.Rival.Attraction

	share := 100.0
	if total := player + ai; total > 0 {
		share = player / total * 100
	}
	st.MarketShare = share

	potential := catalog.BasePotentialCustomersPerTick + int(math.Floor(float64(st.Day)*catalog.CustomerGrowthPerDayFactor))
	admitted := int(math.Floor(float64(potential) * share / 100))

	available := catalog.UnlockedCustomerTypes(st.Reputation)
	availSet := map[catalog.CustomerType]bool{}
	for _, t := range available {
		availSet[t] = true
	}

	// Segments the store no longer qualifies for evaporate immediately.
	for t := range st.Customers {
		if !availSet[t] {
			st.Customers[t] = 0
		}
	}

	if admitted > 0 && len(available) > 0 {
		for i := 0; i < admitted; i++ {
			t := available[st.rng.Intn(len(available))]
			st.Customers[t]++
		}
	}

	cap := st.customerCap()
	for _, u := range catalog.CustomerUnlocks {
		t := u.Type
		count := st.Customers[t]
		if count > 0 && st.rng.Float64() < 0.01 {
			count--
		}
		if count > cap {
			count = cap
		}
		if count < 0 {
			count = 0
		}
		st.Customers[t] = count
	}
}
