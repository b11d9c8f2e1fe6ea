package sim

import (
	"math"

	"github.com/mkweon/grandmall/internal/catalog"
)

// shopIncome computes one shop's effective per-tick income. The modifier
// chain is a compounding multiplicative sequence and its order matters:
// manager boost, floor synergies, research multipliers, active event,
// active campaign, then round to the nearest integer.
//
// Both the tick application and the read-only projections call this one
// function so the displayed and applied numbers can never drift.
func (st *State) shopIncome(f *Floor, shop *PlacedShop) int {
	def, ok := catalog.ShopByID(shop.Type)
	if !ok {
		return 0
	}
	income := float64(def.BaseIncome * shop.Level)

	if mgr := st.managerOn(f.ID); mgr != nil {
		role := catalog.StaffRoles[catalog.RoleManager]
		income *= 1 + role.FloorIncomeBoost*float64(mgr.Skill)
	}

	for _, id := range f.ActiveSynergies {
		syn, ok := catalog.SynergyByID(id)
		if !ok || syn.IncomeBonus == 0 {
			continue
		}
		income *= 1 + syn.IncomeBonus
	}

	for _, eff := range st.incomeEffects {
		if eff.Category == "" || eff.Category == def.Category {
			income *= 1 + eff.Bonus
		}
	}

	if st.ActiveEvent != nil {
		if ev, ok := catalog.EventByID(st.ActiveEvent.ID); ok && ev.IncomeMult != 0 {
			income *= ev.IncomeMult
		}
	}
	if st.ActiveCampaign != nil {
		if c, ok := catalog.CampaignByID(st.ActiveCampaign.ID); ok && c.Effects.IncomeMultiplier != 0 {
			income *= c.Effects.IncomeMultiplier
		}
	}

	return int(math.Round(income))
}

// applyIncome runs the income phase of one tick: every shop's income is
// computed, cached for display, summed, and credited to gold in a single
// batched addition. Shops that produced income this tick also gain 1-3
// visits.
func (st *State) applyIncome() {
	total := 0
	for _, f := range st.Floors {
		for i := range f.Slots {
			shop := f.Slots[i].Shop
			if shop == nil {
				continue
			}
			income := st.shopIncome(f, shop)
			shop.CurrentIncome = income
			total += income
			if income > 0 {
				shop.VisitCount += st.rng.Intn(3) + 1
			}
		}
	}
	st.Gold += total
}

// investCost is the gold price of raising a shop from its current level.
func investCost(level int) int {
	return int(float64(catalog.InvestCostBase) * math.Pow(catalog.InvestCostMultiplier, float64(level-1)))
}

// newFloorCost is the gold price of the next floor given the current count.
func newFloorCost(floorCount int) int {
	return int(float64(catalog.NewFloorCostBase) * math.Pow(catalog.NewFloorCostMultiplier, float64(floorCount-1)))
}

// investRepGain is the reputation granted by investing in a shop at the
// given pre-investment level.
func investRepGain(def catalog.ShopDefinition, level int) int {
	return int(math.Floor(float64(def.BaseReputation) * 0.5 * float64(level)))
}

// demolishRefund is the gold returned when a shop is torn down.
func demolishRefund(def catalog.ShopDefinition) int {
	return int(math.Floor(float64(def.Cost) * catalog.DemolishRefundRate))
}
