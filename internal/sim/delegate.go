package sim

import (
	"math"
	"sort"

	"github.com/mkweon/grandmall/internal/catalog"
)

// The delegation engine plays the store on the player's behalf. Each action
// category runs on its own interval and performs at most one action per
// evaluation, always leaving a gold reserve untouched. It calls the same
// mutating operations as manual play, with the automated flag set.

// goldReserve is the amount the autopilot refuses to spend into.
func (st *State) goldReserve() float64 {
	return math.Max(catalog.DelegationReserveFixed, float64(st.Gold)*catalog.DelegationReservePercent)
}

// runDelegation dispatches whichever category checks are due this tick.
func (st *State) runDelegation(tick int) {
	reserve := st.goldReserve()
	if tick%catalog.DelegationBuildCheckTicks == 0 {
		st.delegateBuild(reserve)
	}
	if tick%catalog.DelegationInvestCheckTicks == 0 {
		st.delegateInvest(reserve)
	}
	if tick%catalog.DelegationResearchTicks == 0 {
		st.delegateResearch()
	}
	if tick%catalog.DelegationMarketingTicks == 0 && st.ActiveCampaign == nil {
		st.delegateMarketing(reserve)
	}
	if tick%catalog.DelegationStaffCheckTicks == 0 {
		st.delegateStaffing()
	}
	if tick%catalog.DelegationNewFloorTicks == 0 {
		st.delegateNewFloor(reserve)
	}
}

type buildCandidate struct {
	def      catalog.ShopDefinition
	floorIdx int
	slotIdx  int
	score    float64
}

const (
	synergyCompletionFactor   = 3.0
	synergyContributionFactor = 1.0
)

// delegateBuild scores every (empty slot, affordable shop) pair and builds
// the best one. Scoring favors reputation and income per gold, with a large
// bonus for completing or contributing to floor synergies, a throttle on
// cheap filler facilities, and overwhelming overrides for essential
// amenities once customer traffic demands them.
func (st *State) delegateBuild(reserve float64) {
	var candidates []buildCandidate

	for floorIdx, floor := range st.Floors {
		presentTypes := floorShopTypes(floor)
		for slotIdx := range floor.Slots {
			if floor.Slots[slotIdx].Shop != nil {
				continue
			}
			for _, def := range orderedShopDefs() {
				if !st.shopBuildable(def) {
					continue
				}
				if float64(st.Gold) < float64(def.Cost)+reserve {
					continue
				}
				score := st.scoreBuild(def, floor, presentTypes)
				if score > 0.001 {
					candidates = append(candidates, buildCandidate{def, floorIdx, slotIdx, score})
				}
			}
		}
	}
	if len(candidates) == 0 {
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	best := candidates[0]
	st.buildShop(best.def.ID, best.floorIdx, best.slotIdx, true)
	st.recomputeSynergies()
	st.evaluateQuests()
}

func (st *State) scoreBuild(def catalog.ShopDefinition, floor *Floor, presentTypes []catalog.ShopType) float64 {
	cost := float64(def.Cost)
	if cost == 0 {
		cost = 1
	}
	score := (float64(def.BaseReputation)*catalog.DelegationRepWeight +
		float64(def.BaseIncome)*catalog.DelegationIncomeWeight) / cost

	synergyScore := 0.0
	withCandidate := append(append([]catalog.ShopType{}, presentTypes...), def.ID)
	for _, syn := range catalog.Synergies {
		if containsString(floor.ActiveSynergies, syn.ID) {
			continue
		}
		if synergySatisfied(syn, withCandidate) {
			synergyScore += float64(def.BaseReputation+def.BaseIncome) * synergyCompletionFactor
			continue
		}
		if st.contributesToSynergy(syn, def, presentTypes) {
			synergyScore += float64(def.BaseReputation+def.BaseIncome) * synergyContributionFactor
		}
	}
	score += synergyScore / cost

	for _, cheap := range catalog.CheapFacilities {
		if def.ID == cheap && st.countShopsOfType(def.ID) >= catalog.DelegationMaxCheapFacility {
			score *= 0.01
		}
	}

	// Priority escape hatches: missing essential amenities beat everything
	// once enough customers are in the building.
	if def.ID == catalog.Restroom && !st.hasShopOfType(catalog.Restroom) && st.totalCustomers() > 20 {
		score *= 1000
	}
	if def.ID == catalog.InformationDesk && !st.hasShopOfType(catalog.InformationDesk) && st.totalCustomers() > 10 {
		score *= 800
	}
	return score
}

// contributesToSynergy reports whether placing the shop moves an incomplete
// synergy closer: it supplies a required type, or adds to an under-count
// required category.
func (st *State) contributesToSynergy(syn catalog.Synergy, def catalog.ShopDefinition, presentTypes []catalog.ShopType) bool {
	for _, req := range syn.RequiredShopTypes {
		if req == def.ID {
			return true
		}
	}
	for _, rc := range syn.RequiredCategories {
		if rc.Category != def.Category {
			continue
		}
		count := 0
		for _, t := range presentTypes {
			if catalog.Shops[t].Category == rc.Category {
				count++
			}
		}
		if count < rc.Count {
			return true
		}
	}
	return false
}

// delegateInvest levels up the best below-cap shop, excluding facilities
// and special shops.
func (st *State) delegateInvest(reserve float64) {
	bestScore := math.Inf(-1)
	bestFloor, bestSlot := -1, -1
	for floorIdx, floor := range st.Floors {
		for slotIdx := range floor.Slots {
			shop := floor.Slots[slotIdx].Shop
			if shop == nil || shop.Level >= catalog.MaxShopLevel {
				continue
			}
			def := catalog.Shops[shop.Type]
			if def.Category == catalog.CategoryFacility || def.Category == catalog.CategorySpecial {
				continue
			}
			cost := investCost(shop.Level)
			if float64(st.Gold) < float64(cost)+reserve {
				continue
			}
			repGain := investRepGain(def, shop.Level)
			score := float64(repGain)*catalog.DelegationRepWeight +
				float64(def.BaseIncome)*catalog.DelegationIncomeWeight/float64(cost)
			if score > bestScore {
				bestScore = score
				bestFloor, bestSlot = floorIdx, slotIdx
			}
		}
	}
	if bestFloor >= 0 {
		st.investShop(bestFloor, bestSlot, true)
		st.evaluateQuests()
	}
}

// delegateResearch buys the best affordable research, preferring items that
// unlock shops, then staff capacity, with RP cost as a penalty.
func (st *State) delegateResearch() {
	bestScore := math.Inf(-1)
	bestID := ""
	for _, item := range catalog.ResearchItems {
		if st.researchCompleted(item.ID) || st.ResearchPoints < item.CostRP {
			continue
		}
		prereqsMet := true
		for _, pre := range item.Prerequisites {
			if !st.researchCompleted(pre) {
				prereqsMet = false
				break
			}
		}
		if !prereqsMet {
			continue
		}
		score := float64(-item.CostRP)
		for _, eff := range item.Effects {
			switch eff.(type) {
			case catalog.UnlockShopEffect:
				score += 100
			case catalog.RaiseStaffCapEffect:
				score += 50
			}
		}
		if score > bestScore {
			bestScore = score
			bestID = item.ID
		}
	}
	if bestID != "" {
		st.unlockResearch(bestID, true)
	}
}

// delegateMarketing starts the affordable, reputation-eligible campaign
// with the highest one-time reputation boost.
func (st *State) delegateMarketing(reserve float64) {
	best := -1
	bestBoost := -1
	for i, c := range catalog.MarketingCampaigns {
		if float64(st.Gold) < float64(c.Cost)+reserve || st.Reputation < c.MinReputation {
			continue
		}
		if c.OneShot && st.UsedCampaigns[c.ID] {
			continue
		}
		if c.Effects.ReputationOnStart > bestBoost {
			bestBoost = c.Effects.ReputationOnStart
			best = i
		}
	}
	if best >= 0 {
		st.startCampaign(catalog.MarketingCampaigns[best].ID, true)
	}
}

// delegateStaffing hires the best applicant if there is room, then assigns
// any idle staff: managers to the first unmanaged floor, cleaners to the
// dirtiest uncovered floor that actually needs one.
func (st *State) delegateStaffing() {
	if len(st.Staff) < st.MaxStaffSlots && len(st.Applicants) > 0 {
		bestScore := math.Inf(-1)
		bestID := ""
		for _, a := range st.Applicants {
			role := catalog.StaffRoles[a.Role]
			if role.MinReputation > st.Reputation {
				continue
			}
			score := float64(a.Skill) / float64(a.SalaryPerDay)
			switch a.Role {
			case catalog.RoleManager:
				score += 100
			case catalog.RoleCleaner:
				score += 50
			}
			if score > bestScore {
				bestScore = score
				bestID = a.ID
			}
		}
		if bestID != "" {
			st.hireStaff(bestID, true)
			st.evaluateQuests()
		}
	}

	for _, member := range st.Staff {
		if member.AssignedFloor != "" {
			continue
		}
		switch member.Role {
		case catalog.RoleManager:
			for _, f := range st.Floors {
				if st.managerOn(f.ID) == nil {
					st.assignStaff(member.ID, f.ID, true)
					break
				}
			}
		case catalog.RoleCleaner:
			var dirtiest *Floor
			for _, f := range st.Floors {
				if st.floorHasCleaner(f.ID) {
					continue
				}
				if dirtiest == nil || f.Cleanliness < dirtiest.Cleanliness {
					dirtiest = f
				}
			}
			if dirtiest != nil && dirtiest.Cleanliness < catalog.DelegationCleanlinessTarget+20 {
				st.assignStaff(member.ID, dirtiest.ID, true)
			}
		}
	}
}

// delegateNewFloor expands upward once the store is mostly full, under a
// stricter double-reserve bar since floors are the largest spend.
func (st *State) delegateNewFloor(reserve float64) {
	totalSlots := len(st.Floors) * catalog.SlotsPerFloor
	if totalSlots == 0 {
		return
	}
	filled := st.totalShops()
	if float64(filled)/float64(totalSlots) < catalog.DelegationFloorFillRatio {
		return
	}
	cost := newFloorCost(len(st.Floors))
	if float64(st.Gold) >= float64(cost)+reserve*2 {
		st.addFloorLocked(true)
		st.evaluateQuests()
	}
}

// orderedShopDefs returns the catalog in stable unlock-gate order so
// delegation tie-breaks deterministically.
func orderedShopDefs() []catalog.ShopDefinition {
	defs := make([]catalog.ShopDefinition, 0, len(catalog.Shops))
	for _, d := range catalog.Shops {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Cost != defs[j].Cost {
			return defs[i].Cost < defs[j].Cost
		}
		return defs[i].ID < defs[j].ID
	})
	return defs
}
