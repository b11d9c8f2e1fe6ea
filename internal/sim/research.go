package sim

import "github.com/mkweon/grandmall/internal/catalog"

// UnlockResearch validates and completes a research item, then applies its
// effects. Rejections leave the state untouched: unknown id, already
// completed, insufficient research points, or an unmet prerequisite.
func (st *State) UnlockResearch(id string, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.unlockResearch(id, automated)
}

func (st *State) unlockResearch(id string, automated bool) bool {
	item, ok := catalog.ResearchByID(id)
	if !ok {
		if !automated {
			st.addLog("error", "Unknown research.")
		}
		return false
	}
	if st.researchCompleted(id) {
		if !automated {
			st.addLog("info", "Research %q is already complete.", item.Name)
		}
		return false
	}
	if st.ResearchPoints < item.CostRP {
		if !automated {
			st.addLog("error", "Not enough RP for %q. (needs %d RP)", item.Name, item.CostRP)
		}
		return false
	}
	for _, pre := range item.Prerequisites {
		if !st.researchCompleted(pre) {
			if !automated {
				preName := pre
				if p, ok := catalog.ResearchByID(pre); ok {
					preName = p.Name
				}
				st.addLog("error", "Research %q requires %q first.", item.Name, preName)
			}
			return false
		}
	}

	st.ResearchPoints -= item.CostRP
	st.CompletedResearch = append(st.CompletedResearch, id)
	if automated {
		st.addAutoLog("Research complete: %s %s!", item.Name, item.Emoji)
	} else {
		st.addLog("success", "Research complete: %s %s! Effects applied.", item.Name, item.Emoji)
	}

	for _, eff := range item.Effects {
		st.applyResearchEffect(eff)
	}
	st.rebuildIncomeEffects()
	return true
}

func (st *State) applyResearchEffect(eff catalog.ResearchEffect) {
	switch e := eff.(type) {
	case catalog.UnlockShopEffect:
		if !st.UnlockedShops[e.Shop] {
			st.UnlockedShops[e.Shop] = true
			if def, ok := catalog.ShopByID(e.Shop); ok {
				st.addLog("info", "Research unlocked a new shop: %s %s!", def.Name, def.Emoji)
			}
		}
	case catalog.RaiseVOCCapEffect:
		st.MaxVOCs += e.By
		st.addLog("info", "Maximum customer voices raised by %d. (now %d)", e.By, st.MaxVOCs)
	case catalog.RaiseStaffCapEffect:
		st.MaxStaffSlots += e.By
		st.addLog("info", "Maximum staff slots raised by %d. (now %d)", e.By, st.MaxStaffSlots)
	case catalog.IncomeMultiplierEffect:
		// Standing modifier; consulted by the income chain every tick.
	}
}
