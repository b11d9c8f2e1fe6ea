package sim

import "github.com/mkweon/grandmall/internal/catalog"

// synergySatisfied checks one synergy definition against a floor's shop
// multiset. Both the type requirement and every category count (when
// present) must hold simultaneously.
func synergySatisfied(syn catalog.Synergy, types []catalog.ShopType) bool {
	if len(syn.RequiredShopTypes) == 0 && len(syn.RequiredCategories) == 0 {
		return false
	}
	for _, req := range syn.RequiredShopTypes {
		found := false
		for _, t := range types {
			if t == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, rc := range syn.RequiredCategories {
		count := 0
		for _, t := range types {
			if catalog.Shops[t].Category == rc.Category {
				count++
			}
		}
		if count < rc.Count {
			return false
		}
	}
	return true
}

// floorShopTypes lists the shop types present on a floor, duplicates kept.
func floorShopTypes(f *Floor) []catalog.ShopType {
	var out []catalog.ShopType
	for _, s := range f.Slots {
		if s.Shop != nil {
			out = append(out, s.Shop.Type)
		}
	}
	return out
}

// detectSynergies returns the IDs of all synergies satisfied by the floor's
// current layout. Pure function of the shop multiset.
func detectSynergies(f *Floor) []string {
	types := floorShopTypes(f)
	var active []string
	for _, syn := range catalog.Synergies {
		if synergySatisfied(syn, types) {
			active = append(active, syn.ID)
		}
	}
	return active
}

// recomputeSynergies replaces every floor's active-synergy set wholesale.
// A newly satisfied synergy gets a one-time log line; losses are silent.
func (st *State) recomputeSynergies() {
	for _, f := range st.Floors {
		active := detectSynergies(f)
		for _, id := range active {
			if !containsString(f.ActiveSynergies, id) {
				if syn, ok := catalog.SynergyByID(id); ok {
					st.addLog("success", "%s", syn.Message)
				}
			}
		}
		f.ActiveSynergies = active
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
