package catalog

import "testing"

func TestShopDefinitionsAreSelfConsistent(t *testing.T) {
	for id, def := range Shops {
		if def.ID != id {
			t.Errorf("shop %s keyed under %s", def.ID, id)
		}
		if def.Name == "" || def.Description == "" {
			t.Errorf("shop %s missing name or description", id)
		}
		if def.Cost <= 0 {
			t.Errorf("shop %s has cost %d", id, def.Cost)
		}
		if def.BaseIncome < 0 || def.BaseReputation < 0 || def.MinReputation < 0 {
			t.Errorf("shop %s has negative base values", id)
		}
	}
}

func TestSynergyRequirementsExist(t *testing.T) {
	seen := map[string]bool{}
	for _, syn := range Synergies {
		if seen[syn.ID] {
			t.Errorf("duplicate synergy id %s", syn.ID)
		}
		seen[syn.ID] = true
		if len(syn.RequiredShopTypes) == 0 && len(syn.RequiredCategories) == 0 {
			t.Errorf("synergy %s has no requirements", syn.ID)
		}
		for _, st := range syn.RequiredShopTypes {
			if _, ok := Shops[st]; !ok {
				t.Errorf("synergy %s requires unknown shop %s", syn.ID, st)
			}
		}
		for _, rc := range syn.RequiredCategories {
			if rc.Count < 2 {
				t.Errorf("synergy %s category count %d is trivially satisfied", syn.ID, rc.Count)
			}
		}
		if syn.Message == "" {
			t.Errorf("synergy %s has no discovery message", syn.ID)
		}
	}
}

func TestResearchTreeIsWellFormed(t *testing.T) {
	ids := map[string]bool{}
	for _, item := range ResearchItems {
		ids[item.ID] = true
	}
	for _, item := range ResearchItems {
		if item.CostRP <= 0 {
			t.Errorf("research %s costs %d RP", item.ID, item.CostRP)
		}
		for _, pre := range item.Prerequisites {
			if !ids[pre] {
				t.Errorf("research %s has unknown prerequisite %s", item.ID, pre)
			}
			if pre == item.ID {
				t.Errorf("research %s requires itself", item.ID)
			}
		}
		for _, eff := range item.Effects {
			if u, ok := eff.(UnlockShopEffect); ok {
				def, exists := Shops[u.Shop]
				if !exists {
					t.Errorf("research %s unlocks unknown shop %s", item.ID, u.Shop)
				} else if !def.ResearchLocked {
					t.Errorf("research %s unlocks %s, which is not research locked", item.ID, u.Shop)
				}
			}
		}
	}
}

func TestEveryResearchLockedShopHasAnUnlock(t *testing.T) {
	unlockable := map[ShopType]bool{}
	for _, item := range ResearchItems {
		for _, eff := range item.Effects {
			if u, ok := eff.(UnlockShopEffect); ok {
				unlockable[u.Shop] = true
			}
		}
	}
	for id, def := range Shops {
		if def.ResearchLocked && !unlockable[id] {
			t.Errorf("shop %s is research locked but no research unlocks it", id)
		}
	}
}

func TestQuestRewardsReferenceKnownShops(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Quests {
		if seen[q.ID] {
			t.Errorf("duplicate quest id %s", q.ID)
		}
		seen[q.ID] = true
		if q.TargetValue <= 0 {
			t.Errorf("quest %s target %d", q.ID, q.TargetValue)
		}
		for _, st := range q.Reward.UnlockShops {
			if _, ok := Shops[st]; !ok {
				t.Errorf("quest %s unlocks unknown shop %s", q.ID, st)
			}
		}
	}
}

func TestStoreRanksAscend(t *testing.T) {
	if StoreRanks[0].MinReputation != 0 {
		t.Errorf("first rank starts at %d, want 0", StoreRanks[0].MinReputation)
	}
	for i := 1; i < len(StoreRanks); i++ {
		if StoreRanks[i].MinReputation <= StoreRanks[i-1].MinReputation {
			t.Errorf("rank %q does not ascend past %q", StoreRanks[i].Name, StoreRanks[i-1].Name)
		}
	}

	cases := []struct {
		rep  int
		want string
	}{
		{0, "Budding Business"},
		{99, "Budding Business"},
		{100, "Neighborhood Favorite"},
		{5000, "Legend of Retail ⭐"},
	}
	for _, tc := range cases {
		if got := RankAt(tc.rep).Name; got != tc.want {
			t.Errorf("RankAt(%d) = %q, want %q", tc.rep, got, tc.want)
		}
	}
}

func TestCustomerUnlocksAscend(t *testing.T) {
	seen := map[CustomerType]bool{}
	for i, cu := range CustomerUnlocks {
		if seen[cu.Type] {
			t.Errorf("customer type %s unlocked twice", cu.Type)
		}
		seen[cu.Type] = true
		if i > 0 && cu.Reputation <= CustomerUnlocks[i-1].Reputation {
			t.Errorf("unlock %s at rep %d does not ascend", cu.Type, cu.Reputation)
		}
	}
	if CustomerUnlocks[0].Reputation != 0 {
		t.Error("no customer type is available at the start")
	}

	if got := UnlockedCustomerTypes(0); len(got) != 1 || got[0] != Shopper {
		t.Errorf("UnlockedCustomerTypes(0) = %v", got)
	}
	if got := UnlockedCustomerTypes(100); len(got) != 3 {
		t.Errorf("UnlockedCustomerTypes(100) = %v, want 3 segments", got)
	}
}

func TestCheapFacilitiesExist(t *testing.T) {
	for _, st := range CheapFacilities {
		def, ok := Shops[st]
		if !ok {
			t.Errorf("unknown cheap facility %s", st)
			continue
		}
		if def.Cost > 10000 {
			t.Errorf("%s costs %d, too expensive for the cheap list", st, def.Cost)
		}
	}
}

func TestCampaignsAndEventsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range MarketingCampaigns {
		if seen[c.ID] {
			t.Errorf("duplicate campaign id %s", c.ID)
		}
		seen[c.ID] = true
		if c.Cost <= 0 || c.DurationTicks <= 0 {
			t.Errorf("campaign %s has cost %d duration %d", c.ID, c.Cost, c.DurationTicks)
		}
	}
	for _, e := range GameEvents {
		if e.DurationTicks <= 0 {
			t.Errorf("event %s has duration %d", e.ID, e.DurationTicks)
		}
	}
}

func TestLookupsRoundTrip(t *testing.T) {
	if _, ok := ShopByID(Bakery); !ok {
		t.Error("ShopByID(Bakery) missing")
	}
	if _, ok := ShopByID(ShopType("MATTRESS_STORE")); ok {
		t.Error("ShopByID accepted an unknown type")
	}
	for _, syn := range Synergies {
		if got, ok := SynergyByID(syn.ID); !ok || got.ID != syn.ID {
			t.Errorf("SynergyByID(%s) failed", syn.ID)
		}
	}
	for _, item := range ResearchItems {
		if _, ok := ResearchByID(item.ID); !ok {
			t.Errorf("ResearchByID(%s) failed", item.ID)
		}
	}
	for _, q := range Quests {
		if _, ok := QuestByID(q.ID); !ok {
			t.Errorf("QuestByID(%s) failed", q.ID)
		}
	}
	for _, v := range VOCMessages {
		if _, ok := VOCByID(v.ID); !ok {
			t.Errorf("VOCByID(%s) failed", v.ID)
		}
	}
	if _, ok := StaffRoleByID(RoleManager); !ok {
		t.Error("StaffRoleByID(RoleManager) missing")
	}
	if _, ok := EventByID("WEEKEND_SALE"); !ok {
		t.Error("EventByID(WEEKEND_SALE) missing")
	}
	if _, ok := CampaignByID("FLYER_DISTRIBUTION"); !ok {
		t.Error("CampaignByID(FLYER_DISTRIBUTION) missing")
	}
}
