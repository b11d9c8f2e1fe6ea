package sim

import "github.com/mkweon/grandmall/internal/catalog"

// questProgress computes the current value for a quest definition. Progress
// functions need live state, so they live here rather than in the catalog.
func (st *State) questProgress(id string) int {
	switch id {
	case "BUILD_FIRST_SHOPS":
		n := 0
		if st.hasShopOfType(catalog.Bakery) {
			n++
		}
		if st.hasShopOfType(catalog.Bookstore) {
			n++
		}
		return n
	case "UNLOCK_CAFE", "REACH_100_REPUTATION":
		return st.Reputation
	case "FIRST_SYNERGY":
		for _, f := range st.Floors {
			if len(f.ActiveSynergies) > 0 {
				return 1
			}
		}
		return 0
	case "BUILD_NEW_FLOOR":
		return len(st.Floors)
	case "BUILD_SUPERMARKET":
		if st.hasShopOfType(catalog.Supermarket) {
			return 1
		}
		return 0
	case "ENTERTAINMENT_ZONE":
		n := 0
		for _, t := range catalog.EntertainmentQuestShops {
			if st.hasShopOfType(t) {
				n++
			}
		}
		return n
	case "HIRE_FIRST_STAFF":
		return len(st.Staff)
	default:
		return 0
	}
}

// evaluateQuests recomputes every active quest's progress and grants
// rewards the moment a target is reached. Completion is one-way.
func (st *State) evaluateQuests() {
	for _, q := range st.Quests {
		def, ok := catalog.QuestByID(q.ID)
		if !ok {
			continue
		}
		q.Current = st.questProgress(q.ID)
		if q.Completed || q.Current < def.TargetValue {
			continue
		}
		q.Completed = true
		st.addLog("success", "Quest complete: %s!", def.Title)
		st.grantQuestReward(def.Reward)
	}
}

func (st *State) grantQuestReward(r catalog.QuestReward) {
	if r.Gold > 0 {
		st.Gold += r.Gold
	}
	if r.Reputation > 0 {
		st.Reputation += r.Reputation
	}
	if r.ResearchPoints > 0 {
		st.ResearchPoints += r.ResearchPoints
	}
	for _, t := range r.UnlockShops {
		if st.UnlockedShops[t] {
			continue
		}
		st.UnlockedShops[t] = true
		if def, ok := catalog.ShopByID(t); ok {
			st.addLog("info", "New shop unlocked: %s %s!", def.Name, def.Emoji)
		}
	}
}
