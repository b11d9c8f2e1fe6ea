package sim

import "github.com/mkweon/grandmall/internal/catalog"

// eventTriggers maps event IDs to their start conditions. Definitions stay
// pure data in the catalog; the conditions need live state, so they live
// here.
func (st *State) eventEligible(id string) bool {
	switch id {
	case "WEEKEND_SALE":
		return st.Day%7 == 0 || st.Day%7 == 1
	case "CELEBRITY_VISIT":
		return st.Reputation > 500 && st.rng.Float64() < 0.05
	case "RAINY_DAY":
		return st.StormyDay != nil && st.StormyDay(st.Day)
	default:
		return false
	}
}

// tickCountdowns advances the remaining time of the active event and
// campaign, clearing them when they expire.
func (st *State) tickCountdowns() {
	if st.ActiveEvent != nil {
		if st.ActiveEvent.Remaining > 1 {
			st.ActiveEvent.Remaining--
		} else {
			if ev, ok := catalog.EventByID(st.ActiveEvent.ID); ok {
				st.addLog("info", "The %s event has ended.", ev.Name)
			}
			st.ActiveEvent = nil
		}
	}
	if st.ActiveCampaign != nil {
		if st.ActiveCampaign.Remaining > 1 {
			st.ActiveCampaign.Remaining--
		} else {
			if c, ok := catalog.CampaignByID(st.ActiveCampaign.ID); ok {
				st.addLog("info", "Marketing campaign %q has ended.", c.Name)
			}
			st.ActiveCampaign = nil
		}
	}
}

// maybeTriggerEvent starts at most one event when none is active. Each
// eligible definition must additionally pass a start-chance roll.
func (st *State) maybeTriggerEvent() {
	if st.ActiveEvent != nil {
		return
	}
	for _, ev := range catalog.GameEvents {
		if !st.eventEligible(ev.ID) {
			continue
		}
		if st.rng.Float64() < catalog.EventStartChance {
			st.ActiveEvent = &ActiveEvent{ID: ev.ID, Remaining: ev.DurationTicks}
			st.addLog("info", "Event started: %s!", ev.Name)
			return
		}
	}
}

// vocEligible maps VOC message IDs to their trigger conditions. A message
// with no condition listed here is always eligible.
func (st *State) vocEligible(id string) bool {
	switch id {
	case "VOC_NEED_RESTROOM":
		return !st.hasShopOfType(catalog.Restroom) && st.totalCustomers() > 20
	case "VOC_NEED_MORE_FOOD_VARIETY":
		food := 0
		for _, f := range st.Floors {
			for _, s := range f.Slots {
				if s.Shop != nil && catalog.Shops[s.Shop.Type].Category == catalog.CategoryFood {
					food++
				}
			}
		}
		return food < 3 && st.Reputation > 100 && st.totalCustomers() > 50
	case "VOC_LOVE_THE_FOOD_COURT":
		for _, f := range st.Floors {
			for _, id := range f.ActiveSynergies {
				if id == "FOOD_COURT_BASIC" || id == "FULL_FOOD_COURT" {
					return true
				}
			}
		}
		return false
	case "VOC_TOO_CROWDED":
		return st.totalCustomers() > 500
	case "VOC_EXPENSIVE":
		for _, f := range st.Floors {
			for _, s := range f.Slots {
				if s.Shop != nil && s.Shop.Level > 5 {
					return st.Reputation > 300
				}
			}
		}
		return false
	case "VOC_NEED_SEATING":
		return !st.hasShopOfType(catalog.PublicSeatingArea) && !st.hasShopOfType(catalog.Cafe) &&
			st.totalCustomers() > 100
	case "VOC_LOVE_THE_ATMOSPHERE":
		return st.Reputation > 400 && st.rng.Float64() < 0.1
	case "VOC_LOW_CLEANLINESS":
		dirty := false
		for _, f := range st.Floors {
			if f.Cleanliness < 30 {
				dirty = true
				break
			}
		}
		if !dirty || st.totalCustomers() <= 30 {
			return false
		}
		for _, s := range st.Staff {
			if s.Role == catalog.RoleCleaner && s.AssignedFloor != "" {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// vocDedupeTicks suppresses an identical message re-appearing immediately
// after itself.
const vocDedupeTicks = 10

// maybeRotateVOC runs several times per day: with a small chance, one
// randomly chosen eligible message is prepended to the voice list, capped
// at the current VOC limit.
func (st *State) maybeRotateVOC() {
	if st.TickOfDay%catalog.VOCCheckTicks != 0 {
		return
	}
	var candidates []catalog.VOCMessage
	for _, v := range catalog.VOCMessages {
		if st.vocEligible(v.ID) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 || st.rng.Float64() >= catalog.VOCStartChance {
		return
	}
	pick := candidates[st.rng.Intn(len(candidates))]

	if len(st.VOC) > 0 {
		newest := st.VOC[0]
		age := (st.Day-newest.Day)*catalog.TicksPerDay + st.TickOfDay - newest.Tick
		if newest.MessageID == pick.ID && age < vocDedupeTicks {
			return
		}
	}

	entry := VOCEntry{
		MessageID: pick.ID,
		Text:      pick.Message,
		Sentiment: pick.Sentiment,
		Day:       st.Day,
		Tick:      st.TickOfDay,
	}
	st.VOC = append([]VOCEntry{entry}, st.VOC...)
	if len(st.VOC) > st.MaxVOCs {
		st.VOC = st.VOC[:st.MaxVOCs]
	}
}
