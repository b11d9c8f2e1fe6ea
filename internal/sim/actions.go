package sim

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/mkweon/grandmall/internal/catalog"
)

// BuildShop places a new level-1 shop in an empty slot. Rejections: unknown
// type, slot occupied or out of range, shop not yet buildable, or gold
// below cost.
func (st *State) BuildShop(shopType catalog.ShopType, floorIdx, slotIdx int, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	ok := st.buildShop(shopType, floorIdx, slotIdx, automated)
	if ok {
		st.recomputeSynergies()
		st.evaluateQuests()
	}
	return ok
}

func (st *State) buildShop(shopType catalog.ShopType, floorIdx, slotIdx int, automated bool) bool {
	def, ok := catalog.ShopByID(shopType)
	if !ok {
		if !automated {
			st.addLog("error", "Unknown shop type.")
		}
		return false
	}
	if floorIdx < 0 || floorIdx >= len(st.Floors) || slotIdx < 0 || slotIdx >= catalog.SlotsPerFloor {
		if !automated {
			st.addLog("error", "That slot does not exist.")
		}
		return false
	}
	floor := st.Floors[floorIdx]
	if floor.Slots[slotIdx].Shop != nil {
		if !automated {
			st.addLog("error", "That slot is already occupied.")
		}
		return false
	}
	if !st.shopBuildable(def) {
		if !automated {
			st.addLog("error", "%s is not available yet.", def.Name)
		}
		return false
	}
	if st.Gold < def.Cost {
		if !automated {
			st.addLog("error", "Not enough gold!")
		}
		return false
	}

	st.Gold -= def.Cost
	st.Reputation += def.BaseReputation
	floor.Slots[slotIdx].Shop = &PlacedShop{
		ID:            uuid.NewString(),
		Type:          shopType,
		Level:         1,
		CurrentIncome: def.BaseIncome,
	}
	if automated {
		st.addAutoLog("Built %s %s!", def.Name, def.Emoji)
	} else {
		st.addLog("success", "Built %s %s!", def.Name, def.Emoji)
	}
	return true
}

// InvestShop raises a shop one level for an exponentially growing cost and
// grants reputation scaled by the shop's pre-investment level.
func (st *State) InvestShop(floorIdx, slotIdx int, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	ok := st.investShop(floorIdx, slotIdx, automated)
	if ok {
		st.evaluateQuests()
	}
	return ok
}

func (st *State) investShop(floorIdx, slotIdx int, automated bool) bool {
	shop := st.shopAt(floorIdx, slotIdx)
	if shop == nil {
		if !automated {
			st.addLog("error", "No shop in that slot.")
		}
		return false
	}
	def := catalog.Shops[shop.Type]
	cost := investCost(shop.Level)
	if st.Gold < cost {
		if !automated {
			st.addLog("error", "Not enough gold to invest!")
		}
		return false
	}

	st.Gold -= cost
	st.Reputation += investRepGain(def, shop.Level)
	shop.Level++
	if automated {
		st.addAutoLog("Invested in %s, now level %d!", def.Name, shop.Level)
	} else {
		st.addLog("success", "Invested in %s, now level %d!", def.Name, shop.Level)
	}
	return true
}

// DemolishShop removes a shop and refunds a quarter of its build cost.
// Reputation is unaffected.
func (st *State) DemolishShop(floorIdx, slotIdx int) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	shop := st.shopAt(floorIdx, slotIdx)
	if shop == nil {
		st.addLog("error", "No shop in that slot.")
		return false
	}
	def := catalog.Shops[shop.Type]
	refund := demolishRefund(def)
	st.Gold += refund
	st.Floors[floorIdx].Slots[slotIdx].Shop = nil
	st.addLog("info", "Demolished %s. +%sG", def.Name, humanize.Comma(int64(refund)))
	st.recomputeSynergies()
	st.evaluateQuests()
	return true
}

// AddFloor appends a new empty floor at exponentially growing cost.
func (st *State) AddFloor(automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	ok := st.addFloorLocked(automated)
	if ok {
		st.evaluateQuests()
	}
	return ok
}

func (st *State) addFloorLocked(automated bool) bool {
	cost := newFloorCost(len(st.Floors))
	if st.Gold < cost {
		if !automated {
			st.addLog("error", "Not enough gold for a new floor!")
		}
		return false
	}
	st.Gold -= cost
	st.Floors = append(st.Floors, newFloor(len(st.Floors)+1))
	if automated {
		st.addAutoLog("Floor %d built!", len(st.Floors))
	} else {
		st.addLog("success", "Floor %d built!", len(st.Floors))
	}
	return true
}

// StartCampaign begins a marketing campaign. Rejections: unknown id, a
// campaign already running, reputation gate unmet, gold below cost, or a
// one-shot campaign already used.
func (st *State) StartCampaign(id string, automated bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.startCampaign(id, automated)
}

func (st *State) startCampaign(id string, automated bool) bool {
	def, ok := catalog.CampaignByID(id)
	if !ok {
		if !automated {
			st.addLog("error", "Unknown marketing campaign.")
		}
		return false
	}
	if st.Gold < def.Cost {
		if !automated {
			st.addLog("error", "Not enough gold for the %q campaign!", def.Name)
		}
		return false
	}
	if st.ActiveCampaign != nil {
		if !automated {
			st.addLog("error", "Another marketing campaign is already running.")
		}
		return false
	}
	if st.Reputation < def.MinReputation {
		if !automated {
			st.addLog("error", "The %q campaign requires %d reputation.", def.Name, def.MinReputation)
		}
		return false
	}
	if def.OneShot && st.UsedCampaigns[def.ID] {
		if !automated {
			st.addLog("error", "The %q campaign can only run once.", def.Name)
		}
		return false
	}

	st.Gold -= def.Cost
	st.Reputation += def.Effects.ReputationOnStart
	st.ActiveCampaign = &ActiveCampaign{ID: def.ID, Remaining: def.DurationTicks}
	st.UsedCampaigns[def.ID] = true
	if automated {
		st.addAutoLog("Started marketing campaign %q!", def.Name)
	} else {
		st.addLog("success", "Started marketing campaign %q!", def.Name)
	}
	st.evaluateQuests()
	return true
}

// SetPaused suspends or resumes the simulation clock.
func (st *State) SetPaused(paused bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.Paused = paused
	if paused {
		st.addLog("info", "Game paused.")
	} else {
		st.addLog("info", "Game resumed.")
	}
}

// SetSpeed sets the playback multiplier, clamped to 1..3.
func (st *State) SetSpeed(speed int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if speed < 1 {
		speed = 1
	}
	if speed > 3 {
		speed = 3
	}
	st.Speed = speed
	st.addLog("info", "Game speed set to %dx.", speed)
}

// SetDelegation toggles autopilot mode.
func (st *State) SetDelegation(on bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.Delegation = on
	if on {
		st.addLog("info", "Delegation mode enabled. The store now runs itself.")
	} else {
		st.addLog("info", "Delegation mode disabled.")
	}
}

// Reset reinitializes the game in place, keeping the random source.
func (st *State) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	fresh := New(st.rng)
	weather := st.StormyDay
	st.copyFrom(fresh)
	st.StormyDay = weather
	st.EnsureRival()
	st.addLog("info", "New game started. Good luck!")
}

// copyFrom replaces all game fields while keeping the mutex and rng.
func (st *State) copyFrom(src *State) {
	st.Gold = src.Gold
	st.Reputation = src.Reputation
	st.ResearchPoints = src.ResearchPoints
	st.Day = src.Day
	st.TickOfDay = src.TickOfDay
	st.Floors = src.Floors
	st.Staff = src.Staff
	st.Applicants = src.Applicants
	st.MaxStaffSlots = src.MaxStaffSlots
	st.MaxVOCs = src.MaxVOCs
	st.CompletedResearch = src.CompletedResearch
	st.UnlockedShops = src.UnlockedShops
	st.UsedCampaigns = src.UsedCampaigns
	st.Customers = src.Customers
	st.MarketShare = src.MarketShare
	st.ActiveEvent = src.ActiveEvent
	st.ActiveCampaign = src.ActiveCampaign
	st.Quests = src.Quests
	st.VOC = src.VOC
	st.Log = src.Log
	st.Rival = src.Rival
	st.Delegation = src.Delegation
	st.Paused = src.Paused
	st.Speed = src.Speed
	st.incomeEffects = nil
	st.rebuildIncomeEffects()
}

func (st *State) shopAt(floorIdx, slotIdx int) *PlacedShop {
	if floorIdx < 0 || floorIdx >= len(st.Floors) || slotIdx < 0 || slotIdx >= catalog.SlotsPerFloor {
		return nil
	}
	return st.Floors[floorIdx].Slots[slotIdx].Shop
}
