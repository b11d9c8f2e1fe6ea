package sim

import (
	"github.com/mkweon/grandmall/internal/catalog"
	"github.com/mkweon/grandmall/internal/entropy"
)

// Snapshot is the serialized form of the full game state. The persistence
// layer stores it as one JSON document. The game log is deliberately
// excluded.
type Snapshot struct {
	Gold           int `json:"gold"`
	Reputation     int `json:"reputation"`
	ResearchPoints int `json:"researchPoints"`
	Day            int `json:"day"`
	TickOfDay      int `json:"tickCounter"`

	Floors     []FloorSnapshot `json:"floors"`
	Staff      []StaffSnapshot `json:"staff"`
	Applicants []StaffSnapshot `json:"availableApplicants"`

	MaxStaffSlots int `json:"maxStaffSlots"`
	MaxVOCs       int `json:"maxVOCs"`

	CompletedResearch []string                     `json:"completedResearch"`
	UnlockedShops     []catalog.ShopType           `json:"unlockedShopTypes"`
	UsedCampaigns     []string                     `json:"usedCampaigns"`
	Customers         map[catalog.CustomerType]int `json:"customerTypes"`

	ActiveEvent    *ActiveEvent    `json:"activeEvent,omitempty"`
	ActiveCampaign *ActiveCampaign `json:"activeMarketingCampaign,omitempty"`
	Quests         []QuestStatus   `json:"quests"`

	Rival      RivalSnapshot `json:"aiStore"`
	Delegation bool          `json:"isDelegationModeActive"`
	Paused     bool          `json:"isPaused"`
	Speed      int           `json:"gameSpeed"`
}

// FloorSnapshot mirrors Floor for serialization.
type FloorSnapshot struct {
	ID              string         `json:"id"`
	Number          int            `json:"floorNumber"`
	Slots           []SlotSnapshot `json:"slots"`
	Cleanliness     float64        `json:"cleanliness"`
	ActiveSynergies []string       `json:"activeSynergies"`
}

// SlotSnapshot mirrors Slot.
type SlotSnapshot struct {
	Shop *ShopSnapshot `json:"shop,omitempty"`
}

// ShopSnapshot mirrors PlacedShop.
type ShopSnapshot struct {
	ID         string           `json:"id"`
	Type       catalog.ShopType `json:"shopTypeId"`
	Level      int              `json:"level"`
	VisitCount int              `json:"visitCount"`
}

// StaffSnapshot mirrors StaffMember.
type StaffSnapshot struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Role          catalog.StaffRole `json:"role"`
	Skill         int               `json:"skillLevel"`
	SalaryPerDay  int               `json:"salaryPerDay"`
	AssignedFloor string            `json:"assignedFloorId,omitempty"`
}

// RivalSnapshot mirrors RivalStore.
type RivalSnapshot struct {
	Name           string  `json:"name"`
	Reputation     float64 `json:"reputation"`
	Level          int     `json:"level"`
	Attraction     float64 `json:"attractionPower"`
	Activity       string  `json:"lastActivityMessage"`
	LastGrowthTick int     `json:"lastGrowthTick"`
}

// ToSnapshot captures the current state.
func (st *State) ToSnapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	snap := Snapshot{
		Gold:              st.Gold,
		Reputation:        st.Reputation,
		ResearchPoints:    st.ResearchPoints,
		Day:               st.Day,
		TickOfDay:         st.TickOfDay,
		MaxStaffSlots:     st.MaxStaffSlots,
		MaxVOCs:           st.MaxVOCs,
		CompletedResearch: append([]string{}, st.CompletedResearch...),
		Customers:         map[catalog.CustomerType]int{},
		Delegation:        st.Delegation,
		Paused:            st.Paused,
		Speed:             st.Speed,
		Rival: RivalSnapshot{
			Name:           st.Rival.Name,
			Reputation:     st.Rival.Reputation,
			Level:          st.Rival.Level,
			Attraction:     st.Rival.Attraction,
			Activity:       st.Rival.Activity,
			LastGrowthTick: st.Rival.LastGrowthTick,
		},
	}
	for t, c := range st.Customers {
		snap.Customers[t] = c
	}
	for _, u := range catalog.CustomerUnlocks {
		// Stable content regardless of map growth.
		if _, ok := snap.Customers[u.Type]; !ok {
			snap.Customers[u.Type] = 0
		}
	}
	for t, on := range st.UnlockedShops {
		if on {
			snap.UnlockedShops = append(snap.UnlockedShops, t)
		}
	}
	for id, used := range st.UsedCampaigns {
		if used {
			snap.UsedCampaigns = append(snap.UsedCampaigns, id)
		}
	}
	for _, f := range st.Floors {
		fs := FloorSnapshot{
			ID:              f.ID,
			Number:          f.Number,
			Cleanliness:     f.Cleanliness,
			ActiveSynergies: append([]string{}, f.ActiveSynergies...),
		}
		for _, s := range f.Slots {
			var shop *ShopSnapshot
			if s.Shop != nil {
				shop = &ShopSnapshot{ID: s.Shop.ID, Type: s.Shop.Type, Level: s.Shop.Level, VisitCount: s.Shop.VisitCount}
			}
			fs.Slots = append(fs.Slots, SlotSnapshot{Shop: shop})
		}
		snap.Floors = append(snap.Floors, fs)
	}
	for _, s := range st.Staff {
		snap.Staff = append(snap.Staff, staffSnapshot(s))
	}
	for _, a := range st.Applicants {
		snap.Applicants = append(snap.Applicants, staffSnapshot(a))
	}
	for _, q := range st.Quests {
		snap.Quests = append(snap.Quests, *q)
	}
	if st.ActiveEvent != nil {
		ev := *st.ActiveEvent
		snap.ActiveEvent = &ev
	}
	if st.ActiveCampaign != nil {
		c := *st.ActiveCampaign
		snap.ActiveCampaign = &c
	}
	return snap
}

func staffSnapshot(s *StaffMember) StaffSnapshot {
	return StaffSnapshot{
		ID:            s.ID,
		Name:          s.Name,
		Role:          s.Role,
		Skill:         s.Skill,
		SalaryPerDay:  s.SalaryPerDay,
		AssignedFloor: s.AssignedFloor,
	}
}

// FromSnapshot rebuilds a state from a saved snapshot, backfilling defaults
// for fields absent in older saves: zero research points and tick counter,
// fresh quest entries for definitions the save predates, zeroed counts for
// customer segments added since, and a synergy recompute to heal any stale
// floor data.
func FromSnapshot(snap Snapshot, rng entropy.Source) *State {
	st := &State{
		rng:            rng,
		Gold:           snap.Gold,
		Reputation:     snap.Reputation,
		ResearchPoints: snap.ResearchPoints,
		Day:            snap.Day,
		TickOfDay:      snap.TickOfDay,
		MaxStaffSlots:  snap.MaxStaffSlots,
		MaxVOCs:        snap.MaxVOCs,
		UnlockedShops:  map[catalog.ShopType]bool{},
		UsedCampaigns:  map[string]bool{},
		Customers:      emptyCustomerCounts(),
		MarketShare:    100,
		Delegation:     snap.Delegation,
		Paused:         snap.Paused,
		Speed:          snap.Speed,
	}
	if st.Day < 1 {
		st.Day = 1
	}
	if st.TickOfDay < 0 || st.TickOfDay >= catalog.TicksPerDay {
		st.TickOfDay = 0
	}
	if st.Speed < 1 || st.Speed > 3 {
		st.Speed = 1
	}
	if st.MaxStaffSlots < catalog.InitialMaxStaffSlots {
		st.MaxStaffSlots = catalog.InitialMaxStaffSlots
	}
	if st.MaxVOCs < catalog.InitialMaxVOCMessages {
		st.MaxVOCs = catalog.InitialMaxVOCMessages
	}

	st.CompletedResearch = append([]string{}, snap.CompletedResearch...)
	if len(snap.UnlockedShops) > 0 {
		for _, t := range snap.UnlockedShops {
			st.UnlockedShops[t] = true
		}
	} else {
		st.UnlockedShops = initialUnlockedShops()
	}
	for _, id := range snap.UsedCampaigns {
		st.UsedCampaigns[id] = true
	}
	for t, c := range snap.Customers {
		if c > 0 {
			st.Customers[t] = c
		}
	}

	for _, fs := range snap.Floors {
		f := &Floor{
			ID:              fs.ID,
			Number:          fs.Number,
			Cleanliness:     clampFloat(fs.Cleanliness, 0, 100),
			ActiveSynergies: append([]string{}, fs.ActiveSynergies...),
			Slots:           make([]Slot, catalog.SlotsPerFloor),
		}
		if f.ID == "" {
			*f = *newFloor(fs.Number)
		}
		for i, ss := range fs.Slots {
			if i >= catalog.SlotsPerFloor {
				break
			}
			if ss.Shop != nil {
				level := ss.Shop.Level
				if level < 1 {
					level = 1
				}
				f.Slots[i].Shop = &PlacedShop{
					ID:         ss.Shop.ID,
					Type:       ss.Shop.Type,
					Level:      level,
					VisitCount: ss.Shop.VisitCount,
				}
			}
		}
		st.Floors = append(st.Floors, f)
	}
	if len(st.Floors) == 0 {
		st.Floors = append(st.Floors, newFloor(1))
	}

	for i := range snap.Staff {
		s := snap.Staff[i]
		st.Staff = append(st.Staff, &StaffMember{
			ID: s.ID, Name: s.Name, Role: s.Role, Skill: s.Skill,
			SalaryPerDay: s.SalaryPerDay, AssignedFloor: s.AssignedFloor,
		})
	}
	for i := range snap.Applicants {
		a := snap.Applicants[i]
		st.Applicants = append(st.Applicants, &StaffMember{
			ID: a.ID, Name: a.Name, Role: a.Role, Skill: a.Skill,
			SalaryPerDay: a.SalaryPerDay,
		})
	}

	// Rejoin quests against the current catalog: saved progress carries
	// over, definitions the save predates start fresh.
	saved := map[string]QuestStatus{}
	for _, q := range snap.Quests {
		saved[q.ID] = q
	}
	for _, def := range catalog.Quests {
		if q, ok := saved[def.ID]; ok {
			st.Quests = append(st.Quests, &QuestStatus{ID: q.ID, Current: q.Current, Completed: q.Completed})
		} else {
			st.Quests = append(st.Quests, &QuestStatus{ID: def.ID})
		}
	}

	if snap.ActiveEvent != nil {
		if _, ok := catalog.EventByID(snap.ActiveEvent.ID); ok {
			ev := *snap.ActiveEvent
			st.ActiveEvent = &ev
		}
	}
	if snap.ActiveCampaign != nil {
		if _, ok := catalog.CampaignByID(snap.ActiveCampaign.ID); ok {
			c := *snap.ActiveCampaign
			st.ActiveCampaign = &c
		}
	}

	st.Rival = RivalStore{
		Name:           snap.Rival.Name,
		Reputation:     snap.Rival.Reputation,
		Level:          snap.Rival.Level,
		Attraction:     snap.Rival.Attraction,
		Activity:       snap.Rival.Activity,
		LastGrowthTick: snap.Rival.LastGrowthTick,
	}
	if st.Rival.Level < 1 {
		st.Rival.Level = 1
	}
	st.EnsureRival()

	st.rebuildIncomeEffects()
	st.recomputeSynergiesSilently()
	return st
}

// recomputeSynergiesSilently heals stale synergy lists after load without
// emitting "new synergy" notifications for combos the player already had.
func (st *State) recomputeSynergiesSilently() {
	for _, f := range st.Floors {
		f.ActiveSynergies = detectSynergies(f)
	}
}
