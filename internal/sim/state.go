// Package sim implements the department store simulation: the per-tick
// economic model, customer market share, the AI rival, staff and research
// systems, and the delegation autopilot. All state lives in a single State
// struct guarded by one mutex; the tick loop and API handlers both go
// through its exported methods.
package sim

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mkweon/grandmall/internal/catalog"
	"github.com/mkweon/grandmall/internal/entropy"
)

// PlacedShop is a shop instance occupying one slot.
type PlacedShop struct {
	ID            string
	Type          catalog.ShopType
	Level         int
	CurrentIncome int // last computed tick income, display cache only
	VisitCount    int
}

// Slot holds at most one shop.
type Slot struct {
	Shop *PlacedShop
}

// Floor is one level of the store with a fixed number of slots.
type Floor struct {
	ID              string
	Number          int // 1-based, contiguous
	Slots           []Slot
	Cleanliness     float64 // clamped [0,100]
	ActiveSynergies []string
}

// StaffMember is an employee or an applicant. Salary is fixed at generation
// time; skill never changes.
type StaffMember struct {
	ID            string
	Name          string
	Role          catalog.StaffRole
	Skill         int
	SalaryPerDay  int
	AssignedFloor string // floor ID, empty = unassigned
}

// RivalStore is the AI-controlled competitor.
type RivalStore struct {
	Name           string
	Reputation     float64
	Level          int
	Attraction     float64
	Activity       string
	LastGrowthTick int
	// dayRolled marks that the tick counter wrapped since the last growth
	// evaluation, so the interval check cannot stall across day boundaries.
	dayRolled bool
}

// ActiveEvent is a running store-wide event.
type ActiveEvent struct {
	ID        string
	Remaining int // ticks
}

// ActiveCampaign is a running marketing campaign.
type ActiveCampaign struct {
	ID        string
	Remaining int // ticks
}

// QuestStatus tracks progress against one quest definition.
type QuestStatus struct {
	ID        string
	Current   int
	Completed bool
}

// VOCEntry is one displayed customer voice.
type VOCEntry struct {
	MessageID string
	Text      string
	Sentiment catalog.VOCSentiment
	Day       int
	Tick      int
}

// LogEntry is one line of the user-facing game log.
type LogEntry struct {
	Day       int
	Tick      int
	Text      string
	Kind      string // "info", "success", "error", "delegation"
	Automated bool
}

const logRingSize = 50

// State is the complete simulation state. All access goes through methods
// that take the mutex; unexported helpers assume it is held.
type State struct {
	mu  sync.Mutex
	rng entropy.Source

	Gold           int
	Reputation     int
	ResearchPoints int
	Day            int
	TickOfDay      int // [0, TicksPerDay)

	Floors     []*Floor
	Staff      []*StaffMember
	Applicants []*StaffMember

	MaxStaffSlots int
	MaxVOCs       int

	CompletedResearch []string
	UnlockedShops     map[catalog.ShopType]bool
	UsedCampaigns     map[string]bool
	Customers         map[catalog.CustomerType]int
	MarketShare       float64

	ActiveEvent    *ActiveEvent
	ActiveCampaign *ActiveCampaign
	Quests         []*QuestStatus
	VOC            []VOCEntry
	Log            []LogEntry

	Rival      RivalStore
	Delegation bool
	Paused     bool
	Speed      int // 1..3

	// StormyDay reports whether the given day has storm weather. Optional;
	// wired by the host process, consulted by the ambient event trigger.
	StormyDay func(day int) bool

	// incomeEffects caches the standing income modifiers derived from the
	// completed research set. Rebuilt on research completion and on load.
	incomeEffects []catalog.IncomeMultiplierEffect
}

// New creates a fresh game state with starting resources, one empty floor
// and an initialized rival store.
func New(rng entropy.Source) *State {
	st := &State{
		rng:            rng,
		Gold:           catalog.InitialGold,
		Reputation:     catalog.InitialReputation,
		ResearchPoints: catalog.InitialRP,
		Day:            1,
		MaxStaffSlots:  catalog.InitialMaxStaffSlots,
		MaxVOCs:        catalog.InitialMaxVOCMessages,
		UnlockedShops:  initialUnlockedShops(),
		UsedCampaigns:  map[string]bool{},
		Customers:      emptyCustomerCounts(),
		MarketShare:    100,
		Speed:          1,
	}
	for i := 0; i < catalog.InitialFloors; i++ {
		st.Floors = append(st.Floors, newFloor(i+1))
	}
	for _, q := range catalog.Quests {
		st.Quests = append(st.Quests, &QuestStatus{ID: q.ID})
	}
	st.EnsureRival()
	return st
}

func newFloor(number int) *Floor {
	return &Floor{
		ID:          uuid.NewString(),
		Number:      number,
		Slots:       make([]Slot, catalog.SlotsPerFloor),
		Cleanliness: catalog.DefaultCleanliness,
	}
}

func initialUnlockedShops() map[catalog.ShopType]bool {
	out := map[catalog.ShopType]bool{}
	for id, def := range catalog.Shops {
		if def.MinReputation == 0 && !def.ResearchLocked {
			out[id] = true
		}
	}
	return out
}

func emptyCustomerCounts() map[catalog.CustomerType]int {
	out := map[catalog.CustomerType]int{}
	for _, u := range catalog.CustomerUnlocks {
		out[u.Type] = 0
	}
	return out
}

// EnsureRival initializes the AI competitor if it has not been created yet.
// Safe to call repeatedly; only the first call mutates anything.
func (st *State) EnsureRival() {
	if st.Rival.Name != "" {
		return
	}
	name := catalog.RivalNames[st.rng.Intn(len(catalog.RivalNames))]
	rep := entropy.IntRange(st.rng, catalog.AIInitialReputationMin, catalog.AIInitialReputationMax)
	st.Rival = RivalStore{
		Name:       name,
		Reputation: float64(rep),
		Level:      1,
		Attraction: float64(rep) * catalog.AIRepAttractionWeight,
		Activity:   "Business as usual at the competition...",
	}
}

// Lock-taking wrappers used by the engine and API.

// WithLock runs fn with exclusive access to the state. Intended for read
// paths that assemble views; mutations should use the action methods.
func (st *State) WithLock(fn func(*State)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(st)
}

// --- helpers, mutex held ---

func (st *State) addLog(kind, format string, args ...any) {
	entry := LogEntry{
		Day:  st.Day,
		Tick: st.TickOfDay,
		Text: fmt.Sprintf(format, args...),
		Kind: kind,
	}
	st.Log = append(st.Log, entry)
	if len(st.Log) > logRingSize {
		st.Log = st.Log[len(st.Log)-logRingSize:]
	}
}

// addAutoLog records a delegation-mode action. Automated entries use their
// own kind so the UI can distinguish autopilot activity.
func (st *State) addAutoLog(format string, args ...any) {
	st.addLog("delegation", format, args...)
	st.Log[len(st.Log)-1].Automated = true
}

func (st *State) totalShops() int {
	n := 0
	for _, f := range st.Floors {
		for _, s := range f.Slots {
			if s.Shop != nil {
				n++
			}
		}
	}
	return n
}

func (st *State) countShopsOfType(t catalog.ShopType) int {
	n := 0
	for _, f := range st.Floors {
		for _, s := range f.Slots {
			if s.Shop != nil && s.Shop.Type == t {
				n++
			}
		}
	}
	return n
}

func (st *State) hasShopOfType(t catalog.ShopType) bool {
	return st.countShopsOfType(t) > 0
}

func (st *State) totalCustomers() int {
	n := 0
	for _, c := range st.Customers {
		n += c
	}
	return n
}

func (st *State) researchCompleted(id string) bool {
	for _, r := range st.CompletedResearch {
		if r == id {
			return true
		}
	}
	return false
}

func (st *State) floorByID(id string) *Floor {
	for _, f := range st.Floors {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (st *State) staffByID(id string) *StaffMember {
	for _, s := range st.Staff {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// managerOn returns the first manager assigned to the floor, or nil.
func (st *State) managerOn(floorID string) *StaffMember {
	for _, s := range st.Staff {
		if s.Role == catalog.RoleManager && s.AssignedFloor == floorID {
			return s
		}
	}
	return nil
}

func (st *State) floorHasCleaner(floorID string) bool {
	for _, s := range st.Staff {
		if s.Role == catalog.RoleCleaner && s.AssignedFloor == floorID {
			return true
		}
	}
	return false
}

// shopBuildable reports whether the player may currently build the given
// shop type: either its reputation gate is met, or it has been explicitly
// unlocked (quest or research). Research-locked shops always need the
// explicit unlock.
func (st *State) shopBuildable(def catalog.ShopDefinition) bool {
	if def.ResearchLocked && !st.UnlockedShops[def.ID] {
		return false
	}
	return st.Reputation >= def.MinReputation || st.UnlockedShops[def.ID]
}

func (st *State) rebuildIncomeEffects() {
	st.incomeEffects = st.incomeEffects[:0]
	for _, id := range st.CompletedResearch {
		item, ok := catalog.ResearchByID(id)
		if !ok {
			continue
		}
		for _, eff := range item.Effects {
			if m, ok := eff.(catalog.IncomeMultiplierEffect); ok {
				st.incomeEffects = append(st.incomeEffects, m)
			}
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
