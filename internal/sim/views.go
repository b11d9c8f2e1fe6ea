package sim

import (
	"sort"

	"github.com/mkweon/grandmall/internal/catalog"
)

// The view types are derived, never stored: every call recomputes from
// current state under the lock, using the same income function the tick
// applies.

// StatusView is the top-level dashboard frame.
type StatusView struct {
	Day            int     `json:"day"`
	Tick           int     `json:"tick"`
	Gold           int     `json:"gold"`
	Reputation     int     `json:"reputation"`
	ResearchPoints int     `json:"researchPoints"`
	Rank           string  `json:"rank"`
	MarketShare    float64 `json:"marketShare"`
	Customers      int     `json:"customers"`
	Floors         int     `json:"floors"`
	Shops          int     `json:"shops"`
	Staff          int     `json:"staff"`
	MaxStaff       int     `json:"maxStaff"`
	Paused         bool    `json:"paused"`
	Speed          int     `json:"speed"`
	Delegation     bool    `json:"delegation"`
	ActiveEvent    string  `json:"activeEvent,omitempty"`
	ActiveCampaign string  `json:"activeCampaign,omitempty"`
	RivalName      string  `json:"rivalName"`
	RivalRep       int     `json:"rivalReputation"`
	RivalLevel     int     `json:"rivalLevel"`
	RivalActivity  string  `json:"rivalActivity"`
}

// Status assembles the dashboard frame.
func (st *State) Status() StatusView {
	st.mu.Lock()
	defer st.mu.Unlock()
	v := StatusView{
		Day:            st.Day,
		Tick:           st.TickOfDay,
		Gold:           st.Gold,
		Reputation:     st.Reputation,
		ResearchPoints: st.ResearchPoints,
		Rank:           catalog.RankAt(st.Reputation).Name,
		MarketShare:    st.MarketShare,
		Customers:      st.totalCustomers(),
		Floors:         len(st.Floors),
		Shops:          st.totalShops(),
		Staff:          len(st.Staff),
		MaxStaff:       st.MaxStaffSlots,
		Paused:         st.Paused,
		Speed:          st.Speed,
		Delegation:     st.Delegation,
		RivalName:      st.Rival.Name,
		RivalRep:       int(st.Rival.Reputation),
		RivalLevel:     st.Rival.Level,
		RivalActivity:  st.Rival.Activity,
	}
	if st.ActiveEvent != nil {
		v.ActiveEvent = st.ActiveEvent.ID
	}
	if st.ActiveCampaign != nil {
		v.ActiveCampaign = st.ActiveCampaign.ID
	}
	return v
}

// FinancialSummary reports income, salary burn, and net profit per tick and
// per day, using current modifiers.
type FinancialSummary struct {
	IncomePerTick  int `json:"incomePerTick"`
	IncomePerDay   int `json:"incomePerDay"`
	SalariesPerDay int `json:"salariesPerDay"`
	NetPerDay      int `json:"netPerDay"`
}

// Financials computes the projected financial summary.
func (st *State) Financials() FinancialSummary {
	st.mu.Lock()
	defer st.mu.Unlock()
	perTick := 0
	for _, f := range st.Floors {
		for i := range f.Slots {
			if shop := f.Slots[i].Shop; shop != nil {
				perTick += st.shopIncome(f, shop)
			}
		}
	}
	salaries := 0
	for _, s := range st.Staff {
		salaries += s.SalaryPerDay
	}
	perDay := perTick * catalog.TicksPerDay
	return FinancialSummary{
		IncomePerTick:  perTick,
		IncomePerDay:   perDay,
		SalariesPerDay: salaries,
		NetPerDay:      perDay - salaries,
	}
}

// IncomeBreakdownEntry is one row of a grouped income projection.
type IncomeBreakdownEntry struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Count         int    `json:"count"`
	IncomePerTick int    `json:"incomePerTick"`
}

// IncomeByCategory groups projected income by shop category.
func (st *State) IncomeByCategory() []IncomeBreakdownEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	agg := map[catalog.ShopCategory]*IncomeBreakdownEntry{}
	for _, f := range st.Floors {
		for i := range f.Slots {
			shop := f.Slots[i].Shop
			if shop == nil {
				continue
			}
			cat := catalog.Shops[shop.Type].Category
			e, ok := agg[cat]
			if !ok {
				e = &IncomeBreakdownEntry{Key: string(cat), Name: string(cat)}
				agg[cat] = e
			}
			e.Count++
			e.IncomePerTick += st.shopIncome(f, shop)
		}
	}
	return sortedBreakdown(agg)
}

// IncomeByShopType groups projected income by shop type.
func (st *State) IncomeByShopType() []IncomeBreakdownEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	byType := map[catalog.ShopType]*IncomeBreakdownEntry{}
	for _, f := range st.Floors {
		for i := range f.Slots {
			shop := f.Slots[i].Shop
			if shop == nil {
				continue
			}
			def := catalog.Shops[shop.Type]
			e, ok := byType[shop.Type]
			if !ok {
				e = &IncomeBreakdownEntry{Key: string(shop.Type), Name: def.Name}
				byType[shop.Type] = e
			}
			e.Count++
			e.IncomePerTick += st.shopIncome(f, shop)
		}
	}
	out := make([]IncomeBreakdownEntry, 0, len(byType))
	for _, e := range byType {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IncomePerTick != out[j].IncomePerTick {
			return out[i].IncomePerTick > out[j].IncomePerTick
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func sortedBreakdown(agg map[catalog.ShopCategory]*IncomeBreakdownEntry) []IncomeBreakdownEntry {
	out := make([]IncomeBreakdownEntry, 0, len(agg))
	for _, e := range agg {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IncomePerTick != out[j].IncomePerTick {
			return out[i].IncomePerTick > out[j].IncomePerTick
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// FloorPerformance summarizes one floor for the dashboard.
type FloorPerformance struct {
	Number        int      `json:"floor"`
	Shops         int      `json:"shops"`
	IncomePerTick int      `json:"incomePerTick"`
	Traffic       int      `json:"traffic"` // sum of shop visit counts
	Cleanliness   float64  `json:"cleanliness"`
	TopShop       string   `json:"topShop,omitempty"`
	Synergies     []string `json:"synergies,omitempty"`
	HasManager    bool     `json:"hasManager"`
	HasCleaner    bool     `json:"hasCleaner"`
}

// FloorReport computes per-floor performance, top shop by visit count.
func (st *State) FloorReport() []FloorPerformance {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]FloorPerformance, 0, len(st.Floors))
	for _, f := range st.Floors {
		p := FloorPerformance{
			Number:      f.Number,
			Cleanliness: f.Cleanliness,
			Synergies:   append([]string{}, f.ActiveSynergies...),
			HasManager:  st.managerOn(f.ID) != nil,
			HasCleaner:  st.floorHasCleaner(f.ID),
		}
		topVisits := -1
		for i := range f.Slots {
			shop := f.Slots[i].Shop
			if shop == nil {
				continue
			}
			p.Shops++
			p.IncomePerTick += st.shopIncome(f, shop)
			p.Traffic += shop.VisitCount
			if shop.VisitCount > topVisits {
				topVisits = shop.VisitCount
				p.TopShop = catalog.Shops[shop.Type].Name
			}
		}
		out = append(out, p)
	}
	return out
}

// PopularityEntry ranks a shop instance by lifetime visits.
type PopularityEntry struct {
	Name       string `json:"name"`
	Floor      int    `json:"floor"`
	Level      int    `json:"level"`
	VisitCount int    `json:"visitCount"`
}

// PopularityRanking lists every shop ordered by visit count descending.
func (st *State) PopularityRanking() []PopularityEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	var out []PopularityEntry
	for _, f := range st.Floors {
		for _, s := range f.Slots {
			if s.Shop == nil {
				continue
			}
			out = append(out, PopularityEntry{
				Name:       catalog.Shops[s.Shop.Type].Name,
				Floor:      f.Number,
				Level:      s.Shop.Level,
				VisitCount: s.Shop.VisitCount,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].VisitCount > out[j].VisitCount })
	return out
}

// LogView returns a copy of the game log, newest last.
func (st *State) LogView() []LogEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]LogEntry{}, st.Log...)
}

// VOCView returns the current customer voices, newest first.
func (st *State) VOCView() []VOCEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]VOCEntry{}, st.VOC...)
}
