package sim

import (
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
)

func TestPlayerAttractionFloorsAtOne(t *testing.T) {
	st := newTestState(t)
	st.rng = &scriptedRand{floats: []float64{0.5}} // zero jitter
	st.Reputation = 0
	st.Floors[0].Cleanliness = 0

	if got := st.playerAttraction(); got < 1 {
		t.Errorf("attraction = %f, below floor", got)
	}
}

func TestPlayerAttractionComposition(t *testing.T) {
	st := newTestState(t)
	st.rng = &scriptedRand{floats: []float64{0.5, 0.5, 0.5}}
	st.Reputation = 100
	st.Floors[0].Cleanliness = 80
	st.Floors[0].Slots[0].Shop = &PlacedShop{ID: "s1", Type: catalog.Bakery, Level: 4}

	// rep*1 + shops*2 + avgLevel*5 + cleanliness-fraction*0.5*100, no jitter.
	want := 100.0 + 1*2.0 + 4*5.0 + 0.8*0.5*100
	got := st.playerAttraction()
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("attraction = %f, want %f", got, want)
	}
}

func TestCustomerCapGrowsWithStore(t *testing.T) {
	st := newTestState(t)
	if got := st.customerCap(); got != 13 {
		t.Errorf("starting cap = %d, want 13", got)
	}
	st.Reputation = 200
	if got := st.customerCap(); got != 23 {
		t.Errorf("cap at 200 rep = %d, want 23", got)
	}
}

func TestUpdateCustomersResetsLockedSegments(t *testing.T) {
	st := newTestState(t)
	// Seed a segment the store's reputation no longer qualifies for.
	locked := catalog.CustomerUnlocks[len(catalog.CustomerUnlocks)-1].Type
	st.Customers[locked] = 7
	st.Reputation = 0

	st.WithLock(func(s *State) { s.updateCustomers() })
	if st.Customers[locked] != 0 {
		t.Errorf("locked segment = %d, want 0", st.Customers[locked])
	}
}

func TestUpdateCustomersSplitsMarketWithRival(t *testing.T) {
	st := newTestState(t)
	st.Reputation = 100
	st.Rival.Attraction = 0

	st.WithLock(func(s *State) { s.updateCustomers() })
	if st.MarketShare != 100 {
		t.Errorf("share with zero rival = %f, want 100", st.MarketShare)
	}

	st.Rival.Attraction = 1e9
	st.WithLock(func(s *State) { s.updateCustomers() })
	if st.MarketShare > 1 {
		t.Errorf("share against dominant rival = %f", st.MarketShare)
	}
}

func TestUpdateCustomersRespectsCap(t *testing.T) {
	st := newTestState(t)
	st.Reputation = 0
	first := catalog.CustomerUnlocks[0].Type
	st.Customers[first] = 1000

	st.WithLock(func(s *State) { s.updateCustomers() })
	if cap := st.customerCap(); st.Customers[first] > cap {
		t.Errorf("segment %s = %d, above cap %d", first, st.Customers[first], cap)
	}
}
