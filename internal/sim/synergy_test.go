package sim

import (
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
)

func TestSynergySatisfiedByTypeList(t *testing.T) {
	dessert, _ := catalog.SynergyByID("DESSERT_TIME")

	if synergySatisfied(dessert, []catalog.ShopType{catalog.Bakery}) {
		t.Error("satisfied with bakery only")
	}
	if !synergySatisfied(dessert, []catalog.ShopType{catalog.Bakery, catalog.Cafe}) {
		t.Error("not satisfied with bakery and cafe")
	}
}

func TestSynergySatisfiedByCategoryCount(t *testing.T) {
	foodCourt, _ := catalog.SynergyByID("FOOD_COURT_BASIC")

	two := []catalog.ShopType{catalog.Bakery, catalog.Cafe}
	if synergySatisfied(foodCourt, two) {
		t.Error("satisfied with two food shops")
	}
	three := append(two, catalog.FastFood)
	if !synergySatisfied(foodCourt, three) {
		t.Error("not satisfied with three food shops")
	}
}

func TestSynergyRequiresSameFloor(t *testing.T) {
	st := newTestState(t)
	st.Gold = 1000000
	st.Reputation = 1000

	st.BuildShop(catalog.Bakery, 0, 0, false)
	st.AddFloor(false)
	st.BuildShop(catalog.Cafe, 1, 0, false)

	for _, f := range st.Floors {
		if len(f.ActiveSynergies) != 0 {
			t.Errorf("floor %d has synergies %v across floors", f.Number, f.ActiveSynergies)
		}
	}
}

func TestRecomputeSynergiesLogsOnceAndDropsSilently(t *testing.T) {
	st := newTestState(t)
	st.Gold = 1000000
	st.Reputation = 1000

	st.BuildShop(catalog.Bakery, 0, 0, false)
	st.BuildShop(catalog.Cafe, 0, 1, false)

	syn, _ := catalog.SynergyByID("DESSERT_TIME")
	if !containsString(st.Floors[0].ActiveSynergies, syn.ID) {
		t.Fatal("DESSERT_TIME not active")
	}
	found := false
	for _, e := range st.Log {
		if e.Text == syn.Message {
			found = true
			break
		}
	}
	if !found {
		t.Error("synergy message not logged")
	}

	logLen := len(st.Log)
	st.WithLock(func(s *State) { s.recomputeSynergies() })
	if len(st.Log) != logLen {
		t.Error("unchanged synergy set logged again")
	}

	st.DemolishShop(0, 1)
	if containsString(st.Floors[0].ActiveSynergies, syn.ID) {
		t.Error("synergy survived losing a member")
	}
}
