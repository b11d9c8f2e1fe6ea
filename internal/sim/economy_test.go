package sim

import (
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
)

func TestShopIncomeBaseTimesLevel(t *testing.T) {
	st := newTestState(t)
	if !st.BuildShop(catalog.Bakery, 0, 0, false) {
		t.Fatal("build bakery failed")
	}

	f := st.Floors[0]
	shop := f.Slots[0].Shop
	if got := st.shopIncome(f, shop); got != 20 {
		t.Errorf("level 1 bakery income = %d, want 20", got)
	}

	shop.Level = 4
	if got := st.shopIncome(f, shop); got != 80 {
		t.Errorf("level 4 bakery income = %d, want 80", got)
	}
}

func TestShopIncomeManagerBoost(t *testing.T) {
	st := newTestState(t)
	st.BuildShop(catalog.Bakery, 0, 0, false)
	f := st.Floors[0]

	st.Staff = append(st.Staff, &StaffMember{
		ID: "m1", Name: "Minjun Kim", Role: catalog.RoleManager,
		Skill: 3, AssignedFloor: f.ID,
	})

	// 20 * (1 + 0.02*3) = 21.2, rounds to 21.
	if got := st.shopIncome(f, f.Slots[0].Shop); got != 21 {
		t.Errorf("managed bakery income = %d, want 21", got)
	}
}

func TestShopIncomeSynergyAndEventCompound(t *testing.T) {
	st := newTestState(t)
	st.Gold = 1000000
	st.BuildShop(catalog.Bakery, 0, 0, false)
	st.BuildShop(catalog.Cafe, 0, 1, false) // rep gate
	if st.Floors[0].Slots[1].Shop == nil {
		st.Reputation = 50
		st.BuildShop(catalog.Cafe, 0, 1, false)
	}
	f := st.Floors[0]
	if len(f.ActiveSynergies) == 0 {
		t.Fatal("bakery+cafe should activate DESSERT_TIME")
	}

	syn, _ := catalog.SynergyByID("DESSERT_TIME")
	base := 20.0 * (1 + syn.IncomeBonus)

	got := st.shopIncome(f, f.Slots[0].Shop)
	want := int(base + 0.5)
	if got != want {
		t.Errorf("synergized bakery income = %d, want %d", got, want)
	}

	ev, _ := catalog.EventByID("WEEKEND_SALE")
	st.ActiveEvent = &ActiveEvent{ID: ev.ID, Remaining: 10}
	got = st.shopIncome(f, f.Slots[0].Shop)
	want = int(base*ev.IncomeMult + 0.5)
	if got != want {
		t.Errorf("event income = %d, want %d", got, want)
	}
}

func TestApplyIncomeBatchesGoldAndCountsVisits(t *testing.T) {
	st := newTestState(t)
	st.BuildShop(catalog.Bakery, 0, 0, false)
	st.BuildShop(catalog.Restroom, 0, 1, false)
	if st.Floors[0].Slots[1].Shop == nil {
		st.Reputation = 10
		if !st.BuildShop(catalog.Restroom, 0, 1, false) {
			t.Fatal("build restroom failed")
		}
	}

	before := st.Gold
	st.WithLock(func(s *State) { s.applyIncome() })

	if st.Gold != before+20 {
		t.Errorf("gold = %d, want %d", st.Gold, before+20)
	}
	bakery := st.Floors[0].Slots[0].Shop
	if bakery.VisitCount < 1 || bakery.VisitCount > 3 {
		t.Errorf("bakery visits = %d, want 1..3", bakery.VisitCount)
	}
	restroom := st.Floors[0].Slots[1].Shop
	if restroom.VisitCount != 0 {
		t.Errorf("zero-income shop gained %d visits", restroom.VisitCount)
	}
}

func TestInvestCostCurve(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 500},
		{2, 650},
		{3, 845},
	}
	for _, c := range cases {
		if got := investCost(c.level); got != c.want {
			t.Errorf("investCost(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestNewFloorCostCurve(t *testing.T) {
	if got := newFloorCost(1); got != 100000 {
		t.Errorf("second floor cost = %d, want 100000", got)
	}
	if got := newFloorCost(2); got != 150000 {
		t.Errorf("third floor cost = %d, want 150000", got)
	}
}

func TestDemolishRefundIsQuarterCost(t *testing.T) {
	def := catalog.Shops[catalog.Bakery]
	if got := demolishRefund(def); got != 2500 {
		t.Errorf("bakery refund = %d, want 2500", got)
	}
}
