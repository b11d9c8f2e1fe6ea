package sim

import (
	"encoding/json"
	"testing"

	"github.com/mkweon/grandmall/internal/catalog"
	"github.com/mkweon/grandmall/internal/entropy"
)

func TestSnapshotRoundTrip(t *testing.T) {
	st := newTestState(t)
	st.Gold = 123456
	st.Reputation = 321
	st.ResearchPoints = 17
	st.Day = 12
	st.TickOfDay = 34
	st.Delegation = true
	st.Speed = 2
	st.BuildShop(catalog.Bakery, 0, 0, false)
	st.Floors[0].Slots[0].Shop.Level = 5
	st.Floors[0].Slots[0].Shop.VisitCount = 99
	st.CompletedResearch = []string{"BASIC_CUSTOMER_INSIGHTS"}
	st.UsedCampaigns["GRAND_OPENING_BLITZ"] = true
	st.Staff = append(st.Staff, applicant("m1", catalog.RoleManager, 2))
	st.ActiveEvent = &ActiveEvent{ID: "WEEKEND_SALE", Remaining: 42}

	snap := st.ToSnapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := FromSnapshot(decoded, entropy.NewSeeded(1))
	if got.Gold != 123456 || got.Reputation != 321 || got.ResearchPoints != 17 {
		t.Errorf("economy fields: gold=%d rep=%d rp=%d", got.Gold, got.Reputation, got.ResearchPoints)
	}
	if got.Day != 12 || got.TickOfDay != 34 {
		t.Errorf("clock: day=%d tick=%d", got.Day, got.TickOfDay)
	}
	if !got.Delegation || got.Speed != 2 {
		t.Errorf("modes: delegation=%v speed=%d", got.Delegation, got.Speed)
	}

	shop := got.Floors[0].Slots[0].Shop
	if shop == nil || shop.Type != catalog.Bakery || shop.Level != 5 || shop.VisitCount != 99 {
		t.Fatalf("shop = %+v", shop)
	}
	if !got.researchCompleted("BASIC_CUSTOMER_INSIGHTS") {
		t.Error("completed research lost")
	}
	if !got.UsedCampaigns["GRAND_OPENING_BLITZ"] {
		t.Error("used campaign flag lost")
	}
	if len(got.Staff) != 1 || got.Staff[0].Role != catalog.RoleManager {
		t.Error("staff lost")
	}
	if got.ActiveEvent == nil || got.ActiveEvent.Remaining != 42 {
		t.Error("active event lost")
	}
	if got.Rival.Name != st.Rival.Name || got.Rival.Reputation != st.Rival.Reputation {
		t.Error("rival lost")
	}
}

func TestFromSnapshotBackfillsOldSaves(t *testing.T) {
	// A minimal save, as an early version would have written it.
	old := Snapshot{
		Gold:       7000,
		Reputation: 40,
		Day:        3,
	}
	st := FromSnapshot(old, entropy.NewSeeded(1))

	if st.TickOfDay != 0 || st.ResearchPoints != 0 {
		t.Errorf("tick=%d rp=%d, want zero defaults", st.TickOfDay, st.ResearchPoints)
	}
	if len(st.Floors) != 1 || len(st.Floors[0].Slots) != catalog.SlotsPerFloor {
		t.Fatal("missing floors not backfilled")
	}
	if st.MaxStaffSlots != catalog.InitialMaxStaffSlots || st.MaxVOCs != catalog.InitialMaxVOCMessages {
		t.Errorf("caps: staff=%d voc=%d", st.MaxStaffSlots, st.MaxVOCs)
	}
	if len(st.Quests) != len(catalog.Quests) {
		t.Errorf("quests = %d, want full tracking list", len(st.Quests))
	}
	if !st.UnlockedShops[catalog.Bakery] {
		t.Error("default unlocked shops not backfilled")
	}
	if st.Rival.Name == "" {
		t.Error("rival not initialized for a save that predates one")
	}
	if st.Speed != 1 {
		t.Errorf("speed = %d, want 1", st.Speed)
	}
	for _, u := range catalog.CustomerUnlocks {
		if _, ok := st.Customers[u.Type]; !ok {
			t.Errorf("customer segment %s missing", u.Type)
		}
	}
}

func TestFromSnapshotPreservesQuestProgress(t *testing.T) {
	old := Snapshot{
		Gold: 1000, Day: 2,
		Quests: []QuestStatus{
			{ID: "UNLOCK_CAFE", Current: 30},
			{ID: "RETIRED_QUEST", Current: 5, Completed: true},
		},
	}
	st := FromSnapshot(old, entropy.NewSeeded(1))

	found := false
	for _, q := range st.Quests {
		if q.ID == "UNLOCK_CAFE" {
			found = true
			if q.Current != 30 || q.Completed {
				t.Errorf("quest state = %+v", q)
			}
		}
		if q.ID == "RETIRED_QUEST" {
			t.Error("quest absent from the catalog was rejoined")
		}
	}
	if !found {
		t.Error("saved quest progress lost")
	}
}
