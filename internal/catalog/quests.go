package catalog

// QuestReward is granted once when a quest completes.
type QuestReward struct {
	Gold           int
	Reputation     int
	ResearchPoints int
	UnlockShops    []ShopType
}

// Quest is a one-time objective. Progress functions live in the simulation;
// the definition carries the target and the reward.
type Quest struct {
	ID          string
	Title       string
	Description string
	TargetValue int
	Reward      QuestReward
}

var Quests = []Quest{
	{
		ID: "BUILD_FIRST_SHOPS", Title: "Grand Opening Prep",
		Description: "Build your first two shops: a Bakery and a Bookstore.",
		TargetValue: 2,
		Reward:      QuestReward{Gold: 5000, Reputation: 20, ResearchPoints: 1},
	},
	{
		ID: "UNLOCK_CAFE", Title: "Coffee Break",
		Description: "Reach 50 reputation to unlock the Cafe.",
		TargetValue: 50,
		Reward:      QuestReward{Reputation: 10, ResearchPoints: 2, UnlockShops: []ShopType{Cafe}},
	},
	{
		ID: "REACH_100_REPUTATION", Title: "Rising Popularity",
		Description: "Reach 100 reputation to attract a wider crowd.",
		TargetValue: 100,
		Reward: QuestReward{Gold: 10000, Reputation: 20, ResearchPoints: 3,
			UnlockShops: []ShopType{FastFood, ChildrensClothing, Pharmacy}},
	},
	{
		ID: "FIRST_SYNERGY", Title: "Smart Combination",
		Description: "Discover your first shop synergy on any floor.",
		TargetValue: 1,
		Reward:      QuestReward{Gold: 15000, Reputation: 50, ResearchPoints: 5},
	},
	{
		ID: "BUILD_NEW_FLOOR", Title: "Expanding Upward",
		Description: "Build the store's second floor.",
		TargetValue: 2,
		Reward: QuestReward{Gold: 20000, Reputation: 30, ResearchPoints: 5,
			UnlockShops: []ShopType{InformationDesk}},
	},
	{
		ID: "BUILD_SUPERMARKET", Title: "Center of Daily Life",
		Description: "Build a Supermarket for everyday convenience.",
		TargetValue: 1,
		Reward: QuestReward{Gold: 50000, Reputation: 70, ResearchPoints: 10,
			UnlockShops: []ShopType{HomeGoods}},
	},
	{
		ID: "ENTERTAINMENT_ZONE", Title: "King of Entertainment",
		Description: "Build at least two different entertainment venues.",
		TargetValue: 2,
		Reward: QuestReward{Gold: 70000, Reputation: 100, ResearchPoints: 15,
			UnlockShops: []ShopType{LiveMusicHall}},
	},
	{
		ID: "HIRE_FIRST_STAFF", Title: "First Hire",
		Description: "Hire your first employee.",
		TargetValue: 1,
		Reward:      QuestReward{Gold: 2000, Reputation: 10, ResearchPoints: 2},
	},
}

// QuestByID looks up a quest definition.
func QuestByID(id string) (Quest, bool) {
	for _, q := range Quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// EntertainmentQuestShops are the venue types counted by the
// ENTERTAINMENT_ZONE quest.
var EntertainmentQuestShops = []ShopType{Cinema, BowlingAlley, Karaoke, Arcade, VRZone}
