package catalog

// ResearchEffect is one concrete consequence of completing a research item.
// Each variant carries exactly the fields it needs.
type ResearchEffect interface {
	researchEffect()
}

// UnlockShopEffect makes a research-locked shop type buildable.
type UnlockShopEffect struct {
	Shop ShopType
}

// RaiseVOCCapEffect raises the maximum number of visible customer voice
// messages.
type RaiseVOCCapEffect struct {
	By int
}

// RaiseStaffCapEffect raises the maximum number of employed staff.
type RaiseStaffCapEffect struct {
	By int
}

// IncomeMultiplierEffect adds a standing income bonus. When Category is
// non-empty the bonus applies only to shops of that category.
type IncomeMultiplierEffect struct {
	Category ShopCategory // empty = all shops
	Bonus    float64      // fractional, 0.05 = +5%
}

func (UnlockShopEffect) researchEffect()       {}
func (RaiseVOCCapEffect) researchEffect()      {}
func (RaiseStaffCapEffect) researchEffect()    {}
func (IncomeMultiplierEffect) researchEffect() {}

// ResearchItem is a purchasable node in the research tree.
type ResearchItem struct {
	ID            string
	Name          string
	Emoji         string
	Description   string
	CostRP        int
	Effects       []ResearchEffect
	Prerequisites []string
	Tier          int
}

var ResearchItems = []ResearchItem{
	{
		ID: "BASIC_CUSTOMER_INSIGHTS", Name: "Basic Customer Insights", Emoji: "🧐",
		Description: "Raises the maximum number of visible customer voices by 2.",
		CostRP:      5,
		Effects:     []ResearchEffect{RaiseVOCCapEffect{By: 2}},
		Tier:        1,
	},
	{
		ID: "EFFICIENT_OPERATIONS_1", Name: "Efficient Operations I", Emoji: "⚙️",
		Description: "Increases the income of all Food shops by 5%.",
		CostRP:      15,
		Effects:     []ResearchEffect{IncomeMultiplierEffect{Category: CategoryFood, Bonus: 0.05}},
		Tier:        2,
	},
	{
		ID: "ADVANCED_MARKETING_TECHNIQUES", Name: "Advanced Marketing Techniques", Emoji: "📈",
		Description: "Unlocks deeper marketing research.",
		CostRP:      10,
		Effects:     nil,
		Prerequisites: []string{"BASIC_CUSTOMER_INSIGHTS"},
		Tier:          2,
	},
	{
		ID: "ROBOTICS_BREAKTHROUGH", Name: "Robotics Breakthrough", Emoji: "🤖",
		Description: "Unlocks construction of the Robotics Lab.",
		CostRP:      25,
		Effects:     []ResearchEffect{UnlockShopEffect{Shop: RoboticsLab}},
		Prerequisites: []string{"ADVANCED_MARKETING_TECHNIQUES"},
		Tier:          3,
	},
	{
		ID: "STAFF_CAPACITY_1", Name: "Staff Capacity I", Emoji: "👥",
		Description: "Raises the maximum number of employed staff by 2.",
		CostRP:      10,
		Effects:     []ResearchEffect{RaiseStaffCapEffect{By: 2}},
		Tier:        2,
	},
	{
		ID: "STAFF_CAPACITY_2", Name: "Staff Capacity II", Emoji: "👥+",
		Description: "Raises the maximum number of employed staff by 3 more.",
		CostRP:      25,
		Effects:     []ResearchEffect{RaiseStaffCapEffect{By: 3}},
		Prerequisites: []string{"STAFF_CAPACITY_1"},
		Tier:          3,
	},
}

// ResearchByID looks up a research item.
func ResearchByID(id string) (ResearchItem, bool) {
	for _, r := range ResearchItems {
		if r.ID == id {
			return r, true
		}
	}
	return ResearchItem{}, false
}
