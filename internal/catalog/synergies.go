package catalog

// CategoryCount is a synergy requirement on shop categories rather than
// concrete shop types.
type CategoryCount struct {
	Category ShopCategory
	Count    int
}

// Synergy is a floor-level combo bonus. A floor activates a synergy when it
// contains every shop type in RequiredShopTypes and satisfies every category
// count in RequiredCategories.
type Synergy struct {
	ID                 string
	Name               string
	RequiredShopTypes  []ShopType
	RequiredCategories []CategoryCount
	IncomeBonus        float64 // fractional, 0.1 = +10%
	ReputationBonus    int
	Description        string
	Message            string
}

var Synergies = []Synergy{
	{
		ID: "DESSERT_TIME", Name: "Dessert Time",
		RequiredShopTypes: []ShopType{Bakery, Cafe},
		IncomeBonus:       0.10, ReputationBonus: 5,
		Description: "Bakery + Cafe. Sweet treats and coffee are a perfect match.",
		Message:     "🍰 Dessert Time synergy! The bakery and cafe boost each other!",
	},
	{
		ID: "FOOD_COURT_BASIC", Name: "Mini Food Court",
		RequiredCategories: []CategoryCount{{Category: CategoryFood, Count: 3}},
		IncomeBonus:        0.15, ReputationBonus: 10,
		Description: "Three food shops on one floor. More choice for hungry visitors.",
		Message:     "🍽️ Mini Food Court! The food shops on this floor are booming!",
	},
	{
		ID: "KIDS_CORNER", Name: "Kids Corner",
		RequiredShopTypes: []ShopType{ToyStore, ChildrensClothing},
		IncomeBonus:       0.12, ReputationBonus: 8,
		Description: "Toy store + children's clothing. A paradise for kids.",
		Message:     "🎈 Kids Corner! Toy and clothing sales are up!",
	},
	{
		ID: "ENTERTAINMENT_HUB_BASIC", Name: "Fun Zone",
		RequiredShopTypes: []ShopType{Arcade, ToyStore},
		IncomeBonus:       0.10, ReputationBonus: 7,
		Description: "Arcade + toy store. Double the fun.",
		Message:     "🎉 Fun Zone! The arcade and toy store draw more visitors!",
	},
	{
		ID: "FASHION_STREET_ENTRANCE", Name: "Fashion Street",
		RequiredShopTypes: []ShopType{FashionApparel, ShoeStore, BagStore},
		IncomeBonus:       0.20, ReputationBonus: 15,
		Description: "Apparel, shoes and bags form a fashion street.",
		Message:     "👠 Fashion Street! Apparel, shoe and bag shops feed off each other!",
	},
	{
		ID: "LUXURY_AVENUE", Name: "Luxury Avenue",
		RequiredShopTypes: []ShopType{LuxuryBoutique, JewelryStore, Steakhouse},
		IncomeBonus:       0.25, ReputationBonus: 30,
		Description: "Premium stores side by side captivate wealthy patrons.",
		Message:     "💎 Luxury Avenue! The flagship stores shine!",
	},
	{
		ID: "TECH_PARADISE", Name: "Tech Paradise",
		RequiredShopTypes: []ShopType{ElectronicsStore, VRZone, Arcade},
		IncomeBonus:       0.18, ReputationBonus: 20,
		Description: "Electronics, VR and gaming meet cutting-edge fun.",
		Message:     "💡 Tech Paradise! The high-tech shops come alive!",
	},
	{
		ID: "FULL_FOOD_COURT", Name: "Grand Food Court",
		RequiredCategories: []CategoryCount{{Category: CategoryFood, Count: 5}},
		IncomeBonus:        0.25, ReputationBonus: 25,
		Description: "Five or more food shops on one floor. A foodie heaven.",
		Message:     "🍲 Grand Food Court! This floor is the center of good eating!",
	},
}

// SynergyByID looks up a synergy definition.
func SynergyByID(id string) (Synergy, bool) {
	for _, s := range Synergies {
		if s.ID == id {
			return s, true
		}
	}
	return Synergy{}, false
}
