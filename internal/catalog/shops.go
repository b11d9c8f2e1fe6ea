// Package catalog holds the static game data: shop definitions, synergies,
// research items, marketing campaigns, events, quests, customer types and
// store ranks. Everything here is immutable at runtime; dynamic state lives
// in the sim package.
package catalog

// ShopCategory groups shop types for synergy and research purposes.
type ShopCategory string

const (
	CategoryFood          ShopCategory = "FOOD"
	CategoryGoods         ShopCategory = "GOODS"
	CategoryEntertainment ShopCategory = "ENTERTAINMENT"
	CategoryService       ShopCategory = "SERVICE"
	CategoryFacility      ShopCategory = "FACILITY"
	CategorySpecial       ShopCategory = "SPECIAL"
)

// ShopType identifies a shop definition.
type ShopType string

const (
	Bakery             ShopType = "BAKERY"
	Cafe               ShopType = "CAFE"
	FastFood           ShopType = "FAST_FOOD"
	Restaurant         ShopType = "RESTAURANT"
	SushiBar           ShopType = "SUSHI_BAR"
	IceCreamParlor     ShopType = "ICE_CREAM_PARLOR"
	Pizzeria           ShopType = "PIZZERIA"
	Steakhouse         ShopType = "STEAKHOUSE"
	RamenShop          ShopType = "RAMEN_SHOP"
	JuiceBar           ShopType = "JUICE_BAR"
	Delicatessen       ShopType = "DELICATESSEN"
	FoodTruckZone      ShopType = "FOOD_TRUCK_ZONE"
	TeaHouse           ShopType = "TEA_HOUSE"
	Bookstore          ShopType = "BOOKSTORE"
	ToyStore           ShopType = "TOY_STORE"
	ChildrensClothing  ShopType = "CHILDRENS_CLOTHING"
	JewelryStore       ShopType = "JEWELRY_STORE"
	FlowerShop         ShopType = "FLOWER_SHOP"
	ElectronicsStore   ShopType = "ELECTRONICS_STORE"
	Supermarket        ShopType = "SUPERMARKET"
	LuxuryBoutique     ShopType = "LUXURY_BOUTIQUE"
	SportingGoods      ShopType = "SPORTING_GOODS"
	PetStore           ShopType = "PET_STORE"
	Pharmacy           ShopType = "PHARMACY"
	HomeGoods          ShopType = "HOME_GOODS"
	StationeryStore    ShopType = "STATIONERY_STORE"
	CosmeticsStore     ShopType = "COSMETICS_STORE"
	MusicStore         ShopType = "MUSIC_STORE"
	FashionApparel     ShopType = "FASHION_APPAREL"
	ShoeStore          ShopType = "SHOE_STORE"
	BagStore           ShopType = "BAG_STORE"
	SouvenirShop       ShopType = "SOUVENIR_SHOP"
	Arcade             ShopType = "ARCADE"
	Cinema             ShopType = "CINEMA"
	BowlingAlley       ShopType = "BOWLING_ALLEY"
	Karaoke            ShopType = "KARAOKE"
	ArtGallery         ShopType = "ART_GALLERY"
	VRZone             ShopType = "VR_ZONE"
	PhotoBooth         ShopType = "PHOTO_BOOTH"
	BoardGameCafe      ShopType = "BOARD_GAME_CAFE"
	LiveMusicHall      ShopType = "LIVE_MUSIC_HALL"
	Restroom           ShopType = "RESTROOM"
	HairSalon          ShopType = "HAIR_SALON"
	SpaNailSalon       ShopType = "SPA_NAIL_SALON"
	TravelAgency       ShopType = "TRAVEL_AGENCY"
	OpticalShop        ShopType = "OPTICAL_SHOP"
	ShoeRepair         ShopType = "SHOE_REPAIR"
	Laundromat         ShopType = "LAUNDROMAT"
	BankBranch         ShopType = "BANK_BRANCH"
	InformationDesk    ShopType = "INFORMATION_DESK"
	VendingMachineArea ShopType = "VENDING_MACHINE_AREA"
	LockerRoom         ShopType = "LOCKER_ROOM"
	NursingRoom        ShopType = "NURSING_ROOM"
	ATMKiosk           ShopType = "ATM_KIOSK"
	PublicSeatingArea  ShopType = "PUBLIC_SEATING_AREA"
	RoboticsLab        ShopType = "ROBOTICS_LAB"
)

// ShopDefinition describes a buildable shop type.
type ShopDefinition struct {
	ID             ShopType
	Name           string
	Emoji          string
	Category       ShopCategory
	Cost           int
	BaseIncome     int
	BaseReputation int
	MinReputation  int
	ResearchLocked bool
	Description    string
}

// Shops is the full shop registry keyed by type.
var Shops = map[ShopType]ShopDefinition{
	Bakery: {ID: Bakery, Name: "Bakery", Emoji: "🍞", Category: CategoryFood,
		Cost: 10000, BaseIncome: 20, BaseReputation: 5, Description: "Freshly baked bread every morning."},
	Cafe: {ID: Cafe, Name: "Cafe", Emoji: "☕", Category: CategoryFood,
		Cost: 15000, BaseIncome: 25, BaseReputation: 8, MinReputation: 50, Description: "Take a break with a cup of coffee."},
	FastFood: {ID: FastFood, Name: "Fast Food", Emoji: "🍔", Category: CategoryFood,
		Cost: 18000, BaseIncome: 30, BaseReputation: 6, MinReputation: 80, Description: "Quick and tasty meals."},
	Restaurant: {ID: Restaurant, Name: "Restaurant", Emoji: "🍜", Category: CategoryFood,
		Cost: 30000, BaseIncome: 50, BaseReputation: 12, MinReputation: 200, Description: "An upscale dining experience."},
	SushiBar: {ID: SushiBar, Name: "Sushi Bar", Emoji: "🍣", Category: CategoryFood,
		Cost: 45000, BaseIncome: 65, BaseReputation: 18, MinReputation: 400, Description: "Authentic sushi from the freshest catch."},
	IceCreamParlor: {ID: IceCreamParlor, Name: "Ice Cream Parlor", Emoji: "🍦", Category: CategoryFood,
		Cost: 12000, BaseIncome: 22, BaseReputation: 7, MinReputation: 70, Description: "Sweet, cool flavors for everyone."},
	Pizzeria: {ID: Pizzeria, Name: "Pizzeria", Emoji: "🍕", Category: CategoryFood,
		Cost: 28000, BaseIncome: 45, BaseReputation: 10, MinReputation: 180, Description: "Wood-fired Italian pizza."},
	Steakhouse: {ID: Steakhouse, Name: "Steakhouse", Emoji: "🥩", Category: CategoryFood,
		Cost: 60000, BaseIncome: 80, BaseReputation: 25, MinReputation: 500, Description: "Prime cuts, perfectly grilled."},
	RamenShop: {ID: RamenShop, Name: "Ramen Shop", Emoji: "🍥", Category: CategoryFood,
		Cost: 20000, BaseIncome: 35, BaseReputation: 9, MinReputation: 120, Description: "Rich, deep broth ramen."},
	JuiceBar: {ID: JuiceBar, Name: "Juice Bar", Emoji: "🍹", Category: CategoryFood,
		Cost: 13000, BaseIncome: 18, BaseReputation: 6, MinReputation: 60, Description: "Healthy juices from fresh fruit."},
	Delicatessen: {ID: Delicatessen, Name: "Delicatessen", Emoji: "🥪", Category: CategoryFood,
		Cost: 25000, BaseIncome: 40, BaseReputation: 11, MinReputation: 150, Description: "Fine sandwiches, salads, charcuterie."},
	FoodTruckZone: {ID: FoodTruckZone, Name: "Food Truck Zone", Emoji: "🚚", Category: CategoryFood,
		Cost: 35000, BaseIncome: 55, BaseReputation: 15, MinReputation: 250, Description: "Street food from around the world."},
	TeaHouse: {ID: TeaHouse, Name: "Tea House", Emoji: "🍵", Category: CategoryFood,
		Cost: 18000, BaseIncome: 28, BaseReputation: 9, MinReputation: 90, Description: "Traditional teas in a quiet setting."},

	Bookstore: {ID: Bookstore, Name: "Bookstore", Emoji: "📚", Category: CategoryGoods,
		Cost: 12000, BaseIncome: 15, BaseReputation: 7, Description: "A quiet corner for readers."},
	ToyStore: {ID: ToyStore, Name: "Toy Store", Emoji: "🧸", Category: CategoryGoods,
		Cost: 22000, BaseIncome: 35, BaseReputation: 9, MinReputation: 120, Description: "Toys for kids of all ages."},
	ChildrensClothing: {ID: ChildrensClothing, Name: "Children's Clothing", Emoji: "👕", Category: CategoryGoods,
		Cost: 20000, BaseIncome: 30, BaseReputation: 8, MinReputation: 100, Description: "Outfits for the little ones."},
	JewelryStore: {ID: JewelryStore, Name: "Jewelry Store", Emoji: "💎", Category: CategoryGoods,
		Cost: 50000, BaseIncome: 70, BaseReputation: 20, MinReputation: 300, Description: "Sparkling gems and fine metals."},
	FlowerShop: {ID: FlowerShop, Name: "Flower Shop", Emoji: "💐", Category: CategoryGoods,
		Cost: 16000, BaseIncome: 22, BaseReputation: 7, MinReputation: 60, Description: "Beautiful bouquets for every occasion."},
	ElectronicsStore: {ID: ElectronicsStore, Name: "Electronics Store", Emoji: "💻", Category: CategoryGoods,
		Cost: 70000, BaseIncome: 90, BaseReputation: 22, MinReputation: 600, Description: "The latest phones, laptops and appliances."},
	Supermarket: {ID: Supermarket, Name: "Supermarket", Emoji: "🛒", Category: CategoryGoods,
		Cost: 80000, BaseIncome: 100, BaseReputation: 15, MinReputation: 350, Description: "Groceries and essentials in one place."},
	LuxuryBoutique: {ID: LuxuryBoutique, Name: "Luxury Boutique", Emoji: "👜", Category: CategoryGoods,
		Cost: 120000, BaseIncome: 150, BaseReputation: 40, MinReputation: 1000, Description: "Top designer brands."},
	SportingGoods: {ID: SportingGoods, Name: "Sporting Goods", Emoji: "⚽", Category: CategoryGoods,
		Cost: 35000, BaseIncome: 50, BaseReputation: 13, MinReputation: 280, Description: "Apparel and gear for every sport."},
	PetStore: {ID: PetStore, Name: "Pet Store", Emoji: "🐾", Category: CategoryGoods,
		Cost: 28000, BaseIncome: 40, BaseReputation: 10, MinReputation: 180, Description: "Everything for beloved companions."},
	Pharmacy: {ID: Pharmacy, Name: "Pharmacy", Emoji: "💊", Category: CategoryGoods,
		Cost: 20000, BaseIncome: 25, BaseReputation: 8, MinReputation: 100, Description: "Medicine, supplements and hygiene goods."},
	HomeGoods: {ID: HomeGoods, Name: "Home Goods", Emoji: "🛋️", Category: CategoryGoods,
		Cost: 45000, BaseIncome: 60, BaseReputation: 16, MinReputation: 320, Description: "Furniture, bedding and kitchenware."},
	StationeryStore: {ID: StationeryStore, Name: "Stationery Store", Emoji: "✏️", Category: CategoryGoods,
		Cost: 9000, BaseIncome: 12, BaseReputation: 4, MinReputation: 30, Description: "School and office supplies."},
	CosmeticsStore: {ID: CosmeticsStore, Name: "Cosmetics Store", Emoji: "💄", Category: CategoryGoods,
		Cost: 30000, BaseIncome: 45, BaseReputation: 12, MinReputation: 220, Description: "Skincare and makeup brands."},
	MusicStore: {ID: MusicStore, Name: "Music Store", Emoji: "🎸", Category: CategoryGoods,
		Cost: 25000, BaseIncome: 38, BaseReputation: 10, MinReputation: 160, Description: "Records, vinyl and instruments."},
	FashionApparel: {ID: FashionApparel, Name: "Fashion Apparel", Emoji: "👗", Category: CategoryGoods,
		Cost: 40000, BaseIncome: 55, BaseReputation: 14, MinReputation: 250, Description: "Trendy clothing for all."},
	ShoeStore: {ID: ShoeStore, Name: "Shoe Store", Emoji: "👟", Category: CategoryGoods,
		Cost: 32000, BaseIncome: 48, BaseReputation: 11, MinReputation: 200, Description: "Sneakers, dress shoes and more."},
	BagStore: {ID: BagStore, Name: "Bag Store", Emoji: "🎒", Category: CategoryGoods,
		Cost: 30000, BaseIncome: 42, BaseReputation: 10, MinReputation: 190, Description: "Handbags, backpacks and luggage."},
	SouvenirShop: {ID: SouvenirShop, Name: "Souvenir Shop", Emoji: "🎁", Category: CategoryGoods,
		Cost: 15000, BaseIncome: 25, BaseReputation: 8, MinReputation: 100, Description: "Keepsakes to remember the visit."},

	Arcade: {ID: Arcade, Name: "Arcade", Emoji: "🕹️", Category: CategoryEntertainment,
		Cost: 25000, BaseIncome: 40, BaseReputation: 10, MinReputation: 150, Description: "Fun and games for everyone."},
	Cinema: {ID: Cinema, Name: "Cinema", Emoji: "🎬", Category: CategoryEntertainment,
		Cost: 75000, BaseIncome: 85, BaseReputation: 20, MinReputation: 550, Description: "The latest films on the big screen."},
	BowlingAlley: {ID: BowlingAlley, Name: "Bowling Alley", Emoji: "🎳", Category: CategoryEntertainment,
		Cost: 60000, BaseIncome: 70, BaseReputation: 18, MinReputation: 450, Description: "Strikes and spares with friends."},
	Karaoke: {ID: Karaoke, Name: "Karaoke", Emoji: "🎤", Category: CategoryEntertainment,
		Cost: 40000, BaseIncome: 60, BaseReputation: 15, MinReputation: 300, Description: "Sing the stress away."},
	ArtGallery: {ID: ArtGallery, Name: "Art Gallery", Emoji: "🖼️", Category: CategoryEntertainment,
		Cost: 35000, BaseIncome: 30, BaseReputation: 25, MinReputation: 400, Description: "A space for fine art."},
	VRZone: {ID: VRZone, Name: "VR Zone", Emoji: "🕶️", Category: CategoryEntertainment,
		Cost: 50000, BaseIncome: 75, BaseReputation: 17, MinReputation: 380, Description: "Immersive virtual reality experiences."},
	PhotoBooth: {ID: PhotoBooth, Name: "Photo Booth", Emoji: "📸", Category: CategoryEntertainment,
		Cost: 8000, BaseIncome: 15, BaseReputation: 5, MinReputation: 40, Description: "Capture the moment."},
	BoardGameCafe: {ID: BoardGameCafe, Name: "Board Game Cafe", Emoji: "🎲", Category: CategoryEntertainment,
		Cost: 28000, BaseIncome: 40, BaseReputation: 12, MinReputation: 170, Description: "Board games with drinks."},
	LiveMusicHall: {ID: LiveMusicHall, Name: "Live Music Hall", Emoji: "🎶", Category: CategoryEntertainment,
		Cost: 65000, BaseIncome: 70, BaseReputation: 22, MinReputation: 500, Description: "Live performances across genres."},

	Restroom: {ID: Restroom, Name: "Restroom", Emoji: "🚽", Category: CategoryFacility,
		Cost: 5000, BaseIncome: 0, BaseReputation: 1, MinReputation: 10, Description: "An essential convenience."},
	HairSalon: {ID: HairSalon, Name: "Hair Salon", Emoji: "💇‍♀️", Category: CategoryService,
		Cost: 35000, BaseIncome: 50, BaseReputation: 12, MinReputation: 260, Description: "Trendy styles from the pros."},
	SpaNailSalon: {ID: SpaNailSalon, Name: "Spa & Nail Salon", Emoji: "💅", Category: CategoryService,
		Cost: 45000, BaseIncome: 60, BaseReputation: 15, MinReputation: 340, Description: "Relaxation and beauty."},
	TravelAgency: {ID: TravelAgency, Name: "Travel Agency", Emoji: "✈️", Category: CategoryService,
		Cost: 25000, BaseIncome: 30, BaseReputation: 10, MinReputation: 200, Description: "Dream trips made real."},
	OpticalShop: {ID: OpticalShop, Name: "Optical Shop", Emoji: "👓", Category: CategoryService,
		Cost: 22000, BaseIncome: 35, BaseReputation: 9, MinReputation: 130, Description: "Eye exams, glasses and lenses."},
	ShoeRepair: {ID: ShoeRepair, Name: "Shoe Repair", Emoji: "👞", Category: CategoryService,
		Cost: 10000, BaseIncome: 15, BaseReputation: 4, MinReputation: 50, Description: "Old shoes made new."},
	Laundromat: {ID: Laundromat, Name: "Laundromat", Emoji: "🧺", Category: CategoryService,
		Cost: 18000, BaseIncome: 20, BaseReputation: 5, MinReputation: 90, Description: "Wash and dry in one stop."},
	BankBranch: {ID: BankBranch, Name: "Bank Branch", Emoji: "🏦", Category: CategoryService,
		Cost: 50000, BaseIncome: 10, BaseReputation: 15, MinReputation: 400, Description: "Full banking services."},

	InformationDesk: {ID: InformationDesk, Name: "Information Desk", Emoji: "ℹ️", Category: CategoryFacility,
		Cost: 8000, BaseIncome: 0, BaseReputation: 5, MinReputation: 20, Description: "Guidance and customer support."},
	VendingMachineArea: {ID: VendingMachineArea, Name: "Vending Machine Area", Emoji: "🥤", Category: CategoryFacility,
		Cost: 3000, BaseIncome: 5, BaseReputation: 2, Description: "Drinks and snacks in a hurry."},
	LockerRoom: {ID: LockerRoom, Name: "Locker Room", Emoji: "🔑", Category: CategoryFacility,
		Cost: 6000, BaseIncome: 2, BaseReputation: 3, MinReputation: 30, Description: "Safe storage for heavy bags."},
	NursingRoom: {ID: NursingRoom, Name: "Nursing Room", Emoji: "🍼", Category: CategoryFacility,
		Cost: 7000, BaseIncome: 0, BaseReputation: 4, MinReputation: 50, Description: "A cozy space for parents and babies."},
	ATMKiosk: {ID: ATMKiosk, Name: "ATM Kiosk", Emoji: "🏧", Category: CategoryFacility,
		Cost: 10000, BaseIncome: 1, BaseReputation: 2, MinReputation: 70, Description: "Cash withdrawals and simple banking."},
	PublicSeatingArea: {ID: PublicSeatingArea, Name: "Public Seating Area", Emoji: "🛋", Category: CategoryFacility,
		Cost: 12000, BaseIncome: 0, BaseReputation: 3, MinReputation: 80, Description: "Comfortable chairs for a shopping break."},

	RoboticsLab: {ID: RoboticsLab, Name: "Robotics Lab", Emoji: "🤖", Category: CategorySpecial,
		Cost: 250000, BaseIncome: 200, BaseReputation: 50, ResearchLocked: true,
		Description: "A showcase of future technology. High prestige, high income."},
}

// ShopByID looks up a shop definition.
func ShopByID(id ShopType) (ShopDefinition, bool) {
	def, ok := Shops[id]
	return def, ok
}

// CheapFacilities lists shop types the autopilot refuses to stack beyond a
// small count.
var CheapFacilities = []ShopType{
	VendingMachineArea,
	PhotoBooth,
}
