package catalog

// Core pacing and economy constants. One tick is one simulated minute of
// store operation; sixty ticks make a day.
const (
	TicksPerDay    = 60
	TickIntervalMS = 1000

	InitialGold       = 50000
	InitialReputation = 0
	InitialRP         = 0
	RPPerDay          = 1
	InitialFloors     = 1
	SlotsPerFloor     = 5

	NewFloorCostBase       = 100000
	NewFloorCostMultiplier = 1.5
	InvestCostBase         = 500
	InvestCostMultiplier   = 1.3
	DemolishRefundRate     = 0.25
	MaxShopLevel           = 10

	DefaultCleanliness      = 70
	CleanlinessDecayPerDay  = 5
	InitialMaxVOCMessages   = 5
	InitialMaxStaffSlots    = 3
	ApplicantChancePerDay   = 0.6
	MaxApplicants           = 5

	EventStartChance = 0.3
	VOCCheckTicks    = TicksPerDay / 4
	VOCStartChance   = 0.2
)

// AI rival pacing.
const (
	AIInitialReputationMin = 20
	AIInitialReputationMax = 50
	AIGrowthIntervalTicks  = TicksPerDay / 2
	AIRepGainBase          = 2
	AIRepGainPerPlayerRank = 0.5
	AILevelAttractionBonus = 30
)

// AILevelThresholds is the reputation required for rival levels 1..5.
var AILevelThresholds = []int{0, 150, 400, 800, 1500}

// Customer attraction weights.
const (
	PlayerRepAttractionWeight         = 1.0
	PlayerShopCountAttractionWeight   = 2.0
	PlayerAvgLevelAttractionWeight    = 5.0
	PlayerCleanlinessAttractionWeight = 0.5
	AIRepAttractionWeight             = 1.0
	BasePotentialCustomersPerTick     = 3
	CustomerGrowthPerDayFactor        = 0.05
	AttractionJitter                  = 0.1
)

// Delegation (autopilot) pacing and scoring.
const (
	DelegationBuildCheckTicks    = TicksPerDay / 3
	DelegationInvestCheckTicks   = TicksPerDay / 2
	DelegationStaffCheckTicks    = TicksPerDay / 2
	DelegationMarketingTicks     = TicksPerDay
	DelegationResearchTicks      = TicksPerDay
	DelegationNewFloorTicks      = TicksPerDay * 2

	DelegationReserveFixed      = 10000
	DelegationReservePercent    = 0.1
	DelegationRepWeight         = 2.0
	DelegationIncomeWeight      = 1.0
	DelegationCleanlinessTarget = 50
	DelegationFloorFillRatio    = 0.7
	DelegationMaxCheapFacility  = 2
)

// RivalNames is the pool of names for the competing store.
var RivalNames = []string{"Rival Mart", "Star Mall", "City Square", "Golden Plaza", "Ace Department Store"}

// StaffNames is the applicant name pool.
var StaffNames = []string{
	"Minjun Kim", "Seoyeon Lee", "Doyun Park", "Jiwoo Choi", "Hajun Jung",
	"Seoa Yun", "Jiho Kang", "Hayun Lim", "Eunwoo Song", "Yujin Han",
	"Jian Oh", "Yeeun Shin", "Siwoo Hwang", "Ara Jo", "Gunwoo Baek",
	"Naeun Ahn", "Dohyun Jang", "Chaewon Yu", "Yujun Seo", "Soyul Moon",
}
