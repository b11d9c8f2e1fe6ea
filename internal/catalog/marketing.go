package catalog

// CampaignEffects are the modifiers a running marketing campaign applies.
type CampaignEffects struct {
	AttractionBoost   int
	IncomeMultiplier  float64 // 0 means no income effect
	ReputationOnStart int
}

// MarketingCampaign is a purchasable timed promotion. Only one campaign can
// run at a time.
type MarketingCampaign struct {
	ID            string
	Name          string
	Emoji         string
	Description   string
	Cost          int
	DurationTicks int
	Effects       CampaignEffects
	MinReputation int
	OneShot       bool // can run only once per store
}

var MarketingCampaigns = []MarketingCampaign{
	{
		ID: "FLYER_DISTRIBUTION", Name: "Flyer Distribution", Emoji: "📰",
		Description:   "The most basic marketing. Attracts a few more customers.",
		Cost:          5000,
		DurationTicks: TicksPerDay * 2,
		Effects:       CampaignEffects{AttractionBoost: 5, ReputationOnStart: 5},
	},
	{
		ID: "SOCIAL_MEDIA_ADS", Name: "Social Media Ads", Emoji: "📱",
		Description:   "Appeals to younger customers. Attraction plus a small income lift.",
		Cost:          15000,
		DurationTicks: TicksPerDay * 3,
		Effects:       CampaignEffects{AttractionBoost: 10, IncomeMultiplier: 1.1, ReputationOnStart: 15},
		MinReputation: 100,
	},
	{
		ID: "LOCAL_RADIO_SPOTS", Name: "Local Radio Spots", Emoji: "📻",
		Description:   "Spreads the store's name through the community.",
		Cost:          30000,
		DurationTicks: TicksPerDay * 5,
		Effects:       CampaignEffects{AttractionBoost: 5, IncomeMultiplier: 1.2, ReputationOnStart: 30},
		MinReputation: 250,
	},
	{
		ID: "SEASONAL_SALE_PROMO", Name: "Seasonal Sale Promo", Emoji: "🛍️",
		Description:   "Promotes a major sale event. Big gains in traffic and income.",
		Cost:          50000,
		DurationTicks: TicksPerDay * 7,
		Effects:       CampaignEffects{AttractionBoost: 20, IncomeMultiplier: 1.3, ReputationOnStart: 25},
		MinReputation: 500,
	},
	{
		ID: "GRAND_OPENING_BLITZ", Name: "Grand Opening Blitz", Emoji: "🎉",
		Description:   "Announces a new beginning in style. Huge effects across the board. Once per store.",
		Cost:          100000,
		DurationTicks: TicksPerDay * 5,
		Effects:       CampaignEffects{AttractionBoost: 30, IncomeMultiplier: 1.5, ReputationOnStart: 75},
		MinReputation: 20,
		OneShot:       true,
	},
}

// CampaignByID looks up a marketing campaign.
func CampaignByID(id string) (MarketingCampaign, bool) {
	for _, c := range MarketingCampaigns {
		if c.ID == id {
			return c, true
		}
	}
	return MarketingCampaign{}, false
}
