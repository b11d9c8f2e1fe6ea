package catalog

// CustomerType identifies a customer segment.
type CustomerType string

const (
	Shopper           CustomerType = "SHOPPER"
	Student           CustomerType = "STUDENT"
	Teenager          CustomerType = "TEENAGER"
	Professional      CustomerType = "PROFESSIONAL"
	Child             CustomerType = "CHILD"
	FamilyGroup       CustomerType = "FAMILY_GROUP"
	Foodie            CustomerType = "FOODIE"
	Senior            CustomerType = "SENIOR"
	Gamer             CustomerType = "GAMER"
	Techie            CustomerType = "TECHIE"
	PetOwner          CustomerType = "PET_OWNER"
	FitnessEnthusiast CustomerType = "FITNESS_ENTHUSIAST"
	MusicFan          CustomerType = "MUSIC_FAN"
	Tourist           CustomerType = "TOURIST"
	ArtLover          CustomerType = "ART_LOVER"
	Trendsetter       CustomerType = "TRENDSETTER"
	WealthyPatron     CustomerType = "WEALTHY_PATRON"
)

// CustomerUnlock pairs a customer type with the reputation that unlocks it.
type CustomerUnlock struct {
	Reputation int
	Type       CustomerType
}

// CustomerUnlocks is ordered by unlock reputation ascending.
var CustomerUnlocks = []CustomerUnlock{
	{0, Shopper},
	{20, Student},
	{80, Teenager},
	{150, Professional},
	{200, Child},
	{250, FamilyGroup},
	{300, Foodie},
	{350, Senior},
	{400, Gamer},
	{450, Techie},
	{500, PetOwner},
	{600, FitnessEnthusiast},
	{700, MusicFan},
	{800, Tourist},
	{900, ArtLover},
	{1000, Trendsetter},
	{1200, WealthyPatron},
}

// CustomerEmojis maps each segment to its display emoji.
var CustomerEmojis = map[CustomerType]string{
	Student:           "🚶‍♀️",
	Shopper:           "🛍️",
	Professional:      "👨‍💼",
	Senior:            "👵",
	Child:             "🧒",
	Teenager:          "🧑‍🎤",
	Tourist:           "📸",
	FamilyGroup:       "👨‍👩‍👧‍👦",
	WealthyPatron:     "🎩",
	PetOwner:          "🐕",
	FitnessEnthusiast: "🏋️‍♂️",
	Techie:            "🤖",
	Foodie:            "😋",
	ArtLover:          "🎨",
	Gamer:             "🎮",
	MusicFan:          "🎧",
	Trendsetter:       "✨",
}

// CustomerNames maps each segment to a display name.
var CustomerNames = map[CustomerType]string{
	Student:           "Student",
	Shopper:           "Shopper",
	Professional:      "Professional",
	Senior:            "Senior",
	Child:             "Child",
	Teenager:          "Teenager",
	Tourist:           "Tourist",
	FamilyGroup:       "Family Group",
	WealthyPatron:     "Wealthy Patron",
	PetOwner:          "Pet Owner",
	FitnessEnthusiast: "Fitness Enthusiast",
	Techie:            "Techie",
	Foodie:            "Foodie",
	ArtLover:          "Art Lover",
	Gamer:             "Gamer",
	MusicFan:          "Music Fan",
	Trendsetter:       "Trendsetter",
}

// UnlockedCustomerTypes returns the segments available at the given
// reputation, in unlock order.
func UnlockedCustomerTypes(reputation int) []CustomerType {
	var out []CustomerType
	for _, u := range CustomerUnlocks {
		if reputation >= u.Reputation {
			out = append(out, u.Type)
		}
	}
	return out
}
