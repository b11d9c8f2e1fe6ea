package catalog

// VOCSentiment classifies a customer voice message.
type VOCSentiment string

const (
	VOCPositive VOCSentiment = "positive"
	VOCNegative VOCSentiment = "negative"
	VOCNeutral  VOCSentiment = "neutral"
)

// VOCMessage is a customer voice template. Trigger conditions live in the
// simulation; a message with no condition is always eligible.
type VOCMessage struct {
	ID        string
	Message   string
	Sentiment VOCSentiment
}

var VOCMessages = []VOCMessage{
	{ID: "VOC_POSITIVE_GENERIC", Message: "This place is amazing! So much to see!", Sentiment: VOCPositive},
	{ID: "VOC_NEED_RESTROOM", Message: "My feet hurt... and where is the restroom?", Sentiment: VOCNegative},
	{ID: "VOC_NEED_MORE_FOOD_VARIETY", Message: "I'm hungry, but there's hardly anywhere to eat.", Sentiment: VOCNegative},
	{ID: "VOC_LOVE_THE_FOOD_COURT", Message: "The food court here is the best!", Sentiment: VOCPositive},
	{ID: "VOC_TOO_CROWDED", Message: "It's getting pretty crowded in here!", Sentiment: VOCNeutral},
	{ID: "VOC_EXPENSIVE", Message: "Some of these things are a bit pricey...", Sentiment: VOCNegative},
	{ID: "VOC_NEED_SEATING", Message: "I'm worn out from shopping. I wish there was somewhere to sit...", Sentiment: VOCNegative},
	{ID: "VOC_LOVE_THE_ATMOSPHERE", Message: "I love the atmosphere of this store!", Sentiment: VOCPositive},
	{ID: "VOC_LOW_CLEANLINESS", Message: "The store looks a bit messy... it could use a cleaning.", Sentiment: VOCNegative},
}

// VOCByID looks up a voice message template.
func VOCByID(id string) (VOCMessage, bool) {
	for _, v := range VOCMessages {
		if v.ID == id {
			return v, true
		}
	}
	return VOCMessage{}, false
}
