// Package brand stores the brand configuration that shapes every generated
// quest: voice, audience, campaign objectives and the reward pool.
package brand

// Config is the brand configuration document.
type Config struct {
	BrandName           string       `json:"brandName"`
	Market              string       `json:"market"`
	Tone                string       `json:"tone"`
	Theme               string       `json:"theme"`
	DefaultCampaignGoal string       `json:"defaultCampaignGoal"`
	PrimaryObjectives   []string     `json:"primaryObjectives"`
	RewardPool          []RewardItem `json:"rewardPool"`
	Guardrails          string       `json:"guardrails"`
}

// RewardItem is one reward the brand is willing to hand out.
type RewardItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Conditions  string `json:"conditions"`
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.PrimaryObjectives = append([]string(nil), c.PrimaryObjectives...)
	out.RewardPool = append([]RewardItem(nil), c.RewardPool...)
	return &out
}

// Defaults returns the built-in Roastery Realm Coffee configuration.
func Defaults() *Config {
	return &Config{
		BrandName: "Roastery Realm Coffee",
		Market:    "Urban Indian coffee drinkers in metros like Bengaluru, Mumbai, Delhi, Pune",
		Tone:      "playful, warm, premium, coffee-nerdy but approachable",
		Theme:     "coffee journeys, roastery realms, brew mastery, streaks, points",

		DefaultCampaignGoal: "increase-order-value",
		PrimaryObjectives: []string{
			"increase-order-value",
			"drive-new-product-trial",
			"boost-social-shares",
		},
		RewardPool: []RewardItem{
			{
				ID:          "discount10",
				Type:        "discount",
				Label:       "10% off any coffee bag",
				Description: "Gentle nudge to add one more bag to the cart.",
				Conditions:  "Valid on coffee beans only, for 3 days.",
			},
			{
				ID:          "discount15-new-origin",
				Type:        "discount",
				Label:       "15% off this month’s single-origin",
				Description: "Encourages upgrading to a more premium or new single-origin.",
				Conditions:  "Applicable only on featured single-origin SKUs.",
			},
			{
				ID:          "free-shipping-weekend",
				Type:        "discount",
				Label:       "Free shipping weekend",
				Description: "Removes friction for topping up subscriptions.",
				Conditions:  "Valid on orders above ₹699, this weekend only.",
			},
			{
				ID:          "guide-pourover",
				Type:        "exclusive-content",
				Label:       "Pour-over Mastery Mini Guide",
				Description: "Short, practical video + steps for perfect pour-over.",
				Conditions:  "Unlocked after completing a discovery challenge.",
			},
			{
				ID:          "brew-along-session",
				Type:        "exclusive-content",
				Label:       "Live Brew-Along Session invite",
				Description: "Join our barista for a live Zoom session on better home brewing.",
				Conditions:  "Limited seats; requires RSVP from the quest screen.",
			},
			{
				ID:          "early-single-origin",
				Type:        "early-access",
				Label:       "Early access to next single-origin drop",
				Description: "Reserve a limited micro-lot before it goes public.",
				Conditions:  "Limited quantity, 48-hour early window.",
			},
			{
				ID:          "badge-espresso-ace",
				Type:        "badge",
				Label:       "Espresso Ace badge",
				Description: "Profile badge for completing multiple espresso-related quests.",
				Conditions:  "Purely cosmetic, shows on profile and leaderboard.",
			},
			{
				ID:          "badge-south-indian-legend",
				Type:        "badge",
				Label:       "South Indian Legend badge",
				Description: "For users who complete a filter-coffee-centric quest series.",
				Conditions:  "Unlock after 3 South Indian filter challenges.",
			},
			{
				ID:          "comeback-boost",
				Type:        "comeback",
				Label:       "Welcome Back Boost",
				Description: "Extra loyalty points for returning after a break and completing a quest.",
				Conditions:  "For users inactive for 21+ days.",
			},
			{
				ID:          "refer-friend-bonus",
				Type:        "other",
				Label:       "Refer-a-friend bonus",
				Description: "Bonus points or discount unlocked if they share the quest and a friend orders.",
				Conditions:  "Reward is granted when referred friend places an order above a threshold.",
			},
			{
				ID:          "mystery-sampler",
				Type:        "other",
				Label:       "Mystery sampler add-on",
				Description: "Small sampler of a surprise coffee with their next order to spark discovery.",
				Conditions:  "Available once per user per season.",
			},
		},
		Guardrails: "Avoid manipulative language. Do not guilt-trip the user. Stay respectful, friendly, and transparent about rewards and conditions.",
	}
}
