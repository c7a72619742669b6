// Package quest builds the personalized daily quest: the types exchanged
// with clients, the rule-based defaults, normalization of model replies and
// the generator that drives the LLM.
package quest

// UserProfile is a customer as supplied by the caller. It is never mutated.
type UserProfile struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Segment     string      `json:"segment"`
	City        string      `json:"city"`
	Preferences Preferences `json:"preferences"`
	Behavior    Behavior    `json:"behavior"`
	Loyalty     Loyalty     `json:"loyalty"`
}

// Preferences are the customer's stated tastes.
type Preferences struct {
	Roast            string   `json:"roast"`
	FavDrinks        []string `json:"favDrinks"`
	Sweetness        string   `json:"sweetness"`
	RewardPreference string   `json:"rewardPreference"`
	BrewMethods      []string `json:"brewMethods"`
}

// Behavior is the customer's recent ordering history.
type Behavior struct {
	AvgMonthlyOrders float64 `json:"avgMonthlyOrders"`
	LastOrderDaysAgo int     `json:"lastOrderDaysAgo"`
	TypicalCartValue float64 `json:"typicalCartValue"`
}

// Loyalty is the customer's standing in the loyalty program.
type Loyalty struct {
	Level      int `json:"level"`
	Points     int `json:"points"`
	StreakDays int `json:"streakDays"`
}

// Summary returns the identifying fields echoed in every experience.
func (u UserProfile) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Segment: u.Segment, City: u.City}
}

// UserSummary identifies the customer an experience was built for.
type UserSummary struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Segment string `json:"segment"`
	City    string `json:"city"`
}

// Experience is one generated daily quest.
type Experience struct {
	User      UserSummary `json:"user"`
	Narrative string      `json:"narrative"`
	Challenge Challenge   `json:"challenge"`
	Reward    Reward      `json:"reward"`
	Progress  Progress    `json:"progress"`
}

// Challenge is the action the customer is asked to take today.
type Challenge struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	SuccessCriteria string `json:"successCriteria"`
	XPReward        int    `json:"xpReward"`
	BonusPoints     int    `json:"bonusPoints"`
}

// Reward types.
const (
	RewardDiscount         = "discount"
	RewardExclusiveContent = "exclusive-content"
	RewardEarlyAccess      = "early-access"
	RewardBadge            = "badge"
	RewardComeback         = "comeback"
	RewardOther            = "other"
)

// IsRewardType reports whether t is a known reward type.
func IsRewardType(t string) bool {
	switch t {
	case RewardDiscount, RewardExclusiveContent, RewardEarlyAccess, RewardBadge, RewardComeback, RewardOther:
		return true
	}
	return false
}

// Reward is what completing the challenge earns. Code is set for discounts.
type Reward struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
	Conditions  string `json:"conditions"`
}

// Progress is the loyalty standing after the challenge is completed.
type Progress struct {
	Level      int `json:"level"`
	Points     int `json:"points"`
	StreakDays int `json:"streakDays"`
}

// ChannelAssets is the campaign copy derived from an experience.
type ChannelAssets struct {
	Email        EmailAsset   `json:"email"`
	Push         PushAsset    `json:"push"`
	InApp        InAppAsset   `json:"inApp"`
	RewardConfig RewardConfig `json:"rewardConfig"`
}

type EmailAsset struct {
	Subject     string `json:"subject"`
	PreviewText string `json:"previewText"`
	BodyText    string `json:"bodyText"`
}

type PushAsset struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type InAppAsset struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	CTALabel string `json:"ctaLabel"`
}

// RewardConfig is the internal setup the CRM team creates for the reward.
type RewardConfig struct {
	InternalName string `json:"internalName"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	Conditions   string `json:"conditions"`
	ExpiryDays   int    `json:"expiryDays"`
}

// BatchResult is the outcome for one user of a batch run.
type BatchResult struct {
	Success   bool        `json:"success"`
	User      UserSummary `json:"user"`
	Narrative string      `json:"narrative,omitempty"`
	Challenge *Challenge  `json:"challenge,omitempty"`
	Reward    *Reward     `json:"reward,omitempty"`
	Progress  *Progress   `json:"progress,omitempty"`
	Error     string      `json:"error,omitempty"`
}
