package quest

import "fmt"

// Thresholds for the rule-based defaults.
const (
	lapsedChallengeDays = 7
	lapsedRewardDays    = 10
	highSpenderCart     = 1500
	seniorLevel         = 4
	challengeXP         = 150
	challengeBonus      = 100
	lapsedBonus         = 250
)

func (u UserProfile) lapsed(days int) bool {
	return u.Behavior.LastOrderDaysAgo > days
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 && list[0] != "" {
		return list[0]
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// DefaultNarrative picks the story opener for the user's loyalty tier.
func DefaultNarrative(u UserProfile) string {
	name := orDefault(u.Name, "friend")
	switch level := u.Loyalty.Level; {
	case level <= 2:
		return fmt.Sprintf("Welcome to the Roastery Realm, %s. You’ve just unlocked the first gates of the Coffee Quest. From the bustle of %s, your journey begins with simple beans and big curiosity. Every sip you choose today helps shape your personal brew story.",
			name, orDefault(u.City, "your city"))
	case level <= 4:
		return fmt.Sprintf("%s, the roastery crew now recognises you as a serious brewer. In the mid-level chambers, your choices unlock hidden tasting notes and limited micro-lots. Today, the beans whisper of new experiments waiting in your cart.", name)
	default:
		return fmt.Sprintf("The Roastery Council greets you, %s. As a high-tier Coffee Keeper, your palate helps decide the future of upcoming Indian-origin blends. One more challenge completed today, and a secret batch may be revealed only to you.", name)
	}
}

// DefaultChallenge picks the challenge for the user's activity and tier.
func DefaultChallenge(u UserProfile) Challenge {
	name := orDefault(u.Name, "friend")
	favDrink := firstOr(u.Preferences.FavDrinks, "coffee")

	c := Challenge{XPReward: challengeXP, BonusPoints: challengeBonus}
	switch {
	case u.lapsed(lapsedChallengeDays):
		c.Title = "Revive Your Brew Streak"
		c.Description = fmt.Sprintf("Hey %s, your coffee streak is calling! Explore our latest %s roast and add any %s blend to your cart. Complete the checkout to revive your streak and unlock bonus points.",
			name, orDefault(u.Preferences.Roast, "signature"), favDrink)
		c.SuccessCriteria = "Complete a purchase with any recommended coffee from the dashboard."
		c.BonusPoints = lapsedBonus
	case u.Loyalty.Level >= seniorLevel:
		c.Title = "Brew Master Challenge"
		c.Description = fmt.Sprintf("You’re already a pro, %s. Today’s challenge: brew a cup using your %s, then explore a new single-origin on our store and add it to your wishlist.",
			name, firstOr(u.Preferences.BrewMethods, "favourite brewer"))
		c.SuccessCriteria = "Add at least one new single-origin to your wishlist."
	default:
		c.Title = "Discover Your Signature Cup"
		c.Description = fmt.Sprintf("Let’s find your perfect brew, %s. Take today’s quick flavour quiz, then try any recommended %s from our curated list.", name, favDrink)
		c.SuccessCriteria = "Complete the in-app flavour quiz and view at least one product detail page."
	}
	return c
}

// DefaultReward picks the reward from the user's stated preference, falling
// back on tier, then on lapse, then on a badge.
func DefaultReward(u UserProfile) Reward {
	name := orDefault(u.Name, "friend")
	pref := u.Preferences.RewardPreference

	switch {
	case pref == RewardDiscount:
		discount := 10
		if u.Behavior.TypicalCartValue >= highSpenderCart {
			discount = 20
		}
		return Reward{
			Type:        RewardDiscount,
			Label:       fmt.Sprintf("%d%% off on your next bag", discount),
			Code:        fmt.Sprintf("BREW%d", discount),
			Description: fmt.Sprintf("Nice going, %s! Use this personalised code to get %d%% off on any coffee beans in your next order.", name, discount),
			Conditions:  "Valid for 3 days on coffee beans only.",
		}
	case pref == RewardExclusiveContent:
		return Reward{
			Type:        RewardExclusiveContent,
			Label:       "Unlock a Guided Brew Session",
			Description: "You’ve unlocked an exclusive step-by-step brew guide tailored to your taste profile. Learn how to perfect your next pour-over in under 10 minutes.",
			Conditions:  "Available in your ‘Brew Academy’ section.",
		}
	case pref == RewardEarlyAccess || u.Loyalty.Level >= seniorLevel:
		return Reward{
			Type:        RewardEarlyAccess,
			Label:       "Early Access: Limited Single-Origin",
			Description: fmt.Sprintf("Because your taste is legendary, %s, you get early access to our next limited single-origin drop. Reserve your bag before it goes public.", name),
			Conditions:  "Limited quantity; early access window 48 hours.",
		}
	case u.lapsed(lapsedRewardDays):
		return Reward{
			Type:        RewardComeback,
			Label:       "Welcome Back Perk",
			Code:        "WELCOME-BACK",
			Description: fmt.Sprintf("We’ve missed you, %s. Here’s free shipping on your next order if you complete today’s quest.", name),
			Conditions:  "Valid for 1 order over ₹500.",
		}
	default:
		return Reward{
			Type:        RewardBadge,
			Label:       "Roastery Explorer Badge",
			Description: "You’ve earned a new profile badge for completing today’s quest. Flaunt it in the community leaderboard.",
			Conditions:  "Visible on your profile immediately.",
		}
	}
}

// DefaultProgress is the user's standing after completing challenge.
func DefaultProgress(u UserProfile, c Challenge) Progress {
	level := u.Loyalty.Level
	if level < 1 {
		level = 1
	}
	return Progress{
		Level:      level,
		Points:     u.Loyalty.Points + c.BonusPoints,
		StreakDays: u.Loyalty.StreakDays + 1,
	}
}

// DefaultExperience is the fully rule-based quest for u.
func DefaultExperience(u UserProfile) Experience {
	c := DefaultChallenge(u)
	return Experience{
		User:      u.Summary(),
		Narrative: DefaultNarrative(u),
		Challenge: c,
		Reward:    DefaultReward(u),
		Progress:  DefaultProgress(u, c),
	}
}

// CTA label used when the model omits one.
const DefaultCTALabel = "Start today's quest"

const rewardExpiryDays = 3

// pushLimit is the longest push body, in runes.
const pushLimit = 90

// DefaultChannelAssets derives campaign copy from the experience itself.
func DefaultChannelAssets(exp Experience) ChannelAssets {
	name := orDefault(exp.User.Name, "there")
	value := exp.Reward.Code
	if value == "" {
		value = exp.Reward.Label
	}

	return ChannelAssets{
		Email: EmailAsset{
			Subject:     fmt.Sprintf("%s, today's quest: %s", name, exp.Challenge.Title),
			PreviewText: fmt.Sprintf("Complete it to unlock %s.", exp.Reward.Label),
			BodyText: fmt.Sprintf("%s\n\n%s\n\nReward: %s. %s",
				exp.Narrative, exp.Challenge.Description, exp.Reward.Label, exp.Reward.Conditions),
		},
		Push: PushAsset{
			Title: exp.Challenge.Title,
			Body:  truncateRunes(fmt.Sprintf("%s, %s is waiting for you.", name, exp.Reward.Label), pushLimit),
		},
		InApp: InAppAsset{
			Heading:  exp.Challenge.Title,
			Body:     exp.Challenge.Description,
			CTALabel: DefaultCTALabel,
		},
		RewardConfig: RewardConfig{
			InternalName: rewardInternalName(exp),
			Type:         orDefault(exp.Reward.Type, RewardOther),
			Value:        value,
			Conditions:   exp.Reward.Conditions,
			ExpiryDays:   rewardExpiryDays,
		},
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
