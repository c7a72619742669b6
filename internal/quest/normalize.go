package quest

import (
	"math"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jackzampolin/coffeequest/internal/prompts/channel"
	"github.com/jackzampolin/coffeequest/internal/prompts/experience"
	"github.com/jackzampolin/coffeequest/internal/providers"
)

// fields reads typed values out of a decoded JSON object, recording the
// dotted path of every value it had to default.
type fields struct {
	defaulted []string
}

func (f *fields) mark(path string) {
	f.defaulted = append(f.defaulted, path)
}

func object(m map[string]any, key string) map[string]any {
	obj, _ := m[key].(map[string]any)
	return obj
}

func (f *fields) str(m map[string]any, key, path, def string) string {
	if s, ok := m[key].(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	f.mark(path)
	return def
}

// count accepts non-negative numbers; fractions are truncated.
func (f *fields) count(m map[string]any, key, path string, def int) int {
	if n, ok := m[key].(float64); ok && n >= 0 && !math.IsInf(n, 0) && n <= math.MaxInt32 {
		return int(n)
	}
	f.mark(path)
	return def
}

// Normalize turns a decoded model reply into an Experience. Every value that
// is missing, mistyped, empty or negative is replaced with the rule-based
// default for user, and its path is returned in defaulted.
func Normalize(raw map[string]any, user UserProfile) (exp Experience, defaulted []string) {
	f := &fields{}

	exp.User = user.Summary()
	exp.Narrative = f.str(raw, "narrative", "narrative", DefaultNarrative(user))

	dc := DefaultChallenge(user)
	c := object(raw, "challenge")
	exp.Challenge = Challenge{
		Title:           f.str(c, "title", "challenge.title", dc.Title),
		Description:     f.str(c, "description", "challenge.description", dc.Description),
		SuccessCriteria: f.str(c, "successCriteria", "challenge.successCriteria", dc.SuccessCriteria),
		XPReward:        f.count(c, "xpReward", "challenge.xpReward", dc.XPReward),
		BonusPoints:     f.count(c, "bonusPoints", "challenge.bonusPoints", dc.BonusPoints),
	}

	dr := DefaultReward(user)
	r := object(raw, "reward")
	if r == nil {
		f.mark("reward")
		exp.Reward = dr
	} else {
		exp.Reward = Reward{
			Type:        f.str(r, "type", "reward.type", dr.Type),
			Label:       f.str(r, "label", "reward.label", dr.Label),
			Description: f.str(r, "description", "reward.description", dr.Description),
			Conditions:  f.str(r, "conditions", "reward.conditions", dr.Conditions),
		}
		if !IsRewardType(exp.Reward.Type) {
			f.mark("reward.type")
			exp.Reward.Type = dr.Type
		}
		if code, ok := r["code"].(string); ok {
			exp.Reward.Code = NormalizeCode(code)
		}
	}

	dp := DefaultProgress(user, exp.Challenge)
	p := object(raw, "progress")
	exp.Progress = Progress{
		Level:      f.count(p, "level", "progress.level", dp.Level),
		Points:     f.count(p, "points", "progress.points", dp.Points),
		StreakDays: f.count(p, "streakDays", "progress.streakDays", dp.StreakDays),
	}
	if exp.Progress.Level < 1 {
		f.mark("progress.level")
		exp.Progress.Level = dp.Level
	}

	return exp, f.defaulted
}

// NormalizeChannelAssets is Normalize for channel assets, with defaults
// derived from exp.
func NormalizeChannelAssets(raw map[string]any, exp Experience) (ChannelAssets, []string) {
	f := &fields{}
	d := DefaultChannelAssets(exp)

	email := object(raw, "email")
	push := object(raw, "push")
	inApp := object(raw, "inApp")
	rc := object(raw, "rewardConfig")

	assets := ChannelAssets{
		Email: EmailAsset{
			Subject:     f.str(email, "subject", "email.subject", d.Email.Subject),
			PreviewText: f.str(email, "previewText", "email.previewText", d.Email.PreviewText),
			BodyText:    f.str(email, "bodyText", "email.bodyText", d.Email.BodyText),
		},
		Push: PushAsset{
			Title: f.str(push, "title", "push.title", d.Push.Title),
			Body:  f.str(push, "body", "push.body", d.Push.Body),
		},
		InApp: InAppAsset{
			Heading:  f.str(inApp, "heading", "inApp.heading", d.InApp.Heading),
			Body:     f.str(inApp, "body", "inApp.body", d.InApp.Body),
			CTALabel: f.str(inApp, "ctaLabel", "inApp.ctaLabel", d.InApp.CTALabel),
		},
		RewardConfig: RewardConfig{
			InternalName: f.str(rc, "internalName", "rewardConfig.internalName", d.RewardConfig.InternalName),
			Type:         f.str(rc, "type", "rewardConfig.type", d.RewardConfig.Type),
			Value:        f.str(rc, "value", "rewardConfig.value", d.RewardConfig.Value),
			Conditions:   f.str(rc, "conditions", "rewardConfig.conditions", d.RewardConfig.Conditions),
			ExpiryDays:   f.count(rc, "expiryDays", "rewardConfig.expiryDays", d.RewardConfig.ExpiryDays),
		},
	}
	if assets.RewardConfig.ExpiryDays < 1 {
		f.mark("rewardConfig.expiryDays")
		assets.RewardConfig.ExpiryDays = d.RewardConfig.ExpiryDays
	}
	return assets, f.defaulted
}

// NormalizeCode upper-cases a reward code into slug form ("brew 20" ->
// "BREW-20"). Codes with nothing sluggable become empty.
func NormalizeCode(code string) string {
	return strings.ToUpper(slug.Make(code))
}

// NormalizeGoal slugs a campaign goal, falling back to def when nothing
// usable remains.
func NormalizeGoal(goal, def string) string {
	if s := slug.Make(goal); s != "" {
		return s
	}
	return def
}

func rewardInternalName(exp Experience) string {
	return slug.Make("quest " + exp.Reward.Type + " " + exp.Reward.Label)
}

var (
	experienceSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return providers.CompileSchema(experience.SchemaJSON())
	})
	channelSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return providers.CompileSchema(channel.SchemaJSON())
	})
)

// ValidateExperience lists where raw departs from the experience schema.
func ValidateExperience(raw map[string]any) []string {
	return validate(experienceSchema, raw)
}

// ValidateChannelAssets lists where raw departs from the channel assets schema.
func ValidateChannelAssets(raw map[string]any) []string {
	return validate(channelSchema, raw)
}

func validate(compiled func() (*jsonschema.Schema, error), raw map[string]any) []string {
	schema, err := compiled()
	if err != nil {
		return []string{err.Error()}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return providers.ValidationIssues(schema.Validate(raw))
}
