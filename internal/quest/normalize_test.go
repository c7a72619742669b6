package quest

import (
	"encoding/json"
	"slices"
	"testing"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

const fullReply = `{
  "narrative": "A new bean awaits.",
  "challenge": {"title": "Cold Brew Sprint", "description": "Brew a cold brew.", "successCriteria": "Post a photo.", "xpReward": 200, "bonusPoints": 120},
  "reward": {"type": "discount", "label": "15% off", "code": "cold brew 15", "description": "Save on beans.", "conditions": "3 days."},
  "progress": {"level": 3, "points": 1570, "streakDays": 5}
}`

func assertComplete(t *testing.T, exp Experience) {
	t.Helper()
	if exp.Narrative == "" {
		t.Error("empty narrative")
	}
	c := exp.Challenge
	if c.Title == "" || c.Description == "" || c.SuccessCriteria == "" {
		t.Errorf("incomplete challenge %+v", c)
	}
	r := exp.Reward
	if r.Type == "" || r.Label == "" || r.Description == "" || r.Conditions == "" {
		t.Errorf("incomplete reward %+v", r)
	}
	if !IsRewardType(r.Type) {
		t.Errorf("unknown reward type %q", r.Type)
	}
	if exp.Progress.Level < 1 {
		t.Errorf("progress level %d", exp.Progress.Level)
	}
}

func TestNormalize_FullReply(t *testing.T) {
	u := profile("Meera", 3, 2, 900, RewardDiscount)
	exp, defaulted := Normalize(decode(t, fullReply), u)

	if len(defaulted) != 0 {
		t.Errorf("expected no defaults, got %v", defaulted)
	}
	if exp.Narrative != "A new bean awaits." || exp.Challenge.XPReward != 200 {
		t.Errorf("reply values not kept: %+v", exp)
	}
	if exp.Reward.Code != "COLD-BREW-15" {
		t.Errorf("expected normalized code, got %q", exp.Reward.Code)
	}
	if exp.User != u.Summary() {
		t.Errorf("user summary %+v", exp.User)
	}
}

func TestNormalize_PayloadShapes(t *testing.T) {
	u := profile("Meera", 3, 2, 900, RewardDiscount)

	tests := []struct {
		name     string
		raw      map[string]any
		mustFill []string
	}{
		{"nil", nil, []string{"narrative", "challenge.title", "reward", "progress.level"}},
		{"empty object", map[string]any{}, []string{"narrative", "reward"}},
		{"wrong types", map[string]any{
			"narrative": 42,
			"challenge": "not an object",
			"reward":    map[string]any{"type": "discount", "label": 7},
			"progress":  map[string]any{"level": "three"},
		}, []string{"narrative", "challenge.title", "reward.label", "reward.description", "progress.level"}},
		{"blank strings", map[string]any{"narrative": "   "}, []string{"narrative"}},
		{"negative numbers", map[string]any{
			"challenge": map[string]any{"xpReward": -5.0},
			"progress":  map[string]any{"points": -1.0},
		}, []string{"challenge.xpReward", "progress.points"}},
		{"unknown reward type", map[string]any{
			"reward": map[string]any{"type": "cashback", "label": "L", "description": "D", "conditions": "C"},
		}, []string{"reward.type"}},
		{"zero level", map[string]any{
			"progress": map[string]any{"level": 0.0, "points": 10.0, "streakDays": 1.0},
		}, []string{"progress.level"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, defaulted := Normalize(tt.raw, u)
			assertComplete(t, exp)
			for _, path := range tt.mustFill {
				if !slices.Contains(defaulted, path) {
					t.Errorf("expected %s in defaulted %v", path, defaulted)
				}
			}
		})
	}
}

func TestNormalize_DefaultsMatchRules(t *testing.T) {
	u := profile("Meera", 2, 12, 0, "")
	exp, _ := Normalize(nil, u)

	if exp != DefaultExperience(u) {
		t.Errorf("empty reply should equal the rule-based experience\n got %+v\nwant %+v", exp, DefaultExperience(u))
	}
	if exp.Progress.Points != 1000+250 {
		t.Errorf("progress should include lapsed bonus, got %d", exp.Progress.Points)
	}
}

func TestNormalize_ProgressFollowsChallengeBonus(t *testing.T) {
	u := profile("Meera", 3, 2, 0, "")
	raw := map[string]any{"challenge": map[string]any{"bonusPoints": 40.0}}
	exp, _ := Normalize(raw, u)
	if exp.Progress.Points != 1040 {
		t.Errorf("expected points 1040, got %d", exp.Progress.Points)
	}
}

func TestNormalizeChannelAssets(t *testing.T) {
	exp := DefaultExperience(profile("Meera", 1, 0, 0, RewardDiscount))

	t.Run("partial reply", func(t *testing.T) {
		raw := decode(t, `{"email": {"subject": "Your quest is here"}, "rewardConfig": {"expiryDays": 0}}`)
		assets, defaulted := NormalizeChannelAssets(raw, exp)

		if assets.Email.Subject != "Your quest is here" {
			t.Errorf("subject not kept: %q", assets.Email.Subject)
		}
		if assets.InApp.CTALabel != DefaultCTALabel {
			t.Errorf("expected default CTA, got %q", assets.InApp.CTALabel)
		}
		if assets.RewardConfig.ExpiryDays != 3 {
			t.Errorf("expected default expiry, got %d", assets.RewardConfig.ExpiryDays)
		}
		if !slices.Contains(defaulted, "push.title") || !slices.Contains(defaulted, "rewardConfig.expiryDays") {
			t.Errorf("unexpected defaulted %v", defaulted)
		}
	})

	t.Run("nil reply", func(t *testing.T) {
		assets, _ := NormalizeChannelAssets(nil, exp)
		if assets != DefaultChannelAssets(exp) {
			t.Error("nil reply should equal defaults")
		}
	})
}

func TestNormalizeGoal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "increase-order-value"},
		{"  ", "increase-order-value"},
		{"Boost Social Shares", "boost-social-shares"},
		{"drive-new-product-trial", "drive-new-product-trial"},
	}
	for _, tt := range tests {
		if got := NormalizeGoal(tt.in, "increase-order-value"); got != tt.want {
			t.Errorf("NormalizeGoal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateExperience(t *testing.T) {
	if issues := ValidateExperience(decode(t, fullReply)); len(issues) != 0 {
		t.Errorf("full reply should validate, got %v", issues)
	}
	if issues := ValidateExperience(map[string]any{"narrative": "x"}); len(issues) == 0 {
		t.Error("expected issues for partial reply")
	}
}
