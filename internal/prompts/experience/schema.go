package experience

import "encoding/json"

// RewardTypes enumerates the reward kinds a quest may grant.
var RewardTypes = []string{"discount", "exclusive-content", "early-access", "badge", "comeback", "other"}

// Schema is the JSON schema for a generated quest. Replies are validated
// against it for diagnostics only; missing fields are filled with defaults.
var Schema = map[string]any{
	"name":   "daily_quest",
	"strict": true,
	"schema": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"narrative": map[string]any{"type": "string", "minLength": 1},
			"challenge": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":           map[string]any{"type": "string", "minLength": 1},
					"description":     map[string]any{"type": "string", "minLength": 1},
					"successCriteria": map[string]any{"type": "string", "minLength": 1},
					"xpReward":        map[string]any{"type": "integer", "minimum": 0},
					"bonusPoints":     map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []string{"title", "description", "successCriteria", "xpReward", "bonusPoints"},
			},
			"reward": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":        map[string]any{"type": "string", "enum": RewardTypes},
					"label":       map[string]any{"type": "string", "minLength": 1},
					"code":        map[string]any{"type": []string{"string", "null"}},
					"description": map[string]any{"type": "string", "minLength": 1},
					"conditions":  map[string]any{"type": "string", "minLength": 1},
				},
				"required": []string{"type", "label", "description", "conditions"},
			},
			"progress": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"level":      map[string]any{"type": "integer", "minimum": 1},
					"points":     map[string]any{"type": "integer", "minimum": 0},
					"streakDays": map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []string{"level", "points", "streakDays"},
			},
		},
		"required": []string{"narrative", "challenge", "reward", "progress"},
	},
}

// SchemaJSON returns Schema encoded as JSON.
func SchemaJSON() json.RawMessage {
	b, err := json.Marshal(Schema)
	if err != nil {
		panic(err)
	}
	return b
}
