package channel

import "encoding/json"

func stringProp() map[string]any { return map[string]any{"type": "string", "minLength": 1} }

// Schema is the JSON schema for generated channel assets.
var Schema = map[string]any{
	"name":   "channel_assets",
	"strict": true,
	"schema": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"email": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subject":     stringProp(),
					"previewText": stringProp(),
					"bodyText":    stringProp(),
				},
				"required": []string{"subject", "previewText", "bodyText"},
			},
			"push": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": stringProp(),
					"body":  stringProp(),
				},
				"required": []string{"title", "body"},
			},
			"inApp": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"heading":  stringProp(),
					"body":     stringProp(),
					"ctaLabel": stringProp(),
				},
				"required": []string{"heading", "body", "ctaLabel"},
			},
			"rewardConfig": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"internalName": stringProp(),
					"type":         stringProp(),
					"value":        stringProp(),
					"conditions":   stringProp(),
					"expiryDays":   map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []string{"internalName", "type", "value", "conditions", "expiryDays"},
			},
		},
		"required": []string{"email", "push", "inApp", "rewardConfig"},
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
