// Package prompts holds the embedded prompt templates used for quest
// generation and a resolver that renders them by key.
//
// Templates live as .tmpl files next to the code that owns them and are
// registered at startup; each registered prompt carries a content hash so
// recorded LLM calls can be traced to the exact template version.
package prompts

// EmbeddedPrompt represents a prompt loaded from an embedded .tmpl file.
type EmbeddedPrompt struct {
	Key         string   `json:"key"`                   // Hierarchical key: quest.experience.system
	Text        string   `json:"text"`                  // The prompt text (Go template)
	Description string   `json:"description,omitempty"` // Human-readable description
	Variables   []string `json:"variables,omitempty"`   // Extracted template variables
	Hash        string   `json:"hash"`                  // SHA256 of Text
}

// Rendered is a template executed against request data.
type Rendered struct {
	Key  string
	Hash string
	Text string
}
