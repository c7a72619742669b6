// Package channel holds the prompts that turn a generated quest into
// email, push, in-app and reward-configuration assets.
package channel

import (
	_ "embed"

	"github.com/jackzampolin/coffeequest/internal/prompts"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPrompt string

// Prompt keys
const (
	SystemPromptKey = "quest.channel.system"
	UserPromptKey   = "quest.channel.user"
)

// RegisterPrompts registers the channel asset prompts with the resolver.
func RegisterPrompts(r *prompts.Resolver) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         SystemPromptKey,
		Text:        systemPrompt,
		Description: "CRM copywriter persona for channel assets",
	})
	r.Register(prompts.EmbeddedPrompt{
		Key:         UserPromptKey,
		Text:        userPrompt,
		Description: "Quest JSON with the expected channel assets shape",
	})
}
