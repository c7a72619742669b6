// Package experience holds the prompts that turn a customer profile and a
// campaign goal into a daily quest.
package experience

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
	SystemPromptKey = "quest.experience.system"
	UserPromptKey   = "quest.experience.user"
)

// RegisterPrompts registers the experience prompts with the resolver.
func RegisterPrompts(r *prompts.Resolver) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         SystemPromptKey,
		Text:        systemPrompt,
		Description: "Quest designer persona with brand voice, objectives and guardrails",
	})
	r.Register(prompts.EmbeddedPrompt{
		Key:         UserPromptKey,
		Text:        userPrompt,
		Description: "Customer profile, campaign goal and reward pool with the expected JSON shape",
	})
}
