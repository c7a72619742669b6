package endpoints

import (
	"github.com/jackzampolin/coffeequest/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Sample users
		&ListUsersEndpoint{},

		// Quest generation
		&ExperienceEndpoint{},
		&CustomExperienceEndpoint{},
		&BatchExperienceEndpoint{},
		&ChannelAssetsEndpoint{},

		// Brand configuration
		&GetBrandConfigEndpoint{},
		&UpdateBrandConfigEndpoint{},

		// LLM call history endpoints
		&ListLLMCallsEndpoint{},
		&GetLLMCallEndpoint{},
		&LLMCallCountsEndpoint{},

		// Prompt endpoints
		&ListPromptsEndpoint{},
		&GetPromptEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{},
		&SwaggerUIEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// ExperienceCommands groups quest generation under "experience".
func ExperienceCommands() []api.Endpoint {
	return []api.Endpoint{
		&ExperienceEndpoint{},
		&CustomExperienceEndpoint{},
		&BatchExperienceEndpoint{},
		&ChannelAssetsEndpoint{},
	}
}

// BrandCommands groups brand configuration under "brand".
func BrandCommands() []api.Endpoint {
	return []api.Endpoint{
		&GetBrandConfigEndpoint{},
		&UpdateBrandConfigEndpoint{},
	}
}

// LLMCallCommands groups LLM call history under "llmcalls".
func LLMCallCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListLLMCallsEndpoint{},
		&GetLLMCallEndpoint{},
		&LLMCallCountsEndpoint{},
	}
}

// PromptCommands groups prompt inspection under "prompts".
func PromptCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListPromptsEndpoint{},
		&GetPromptEndpoint{},
	}
}
