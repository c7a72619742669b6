package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Coffee Quest server via HTTP.

These commands require a running server (coffeequest serve).
Use --server to specify a custom server URL.

Examples:
  coffeequest api health                          # Check server health
  coffeequest api users                           # List sample users
  coffeequest api experience generate u1          # Quest for a sample user
  coffeequest api experience batch -f users.yaml  # Simulate a list of profiles
  coffeequest api brand set brand.yaml            # Update the brand config`,
}

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Quest generation commands",
}

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Brand configuration commands",
}

var llmcallsCmd = &cobra.Command{
	Use:   "llmcalls",
	Short: "LLM call history commands",
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Prompt template commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

// addGroup attaches the commands of eps to parent.
func addGroup(parent *cobra.Command, eps []api.Endpoint) {
	reg := api.NewRegistry()
	reg.Register(eps...)
	parent.AddCommand(reg.Commands(getServerURL)...)
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:5001", "Server URL",
	)

	// Top-level api commands
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ListUsersEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerUIEndpoint{}).Command(getServerURL))

	addGroup(experienceCmd, endpoints.ExperienceCommands())
	addGroup(brandCmd, endpoints.BrandCommands())
	addGroup(llmcallsCmd, endpoints.LLMCallCommands())
	addGroup(promptsCmd, endpoints.PromptCommands())

	apiCmd.AddCommand(experienceCmd)
	apiCmd.AddCommand(brandCmd)
	apiCmd.AddCommand(llmcallsCmd)
	apiCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(apiCmd)
}
