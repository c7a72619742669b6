package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "coffeequest",
	Short: "Personalized daily coffee quests powered by an LLM",
	Long: `Coffee Quest turns a loyalty customer's profile into a short daily quest:
a story beat, a challenge, a reward and the progress they will reach.

It provides:
  - An HTTP API for single, custom and batch quest generation
  - Campaign copy (email, push, in-app) for a generated quest
  - A persisted brand configuration that shapes every prompt
  - Rule-based defaults whenever the model reply is incomplete`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.coffeequest/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "coffeequest home directory (default: ~/.coffeequest)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
