package config

import (
	"time"

	"github.com/jackzampolin/coffeequest/internal/providers"
)

// Config holds coffeequest configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server       ServerCfg                 `mapstructure:"server" yaml:"server"`
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
	Brand        BrandCfg                  `mapstructure:"brand" yaml:"brand"`
	Batch        BatchCfg                  `mapstructure:"batch" yaml:"batch"`
	Database     DatabaseCfg               `mapstructure:"database" yaml:"database"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// LLMProviderCfg configures an LLM provider.
type LLMProviderCfg struct {
	Type       string `mapstructure:"type" yaml:"type"`         // "groq", "openai", "gemini"
	Model      string `mapstructure:"model" yaml:"model"`       // Model name
	BaseURL    string `mapstructure:"base_url" yaml:"base_url"` // OpenAI-compatible endpoint override
	APIKey     string `mapstructure:"api_key" yaml:"api_key"`   // API key (supports ${ENV_VAR} syntax)
	RateLimit  int    `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per minute
	MaxRetries int    `mapstructure:"max_retries" yaml:"max_retries"`
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg holds generation defaults.
type DefaultsCfg struct {
	LLMProvider string  `mapstructure:"llm_provider" yaml:"llm_provider"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	Timeout     int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // Per provider call
}

// Brand backends.
const (
	BrandBackendFile   = "file"
	BrandBackendSQLite = "sqlite"
)

// BrandCfg selects where the brand configuration is persisted.
type BrandCfg struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "file" or "sqlite"
	Path    string `mapstructure:"path" yaml:"path"`       // File backend path; empty uses {home}/data/brand_config.json
}

// BatchCfg configures batch simulation.
type BatchCfg struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// DatabaseCfg configures the SQLite database.
type DatabaseCfg struct {
	Path string `mapstructure:"path" yaml:"path"` // Empty uses {home}/data/coffeequest.db
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "5001",
		},
		LLMProviders: map[string]LLMProviderCfg{
			"groq": {
				Type:      providers.GroqName,
				Model:     providers.GroqDefaultModel,
				APIKey:    "${GROQ_API_KEY}",
				RateLimit: 30,
				Enabled:   true,
			},
			"gemini": {
				Type:      providers.TypeGemini,
				Model:     "gemini-2.0-flash",
				APIKey:    "${GEMINI_API_KEY}",
				RateLimit: 15,
				Enabled:   false,
			},
		},
		Defaults: DefaultsCfg{
			LLMProvider: "groq",
			Temperature: 0.8,
			MaxTokens:   1024,
			Timeout:     60,
		},
		Brand: BrandCfg{
			Backend: BrandBackendFile,
		},
		Batch: BatchCfg{
			Concurrency: 1,
		},
	}
}

// GetLLMProvider returns an LLM provider config by name.
func (c *Config) GetLLMProvider(name string) (LLMProviderCfg, bool) {
	cfg, ok := c.LLMProviders[name]
	return cfg, ok
}

// EnabledLLMProviders returns all enabled LLM providers.
func (c *Config) EnabledLLMProviders() map[string]LLMProviderCfg {
	result := make(map[string]LLMProviderCfg)
	for name, cfg := range c.LLMProviders {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}

// CallTimeout returns the per-call provider timeout.
func (d DefaultsCfg) CallTimeout() time.Duration {
	return time.Duration(d.Timeout) * time.Second
}

// Addr returns host:port for the HTTP server.
func (s ServerCfg) Addr() string {
	return s.Host + ":" + s.Port
}
