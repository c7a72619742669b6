package quest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/jackzampolin/coffeequest/internal/brand"
	"github.com/jackzampolin/coffeequest/internal/llmcall"
	"github.com/jackzampolin/coffeequest/internal/prompts"
	"github.com/jackzampolin/coffeequest/internal/prompts/channel"
	"github.com/jackzampolin/coffeequest/internal/prompts/experience"
	"github.com/jackzampolin/coffeequest/internal/providers"
)

var (
	// ErrInvalidInput marks requests that cannot be generated for.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGeneration marks provider failures and unusable replies.
	ErrGeneration = errors.New("generation failed")
	// ErrUnavailable means the configured provider is not registered.
	ErrUnavailable = errors.New("LLM provider unavailable")
)

// Settings controls how the generator calls the provider.
type Settings struct {
	Provider    string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Generator builds experiences and channel assets with an LLM.
type Generator struct {
	registry *providers.Registry
	resolver *prompts.Resolver
	brand    *brand.Store
	recorder *llmcall.Recorder
	logger   *slog.Logger

	mu       sync.RWMutex
	settings Settings
}

// GeneratorConfig wires a Generator. Recorder and Logger are optional.
type GeneratorConfig struct {
	Registry *providers.Registry
	Resolver *prompts.Resolver
	Brand    *brand.Store
	Recorder *llmcall.Recorder
	Logger   *slog.Logger
	Settings Settings
}

// NewGenerator creates a generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		registry: cfg.Registry,
		resolver: cfg.Resolver,
		brand:    cfg.Brand,
		recorder: cfg.Recorder,
		logger:   logger.With("component", "quest"),
		settings: cfg.Settings,
	}
}

// Configure replaces the call settings (used on config reload).
func (g *Generator) Configure(s Settings) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.settings = s
}

// Settings returns the current call settings.
func (g *Generator) Settings() Settings {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.settings
}

// Available reports whether the configured provider is registered.
func (g *Generator) Available() error {
	provider := g.Settings().Provider
	if !g.registry.HasLLM(provider) {
		return fmt.Errorf("%w: %s is not configured", ErrUnavailable, provider)
	}
	return nil
}

// client resolves the configured provider.
func (g *Generator) client(provider string) (providers.LLMClient, error) {
	client, err := g.registry.GetLLM(provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not configured", ErrUnavailable, provider)
	}
	return client, nil
}

// promptData is the template input shared by every quest prompt.
type promptData struct {
	Brand          *brand.Config
	Goal           string
	UserJSON       string
	RewardPoolJSON string
	ExperienceJSON string
}

// Generate builds the daily quest for user. An empty goal uses the brand's
// default campaign goal.
func (g *Generator) Generate(ctx context.Context, user UserProfile, goal string) (*Experience, error) {
	if user.Name == "" {
		return nil, fmt.Errorf("%w: user.name is required", ErrInvalidInput)
	}

	cfg := g.brand.Get()
	goal = NormalizeGoal(goal, cfg.DefaultCampaignGoal)

	userJSON, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	poolJSON, err := json.MarshalIndent(cfg.RewardPool, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode reward pool: %w", err)
	}

	data := promptData{
		Brand:          cfg,
		Goal:           goal,
		UserJSON:       string(userJSON),
		RewardPoolJSON: string(poolJSON),
	}
	raw, err := g.complete(ctx, experience.SystemPromptKey, experience.UserPromptKey, data)
	if err != nil {
		return nil, err
	}

	logger := g.logger.With("user", user.Name, "goal", goal, "request_id", middleware.GetReqID(ctx))
	if issues := ValidateExperience(raw); len(issues) > 0 {
		logger.Warn("reply does not match experience schema", "issues", issues)
	}
	exp, defaulted := Normalize(raw, user)
	if len(defaulted) > 0 {
		logger.Info("filled experience defaults", "fields", defaulted)
	}
	return &exp, nil
}

// ChannelAssets builds campaign copy for an experience.
func (g *Generator) ChannelAssets(ctx context.Context, exp Experience) (*ChannelAssets, error) {
	if exp.User.Name == "" || exp.Challenge.Title == "" {
		return nil, fmt.Errorf("%w: experience needs user.name and challenge.title", ErrInvalidInput)
	}

	expJSON, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode experience: %w", err)
	}
	data := promptData{
		Brand:          g.brand.Get(),
		ExperienceJSON: string(expJSON),
	}
	raw, err := g.complete(ctx, channel.SystemPromptKey, channel.UserPromptKey, data)
	if err != nil {
		return nil, err
	}

	logger := g.logger.With("user", exp.User.Name, "request_id", middleware.GetReqID(ctx))
	if issues := ValidateChannelAssets(raw); len(issues) > 0 {
		logger.Warn("reply does not match channel assets schema", "issues", issues)
	}
	assets, defaulted := NormalizeChannelAssets(raw, exp)
	if len(defaulted) > 0 {
		logger.Info("filled channel asset defaults", "fields", defaulted)
	}
	return &assets, nil
}

// complete renders the prompt pair, calls the provider and extracts the JSON
// object from the reply.
func (g *Generator) complete(ctx context.Context, systemKey, userKey string, data promptData) (map[string]any, error) {
	system, err := g.resolver.Render(systemKey, data)
	if err != nil {
		return nil, err
	}
	prompt, err := g.resolver.Render(userKey, data)
	if err != nil {
		return nil, err
	}

	s := g.Settings()
	client, err := g.client(s.Provider)
	if err != nil {
		return nil, err
	}

	requestID := middleware.GetReqID(ctx)
	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: system.Text},
			{Role: providers.RoleUser, Content: prompt.Text},
		},
		Temperature:    s.Temperature,
		MaxTokens:      s.MaxTokens,
		Timeout:        s.Timeout,
		ResponseFormat: &providers.ResponseFormat{Type: providers.ResponseFormatJSONObject},
		RequestID:      requestID,
	}

	result, err := client.Chat(ctx, req)

	temp := s.Temperature
	g.recorder.Record(result, llmcall.RecordOptions{
		RequestID:   requestID,
		PromptKey:   userKey,
		PromptHash:  prompt.Hash,
		Temperature: &temp,
	})

	if err != nil {
		g.logger.Error("provider call failed", "provider", client.Name(), "prompt_key", userKey, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrGeneration, client.Name(), err)
	}

	raw, err := providers.ParseStructuredObject(result.Content)
	if err != nil {
		g.logger.Error("unusable provider reply", "provider", client.Name(), "prompt_key", userKey,
			"request_id", requestID, "content_length", len(result.Content), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	g.logger.Debug("provider call complete", "provider", client.Name(), "model", result.ModelUsed,
		"prompt_key", userKey, "latency", result.ExecutionTime, "tokens", result.TotalTokens)
	return raw, nil
}

// RegisterPrompts registers every prompt the generator renders.
func RegisterPrompts(r *prompts.Resolver) {
	experience.RegisterPrompts(r)
	channel.RegisterPrompts(r)
}
