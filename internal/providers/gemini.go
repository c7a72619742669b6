package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	GeminiName         = "gemini"
	geminiDefaultModel = "gemini-2.0-flash"
)

// GeminiConfig configures a Gemini chat client.
type GeminiConfig struct {
	APIKey       string
	DefaultModel string
	BaseURL      string // Optional override (tests, proxies)
	RateLimit    int    // Requests per minute
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// GeminiClient implements LLMClient on Google's GenAI SDK.
type GeminiClient struct {
	defaultModel string
	timeout      time.Duration
	limiter      *RateLimiter
	client       *genai.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = geminiDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		defaultModel: cfg.DefaultModel,
		timeout:      cfg.Timeout,
		limiter:      NewRateLimiter(cfg.RateLimit),
		client:       client,
	}, nil
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string {
	return GeminiName
}

// Model returns the configured default model.
func (c *GeminiClient) Model() string {
	return c.defaultModel
}

// RateLimitStatus exposes the limiter state for status reporting.
func (c *GeminiClient) RateLimitStatus() RateLimiterStatus {
	return c.limiter.Status()
}

// Chat sends the conversation to GenerateContent. System messages become the
// system instruction; any response format asks for application/json.
func (c *GeminiClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	result := &ChatResult{
		RequestID: requestID,
		Provider:  GeminiName,
		ModelUsed: model,
		Attempts:  1,
	}

	var system []string
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	gcfg := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		gcfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}
	if req.Temperature > 0 {
		gcfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.ResponseFormat != nil {
		gcfg.ResponseMIMEType = "application/json"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return result, result.fail("context_cancelled", err, start)
	}

	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(callCtx, model, contents, gcfg)
	if err != nil {
		return result, result.fail("http_error", fmt.Errorf("gemini generate failed: %w", err), start)
	}

	result.Success = true
	result.Content = resp.Text()
	if resp.UsageMetadata != nil {
		result.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	if resp.ModelVersion != "" {
		result.ModelUsed = resp.ModelVersion
	}
	result.ExecutionTime = time.Since(start)

	return result, nil
}

var _ LLMClient = (*GeminiClient)(nil)
