package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	GroqName           = "groq"
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	GroqDefaultModel   = "llama-3.1-8b-instant"
	openAIDefaultModel = "gpt-4o-mini"
)

// OpenAIConfig configures an OpenAI-compatible chat client.
type OpenAIConfig struct {
	Name         string // Registry name, defaults to "groq" for the Groq base URL
	APIKey       string
	BaseURL      string // Empty uses the OpenAI API
	DefaultModel string
	RateLimit    int // Requests per minute
	MaxRetries   int // Extra attempts on 429/5xx (0 = single attempt)
	RetryDelay   time.Duration
	Timeout      time.Duration
	HTTPClient   *http.Client // Optional (tests)
}

// OpenAIClient implements LLMClient for any OpenAI-compatible chat endpoint
// (OpenAI, Groq, OpenRouter) using the official SDK.
type OpenAIClient struct {
	name         string
	defaultModel string
	maxRetries   int
	retryDelay   time.Duration
	timeout      time.Duration
	limiter      *RateLimiter
	client       openai.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Name == "" {
		cfg.Name = "openai"
		if cfg.BaseURL == GroqBaseURL {
			cfg.Name = GroqName
		}
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = openAIDefaultModel
		if cfg.BaseURL == GroqBaseURL {
			cfg.DefaultModel = GroqDefaultModel
		}
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	// Retries are driven by retry-go so the limiter sees every attempt.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		name:         cfg.Name,
		defaultModel: cfg.DefaultModel,
		maxRetries:   cfg.MaxRetries,
		retryDelay:   cfg.RetryDelay,
		timeout:      cfg.Timeout,
		limiter:      NewRateLimiter(cfg.RateLimit),
		client:       openai.NewClient(opts...),
	}
}

// Name returns the client identifier.
func (c *OpenAIClient) Name() string {
	return c.name
}

// Model returns the configured default model.
func (c *OpenAIClient) Model() string {
	return c.defaultModel
}

// RateLimitStatus exposes the limiter state for status reporting.
func (c *OpenAIClient) RateLimitStatus() RateLimiterStatus {
	return c.limiter.Status()
}

// Chat sends a chat completion request.
func (c *OpenAIClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
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
		Provider:  c.name,
		ModelUsed: model,
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: toOpenAIMessages(req.Messages),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.ResponseFormat != nil {
		rf, err := toOpenAIResponseFormat(req.ResponseFormat)
		if err != nil {
			return result, result.fail("invalid_request", err, start)
		}
		params.ResponseFormat = rf
	}

	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	var resp *openai.ChatCompletion
	err := retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			result.Attempts++

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			r, err := c.client.Chat.Completions.New(callCtx, params)
			if err != nil {
				mapped := mapOpenAIError(c.name, err)
				if _, ok := IsRateLimitError(mapped); ok {
					c.limiter.Record429()
				}
				if !IsTransient(mapped) {
					return retry.Unrecoverable(mapped)
				}
				return mapped
			}
			resp = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries+1)),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return result, result.fail("http_error", err, start)
	}

	if len(resp.Choices) == 0 {
		return result, result.fail("empty_response", fmt.Errorf("no choices in response"), start)
	}

	result.Success = true
	result.Content = resp.Choices[0].Message.Content
	result.PromptTokens = int(resp.Usage.PromptTokens)
	result.CompletionTokens = int(resp.Usage.CompletionTokens)
	result.TotalTokens = int(resp.Usage.TotalTokens)
	if resp.Model != "" {
		result.ModelUsed = resp.Model
	}
	result.ExecutionTime = time.Since(start)

	return result, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// schemaWrapper is the {"name","strict","schema"} envelope used by prompts.
type schemaWrapper struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

func toOpenAIResponseFormat(rf *ResponseFormat) (openai.ChatCompletionNewParamsResponseFormatUnion, error) {
	switch rf.Type {
	case ResponseFormatJSONSchema:
		var w schemaWrapper
		if err := json.Unmarshal(rf.JSONSchema, &w); err != nil {
			return openai.ChatCompletionNewParamsResponseFormatUnion{}, fmt.Errorf("invalid json_schema response format: %w", err)
		}
		if w.Name == "" {
			w.Name = "response"
		}
		return openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   w.Name,
					Schema: w.Schema,
					Strict: openai.Bool(w.Strict),
				},
			},
		}, nil
	case ResponseFormatJSONObject, "":
		return openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}, nil
	default:
		return openai.ChatCompletionNewParamsResponseFormatUnion{}, fmt.Errorf("unsupported response format %q", rf.Type)
	}
}

func mapOpenAIError(provider string, err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	msg := strings.TrimSpace(apiErr.Message)
	if apiErr.StatusCode == http.StatusTooManyRequests {
		var retryAfter time.Duration
		if apiErr.Response != nil {
			retryAfter = parseRetryAfter(apiErr.Response.Header.Get("Retry-After"))
		}
		return &RateLimitError{
			Message:    fmt.Sprintf("%s rate limited: %s", provider, msg),
			RetryAfter: retryAfter,
			StatusCode: apiErr.StatusCode,
		}
	}
	return &StatusError{Provider: provider, StatusCode: apiErr.StatusCode, Message: msg}
}

var _ LLMClient = (*OpenAIClient)(nil)
