package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/providers"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
	"github.com/jackzampolin/coffeequest/internal/users"
	"github.com/jackzampolin/coffeequest/version"
)

// ServiceName identifies the backend in health responses.
const ServiceName = "coffee-quest-backend"

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Health check
//	@Description	Returns ok while the HTTP server is responding
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: ServiceName})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server    string          `json:"server"`
	Version   string          `json:"version"`
	Providers ProvidersStatus `json:"providers"`
	Brand     BrandStatus     `json:"brand"`
	SeedUsers int             `json:"seed_users"`
}

// ProvidersStatus shows registered LLM providers and the one quests use.
type ProvidersStatus struct {
	LLM        []string                               `json:"llm"`
	Default    string                                 `json:"default"`
	Available  bool                                   `json:"available"`
	RateLimits map[string]providers.RateLimiterStatus `json:"rate_limits,omitempty"`
}

// BrandStatus shows where the brand config lives.
type BrandStatus struct {
	Backend   string `json:"backend"`
	BrandName string `json:"brand_name"`
}

// rateLimited is implemented by clients that expose limiter state.
type rateLimited interface {
	RateLimitStatus() providers.RateLimiterStatus
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct{}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Server status
//	@Description	Registered providers, brand config backend and seed users
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/status [get]
func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := StatusResponse{
		Server:    "running",
		Version:   version.GitRelease,
		SeedUsers: len(users.List()),
	}

	if gen := svcctx.GeneratorFrom(ctx); gen != nil {
		resp.Providers.Default = gen.Settings().Provider
	}
	if registry := svcctx.RegistryFrom(ctx); registry != nil {
		resp.Providers.LLM = registry.ListLLM()
		resp.Providers.Available = registry.HasLLM(resp.Providers.Default)
		for _, name := range resp.Providers.LLM {
			client, err := registry.GetLLM(name)
			if err != nil {
				continue
			}
			if rl, ok := client.(rateLimited); ok {
				if resp.Providers.RateLimits == nil {
					resp.Providers.RateLimits = make(map[string]providers.RateLimiterStatus)
				}
				resp.Providers.RateLimits[name] = rl.RateLimitStatus()
			}
		}
	}

	if store := svcctx.BrandStoreFrom(ctx); store != nil {
		resp.Brand.Backend = store.BackendName()
		resp.Brand.BrandName = store.Get().BrandName
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StatusResponse
			if err := client.Get(cmd.Context(), "/status", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
