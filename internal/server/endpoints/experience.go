package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/quest"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
	"github.com/jackzampolin/coffeequest/internal/users"
)

// ExperienceRequest is the body of POST /api/experience.
type ExperienceRequest struct {
	UserID string `json:"userId"`
	Goal   string `json:"goal,omitempty"`
}

// CustomExperienceRequest is the body of POST /api/experience/custom.
type CustomExperienceRequest struct {
	User *quest.UserProfile `json:"user"`
	Goal string             `json:"goal,omitempty"`
}

// BatchExperienceRequest is the body of POST /api/experience/batch.
type BatchExperienceRequest struct {
	Users []json.RawMessage `json:"users" swaggertype:"array,object"`
	Goal  string            `json:"goal,omitempty"`
}

// BatchExperienceResponse holds one result per submitted user, in order.
type BatchExperienceResponse struct {
	Results []quest.BatchResult `json:"results"`
}

// ChannelAssetsRequest is the body of POST /api/experience/channel-assets.
type ChannelAssetsRequest struct {
	Experience *quest.Experience `json:"experience"`
}

// writeGenerationError maps generator errors to responses. Invalid input is
// 400, a missing provider is 503, and everything else is logged as 500.
func writeGenerationError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, quest.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, quest.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	svcctx.LoggerFrom(r.Context()).Error(msg, "path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()), "error", err)
	writeError(w, http.StatusInternalServerError, msg)
}

// ExperienceEndpoint handles POST /api/experience.
type ExperienceEndpoint struct{}

func (e *ExperienceEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/experience", e.handler
}

func (e *ExperienceEndpoint) RequiresLLM() bool { return true }

// handler godoc
//
//	@Summary		Generate a quest for a sample user
//	@Description	Builds today's narrative, challenge, reward and progress for a seed user
//	@Tags			experience
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExperienceRequest	true	"Seed user id and optional campaign goal"
//	@Success		200		{object}	quest.Experience
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/experience [post]
func (e *ExperienceEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	user, err := users.Find(req.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusServiceUnavailable, "generator not initialized")
		return
	}

	exp, err := gen.Generate(r.Context(), user, req.Goal)
	if err != nil {
		writeGenerationError(w, r, err, "failed to generate experience")
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (e *ExperienceEndpoint) Command(getServerURL func() string) *cobra.Command {
	var goal string
	cmd := &cobra.Command{
		Use:   "generate <user-id>",
		Short: "Generate a quest for a sample user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp quest.Experience
			req := ExperienceRequest{UserID: args[0], Goal: goal}
			if err := client.Post(cmd.Context(), "/api/experience", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&goal, "goal", "", "Campaign goal (default: brand default goal)")
	return cmd
}

// CustomExperienceEndpoint handles POST /api/experience/custom.
type CustomExperienceEndpoint struct{}

func (e *CustomExperienceEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/experience/custom", e.handler
}

func (e *CustomExperienceEndpoint) RequiresLLM() bool { return true }

// handler godoc
//
//	@Summary		Generate a quest for a supplied profile
//	@Description	Same as /api/experience for a caller-supplied customer profile
//	@Tags			experience
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CustomExperienceRequest	true	"Customer profile and optional campaign goal"
//	@Success		200		{object}	quest.Experience
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/experience/custom [post]
func (e *CustomExperienceEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CustomExperienceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.User == nil || req.User.Name == "" {
		writeError(w, http.StatusBadRequest, "user.name is required")
		return
	}

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusServiceUnavailable, "generator not initialized")
		return
	}

	exp, err := gen.Generate(r.Context(), *req.User, req.Goal)
	if err != nil {
		writeGenerationError(w, r, err, "failed to generate experience")
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (e *CustomExperienceEndpoint) Command(getServerURL func() string) *cobra.Command {
	var goal string
	cmd := &cobra.Command{
		Use:   "custom <profile-file>",
		Short: "Generate a quest for a profile read from a YAML or JSON file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			client := api.NewClient(getServerURL())
			var resp quest.Experience
			body := map[string]any{"user": profile, "goal": goal}
			if err := client.Post(cmd.Context(), "/api/experience/custom", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&goal, "goal", "", "Campaign goal (default: brand default goal)")
	return cmd
}

// BatchExperienceEndpoint handles POST /api/experience/batch.
type BatchExperienceEndpoint struct{}

func (e *BatchExperienceEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/experience/batch", e.handler
}

func (e *BatchExperienceEndpoint) RequiresLLM() bool { return true }

// handler godoc
//
//	@Summary		Simulate quests for many users
//	@Description	Generates one quest per profile. Failures are reported per item and never abort the batch.
//	@Tags			experience
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BatchExperienceRequest	true	"Customer profiles and optional campaign goal"
//	@Success		200		{object}	BatchExperienceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/experience/batch [post]
func (e *BatchExperienceEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req BatchExperienceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Users) == 0 {
		writeError(w, http.StatusBadRequest, "users must be a non-empty array")
		return
	}

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusServiceUnavailable, "generator not initialized")
		return
	}
	if err := gen.Available(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	// Items that do not decode become nameless profiles and fail on their own.
	profiles := make([]quest.UserProfile, len(req.Users))
	for i, raw := range req.Users {
		if err := json.Unmarshal(raw, &profiles[i]); err != nil {
			profiles[i] = quest.UserProfile{}
		}
	}

	concurrency := 1
	if mgr := svcctx.ConfigManagerFrom(r.Context()); mgr != nil {
		concurrency = mgr.Get().Batch.Concurrency
	}

	results := gen.RunBatch(r.Context(), profiles, req.Goal, concurrency)
	writeJSON(w, http.StatusOK, BatchExperienceResponse{Results: results})
}

func (e *BatchExperienceEndpoint) Command(getServerURL func() string) *cobra.Command {
	var goal, file string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Simulate quests for the sample users or a list of profiles",
		Long: `Simulate quests for many users.

Without --file the server's sample users are used. With --file, the file
must hold a YAML or JSON list of profiles (- reads stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())

			var list any
			if file != "" {
				doc, err := readInputFile(file)
				if err != nil {
					return err
				}
				if _, ok := doc.([]any); !ok {
					return fmt.Errorf("%s must contain a list of profiles", file)
				}
				list = doc
			} else {
				var seed []quest.UserProfile
				if err := client.Get(ctx, "/api/users", &seed); err != nil {
					return err
				}
				list = seed
			}

			var resp BatchExperienceResponse
			body := map[string]any{"users": list, "goal": goal}
			if err := client.Post(ctx, "/api/experience/batch", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&goal, "goal", "", "Campaign goal (default: brand default goal)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON list of profiles")
	return cmd
}

// ChannelAssetsEndpoint handles POST /api/experience/channel-assets.
type ChannelAssetsEndpoint struct{}

func (e *ChannelAssetsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/experience/channel-assets", e.handler
}

func (e *ChannelAssetsEndpoint) RequiresLLM() bool { return true }

// handler godoc
//
//	@Summary		Generate campaign assets for a quest
//	@Description	Email, push, in-app copy and reward configuration for a generated experience
//	@Tags			experience
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChannelAssetsRequest	true	"A generated experience"
//	@Success		200		{object}	quest.ChannelAssets
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/experience/channel-assets [post]
func (e *ChannelAssetsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ChannelAssetsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Experience == nil {
		writeError(w, http.StatusBadRequest, "experience is required")
		return
	}

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusServiceUnavailable, "generator not initialized")
		return
	}

	assets, err := gen.ChannelAssets(r.Context(), *req.Experience)
	if err != nil {
		writeGenerationError(w, r, err, "failed to generate channel assets")
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (e *ChannelAssetsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "channel-assets <experience-file>",
		Short: "Generate campaign assets for an experience read from a YAML or JSON file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			client := api.NewClient(getServerURL())
			var resp quest.ChannelAssets
			body := map[string]any{"experience": exp}
			if err := client.Post(cmd.Context(), "/api/experience/channel-assets", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
