package endpoints

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/llmcall"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
)

// LLMCallsResponse lists calls, newest first, with totals for the page.
type LLMCallsResponse struct {
	Calls   []llmcall.Call  `json:"calls"`
	Summary llmcall.Summary `json:"summary"`
}

// LLMCallResponse contains a single LLM call.
type LLMCallResponse struct {
	Call  *llmcall.Call `json:"call,omitempty"`
	Error string        `json:"error,omitempty"`
}

// LLMCallCountsResponse contains prompt key counts.
type LLMCallCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

// ListLLMCallsEndpoint handles GET /api/llmcalls.
type ListLLMCallsEndpoint struct{}

func (e *ListLLMCallsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/llmcalls", e.handler
}

func (e *ListLLMCallsEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		List LLM calls
//	@Description	Calls made by the generator. Filter by request_id (the X-Request-Id of an experience call) to trace one request.
//	@Tags			llmcalls
//	@Produce		json
//	@Param			request_id	query		string	false	"X-Request-Id of the triggering request"
//	@Param			prompt_key	query		string	false	"Prompt key, e.g. quest.experience.user"
//	@Param			provider	query		string	false	"Provider name"
//	@Param			model		query		string	false	"Model"
//	@Param			status		query		string	false	"ok or failed"
//	@Param			since		query		string	false	"Only calls newer than this duration, e.g. 15m"
//	@Param			limit		query		int		false	"Max results (default 100, max 1000)"
//	@Param			offset		query		int		false	"Result offset"
//	@Success		200			{object}	LLMCallsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/llmcalls [get]
func (e *ListLLMCallsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.LLMCallStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusInternalServerError, "LLM call store not available")
		return
	}

	filter, err := llmcall.ParseFilter(r.URL.Query(), time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	calls, err := store.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if calls == nil {
		calls = []llmcall.Call{}
	}
	writeJSON(w, http.StatusOK, LLMCallsResponse{Calls: calls, Summary: llmcall.Summarize(calls)})
}

func (e *ListLLMCallsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var promptKey, provider, model, since string
	var limit int
	var failed bool
	cmd := &cobra.Command{
		Use:   "list [request-id]",
		Short: "List LLM calls, or trace the calls of one request",
		Long: `List recorded LLM calls, newest first.

Pass the X-Request-Id returned by an experience call to see every
provider call that request made.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if len(args) == 1 {
				params.Set(llmcall.ParamRequestID, args[0])
			}
			set := func(name, v string) {
				if v != "" {
					params.Set(name, v)
				}
			}
			set(llmcall.ParamPromptKey, promptKey)
			set(llmcall.ParamProvider, provider)
			set(llmcall.ParamModel, model)
			set(llmcall.ParamSince, since)
			if failed {
				params.Set(llmcall.ParamStatus, llmcall.StatusFailed)
			}
			if limit > 0 {
				params.Set(llmcall.ParamLimit, strconv.Itoa(limit))
			}

			var resp LLMCallsResponse
			if err := api.NewClient(getServerURL()).Get(cmd.Context(), "/api/llmcalls?"+params.Encode(), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&promptKey, "prompt-key", "", "Only calls rendered from this prompt")
	cmd.Flags().StringVar(&provider, "provider", "", "Only calls to this provider")
	cmd.Flags().StringVar(&model, "model", "", "Only calls to this model")
	cmd.Flags().StringVar(&since, "since", "", "Only calls newer than this duration (e.g. 15m)")
	cmd.Flags().BoolVar(&failed, "failed", false, "Only failed calls")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (server default 100)")
	return cmd
}

// GetLLMCallEndpoint handles GET /api/llmcalls/{id}.
type GetLLMCallEndpoint struct{}

func (e *GetLLMCallEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/llmcalls/{id}", e.handler
}

func (e *GetLLMCallEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Get an LLM call
//	@Description	Get a single LLM call by ID
//	@Tags			llmcalls
//	@Produce		json
//	@Param			id	path		string	true	"LLM call ID"
//	@Success		200	{object}	LLMCallResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/llmcalls/{id} [get]
func (e *GetLLMCallEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.LLMCallStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusInternalServerError, "LLM call store not available")
		return
	}

	call, err := store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if call == nil {
		writeError(w, http.StatusNotFound, "LLM call not found")
		return
	}

	writeJSON(w, http.StatusOK, LLMCallResponse{Call: call})
}

func (e *GetLLMCallEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an LLM call by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp LLMCallResponse
			if err := api.NewClient(getServerURL()).Get(cmd.Context(), "/api/llmcalls/"+url.PathEscape(args[0]), &resp); err != nil {
				return err
			}
			return api.Output(resp.Call)
		},
	}
}

// LLMCallCountsEndpoint handles GET /api/llmcalls/counts.
type LLMCallCountsEndpoint struct{}

func (e *LLMCallCountsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/llmcalls/counts", e.handler
}

func (e *LLMCallCountsEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Get LLM call counts by prompt key
//	@Description	Count of recorded LLM calls grouped by prompt key
//	@Tags			llmcalls
//	@Produce		json
//	@Param			since	query		string	false	"Only calls newer than this duration, e.g. 24h"
//	@Success		200		{object}	LLMCallCountsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/llmcalls/counts [get]
func (e *LLMCallCountsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.LLMCallStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusInternalServerError, "LLM call store not available")
		return
	}

	filter, err := llmcall.ParseFilter(url.Values{llmcall.ParamSince: r.URL.Query()[llmcall.ParamSince]}, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	counts, err := store.CountByPromptKey(r.Context(), filter.Since)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LLMCallCountsResponse{Counts: counts})
}

func (e *LLMCallCountsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var since string
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Count LLM calls by prompt key",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/llmcalls/counts"
			if since != "" {
				path += "?" + url.Values{llmcall.ParamSince: {since}}.Encode()
			}
			var resp LLMCallCountsResponse
			if err := api.NewClient(getServerURL()).Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp.Counts)
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "Only calls newer than this duration (e.g. 24h)")
	return cmd
}
