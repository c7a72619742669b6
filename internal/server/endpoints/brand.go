package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/brand"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
)

// GetBrandConfigEndpoint handles GET /api/brand-config.
type GetBrandConfigEndpoint struct{}

func (e *GetBrandConfigEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/brand-config", e.handler
}

func (e *GetBrandConfigEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Get brand configuration
//	@Description	Current brand voice, objectives, reward pool and guardrails
//	@Tags			brand
//	@Produce		json
//	@Success		200	{object}	brand.Config
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/brand-config [get]
func (e *GetBrandConfigEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.BrandStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusInternalServerError, "brand store not available")
		return
	}
	writeJSON(w, http.StatusOK, store.Get())
}

func (e *GetBrandConfigEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the brand configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp brand.Config
			if err := client.Get(cmd.Context(), "/api/brand-config", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// UpdateBrandConfigEndpoint handles PUT /api/brand-config.
type UpdateBrandConfigEndpoint struct{}

func (e *UpdateBrandConfigEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/brand-config", e.handler
}

func (e *UpdateBrandConfigEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		Update brand configuration
//	@Description	Shallow-merges the body into the current config and persists it. Arrays are replaced, unknown keys ignored.
//	@Tags			brand
//	@Accept			json
//	@Produce		json
//	@Param			request	body		brand.Config	true	"Partial brand configuration"
//	@Success		200		{object}	brand.Config
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/brand-config [put]
func (e *UpdateBrandConfigEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := svcctx.BrandStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusInternalServerError, "brand store not available")
		return
	}

	cfg, err := store.Update(r.Context(), body)
	if err != nil {
		if errors.Is(err, brand.ErrInvalidPatch) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svcctx.LoggerFrom(r.Context()).Error("failed to save brand config", "backend", store.BackendName(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save brand config")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (e *UpdateBrandConfigEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file>",
		Short: "Merge a YAML or JSON document into the brand configuration (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			body, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			client := api.NewClient(getServerURL())
			var resp brand.Config
			if err := client.Put(cmd.Context(), "/api/brand-config", json.RawMessage(body), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
