package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/quest"
	"github.com/jackzampolin/coffeequest/internal/users"
)

// ListUsersEndpoint handles GET /api/users.
type ListUsersEndpoint struct{}

func (e *ListUsersEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/users", e.handler
}

func (e *ListUsersEndpoint) RequiresLLM() bool { return false }

// handler godoc
//
//	@Summary		List sample users
//	@Description	Seed customer profiles available to POST /api/experience
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}	quest.UserProfile
//	@Router			/api/users [get]
func (e *ListUsersEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, users.List())
}

func (e *ListUsersEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List sample users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []quest.UserProfile
			if err := client.Get(cmd.Context(), "/api/users", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
