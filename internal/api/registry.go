package api

import (
	"net/http"

	"github.com/spf13/cobra"
)

// Registry holds all registered endpoints.
type Registry struct {
	endpoints []Endpoint
}

// NewRegistry creates a new endpoint registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds endpoints to the registry.
func (r *Registry) Register(eps ...Endpoint) {
	r.endpoints = append(r.endpoints, eps...)
}

// RegisterRoutes registers all endpoint HTTP routes with the given mux.
// requireLLM wraps handlers of endpoints that call the LLM provider.
func (r *Registry) RegisterRoutes(mux *http.ServeMux, requireLLM func(http.HandlerFunc) http.HandlerFunc) {
	for _, ep := range r.endpoints {
		method, path, handler := ep.Route()
		if ep.RequiresLLM() && requireLLM != nil {
			handler = requireLLM(handler)
		}
		mux.HandleFunc(method+" "+path, handler)
	}
}

// Endpoints returns all registered endpoints.
func (r *Registry) Endpoints() []Endpoint {
	return r.endpoints
}

// Commands returns the CLI commands of the registered endpoints, skipping
// endpoints that have none.
func (r *Registry) Commands(getServerURL func() string) []*cobra.Command {
	var cmds []*cobra.Command
	for _, ep := range r.endpoints {
		if cmd := ep.Command(getServerURL); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
