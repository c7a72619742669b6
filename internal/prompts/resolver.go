package prompts

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"text/template"
)

// Resolver is the registry of embedded prompts.
type Resolver struct {
	mu        sync.RWMutex
	embedded  map[string]EmbeddedPrompt
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewResolver creates a new prompt resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		embedded:  make(map[string]EmbeddedPrompt),
		templates: make(map[string]*template.Template),
		logger:    logger,
	}
}

// Register registers an embedded prompt, parsing its template.
// Panics on a template that does not parse: prompts are compiled in.
func (r *Resolver) Register(prompt EmbeddedPrompt) {
	tmpl := template.Must(template.New(prompt.Key).Option("missingkey=error").Parse(prompt.Text))

	if prompt.Hash == "" {
		prompt.Hash = HashText(prompt.Text)
	}
	if prompt.Variables == nil {
		prompt.Variables = ExtractVariables(prompt.Text)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.embedded[prompt.Key] = prompt
	r.templates[prompt.Key] = tmpl
	r.logger.Debug("registered embedded prompt", "key", prompt.Key, "vars", prompt.Variables)
}

// Get returns the embedded prompt for a key.
func (r *Resolver) Get(key string) (EmbeddedPrompt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.embedded[key]
	return p, ok
}

// All returns every registered prompt ordered by key.
func (r *Resolver) All() []EmbeddedPrompt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]EmbeddedPrompt, 0, len(r.embedded))
	for _, p := range r.embedded {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// Render executes the prompt registered under key against data.
func (r *Resolver) Render(key string, data any) (*Rendered, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[key]
	p := r.embedded[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("prompt not found: %s", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render prompt %s: %w", key, err)
	}
	return &Rendered{Key: key, Hash: p.Hash, Text: buf.String()}, nil
}
