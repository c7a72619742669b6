package brand

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrInvalidPatch is returned when an update is not a JSON object or a known
// key carries a value of the wrong type.
var ErrInvalidPatch = errors.New("invalid brand config patch")

// Backend persists the brand configuration document.
type Backend interface {
	// Load returns the stored document, or nil when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc []byte) error
	// Name describes the backend for status output.
	Name() string
}

// Store holds the active brand configuration in memory and writes every
// update through to its Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger

	// writeMu serializes updates across Save; mu guards cfg.
	writeMu sync.Mutex
	mu      sync.RWMutex
	cfg     *Config
}

// NewStore loads the persisted document over the defaults. A document that
// does not decode is logged and ignored; a backend read failure is returned.
func NewStore(ctx context.Context, backend Backend, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{backend: backend, logger: logger, cfg: Defaults()}

	doc, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand config from %s: %w", backend.Name(), err)
	}
	if doc == nil {
		logger.Info("no stored brand config, using defaults", "backend", backend.Name())
		return s, nil
	}

	merged, err := merge(s.cfg, doc)
	if err != nil {
		logger.Warn("stored brand config is invalid, using defaults", "backend", backend.Name(), "error", err)
		return s, nil
	}
	s.cfg = merged
	logger.Info("loaded brand config", "backend", backend.Name())
	return s, nil
}

// Get returns a copy of the current configuration.
func (s *Store) Get() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// BackendName reports where the configuration is persisted.
func (s *Store) BackendName() string {
	return s.backend.Name()
}

// Update applies a partial document: supplied top-level keys replace the
// current values, unknown keys are ignored. The merged document is saved
// before it becomes visible; on save failure nothing changes.
func (s *Store) Update(ctx context.Context, patch []byte) (*Config, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := merge(s.Get(), patch)
	if err != nil {
		return nil, err
	}

	doc, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode brand config: %w", err)
	}
	if err := s.backend.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save brand config to %s: %w", s.backend.Name(), err)
	}

	s.mu.Lock()
	s.cfg = next
	s.mu.Unlock()

	s.logger.Info("saved brand config", "backend", s.backend.Name())
	return next.Clone(), nil
}

// merge decodes patch over a copy of base. Only top-level keys present in the
// patch are touched; arrays are replaced, not appended.
func merge(base *Config, patch []byte) (*Config, error) {
	patch = bytes.TrimSpace(patch)
	if len(patch) == 0 || patch[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidPatch)
	}

	next := base.Clone()
	if err := json.Unmarshal(patch, next); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q must be %s", ErrInvalidPatch, typeErr.Field, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return next, nil
}
