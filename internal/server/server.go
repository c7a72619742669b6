package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jackzampolin/coffeequest/internal/api"
	"github.com/jackzampolin/coffeequest/internal/brand"
	"github.com/jackzampolin/coffeequest/internal/config"
	"github.com/jackzampolin/coffeequest/internal/db"
	"github.com/jackzampolin/coffeequest/internal/home"
	"github.com/jackzampolin/coffeequest/internal/llmcall"
	"github.com/jackzampolin/coffeequest/internal/prompts"
	"github.com/jackzampolin/coffeequest/internal/providers"
	"github.com/jackzampolin/coffeequest/internal/quest"
	"github.com/jackzampolin/coffeequest/internal/server/endpoints"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
)

// Server is the Coffee Quest HTTP server.
// Storage (SQLite, brand config) is opened on Start and closed on shutdown.
type Server struct {
	httpServer *http.Server
	registry   *providers.Registry
	resolver   *prompts.Resolver
	configMgr  *config.Manager
	home       *home.Dir
	logger     *slog.Logger

	db        *sql.DB
	recorder  *llmcall.Recorder
	brand     *brand.Store
	generator *quest.Generator

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: config server.host)
	Host string
	// Port is the port to listen on (default: config server.port)
	Port string
	// ConfigManager provides configuration with hot-reload support.
	// Nil runs on config.DefaultConfig.
	ConfigManager *config.Manager
	// Home is the directory holding the database and brand config file
	Home *home.Dir
	// Registry replaces the config-built provider registry when set
	Registry *providers.Registry
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		h, err := home.New("")
		if err != nil {
			return nil, err
		}
		cfg.Home = h
	}

	appCfg := config.DefaultConfig()
	if cfg.ConfigManager != nil {
		appCfg = cfg.ConfigManager.Get()
	}
	if cfg.Host == "" {
		cfg.Host = appCfg.Server.Host
	}
	if cfg.Port == "" {
		cfg.Port = appCfg.Server.Port
	}

	registry := cfg.Registry
	if registry == nil {
		registry = providers.NewRegistryFromConfig(appCfg.ToProviderRegistryConfig(), cfg.Logger)
	}

	resolver := prompts.NewResolver(cfg.Logger)
	quest.RegisterPrompts(resolver)

	s := &Server{
		registry:  registry,
		resolver:  resolver,
		configMgr: cfg.ConfigManager,
		home:      cfg.Home,
		logger:    cfg.Logger,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	s.endpointRegistry.Register(endpoints.All()...)

	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireLLM)

	handler := chi.Chain(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(cfg.Logger),
		middleware.Recoverer,
	).Handler(s.withServices(mux))

	s.httpServer = &http.Server{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:     handler,
		ReadTimeout: 30 * time.Second,
		// Batches hold the connection for one provider call per user.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// config returns the active configuration.
func (s *Server) config() *config.Config {
	if s.configMgr != nil {
		return s.configMgr.Get()
	}
	return config.DefaultConfig()
}

// Start opens storage and serves HTTP.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.open(ctx); err != nil {
		s.closeStorage()
		s.setNotRunning()
		return err
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = s.shutdown()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// open initializes the database, brand store and generator.
func (s *Server) open(ctx context.Context) error {
	cfg := s.config()

	if err := s.home.EnsureExists(); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = s.home.DatabasePath()
	}
	conn, err := db.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = conn
	s.logger.Info("database ready", "path", dbPath)

	var backend brand.Backend
	switch cfg.Brand.Backend {
	case config.BrandBackendSQLite:
		backend = brand.NewSQLiteBackend(conn)
	default:
		path := cfg.Brand.Path
		if path == "" {
			path = s.home.BrandConfigPath()
		}
		backend = brand.NewFileBackend(path)
	}
	store, err := brand.NewStore(ctx, backend, s.logger)
	if err != nil {
		return fmt.Errorf("failed to load brand config: %w", err)
	}
	s.brand = store

	callStore := llmcall.NewStore(conn)
	s.recorder = llmcall.NewRecorder(callStore, s.logger)

	s.generator = quest.NewGenerator(quest.GeneratorConfig{
		Registry: s.registry,
		Resolver: s.resolver,
		Brand:    store,
		Recorder: s.recorder,
		Logger:   s.logger,
		Settings: generatorSettings(cfg),
	})

	if s.configMgr != nil {
		gen, registry := s.generator, s.registry
		s.configMgr.OnChange(func(c *config.Config) {
			registry.Reload(c.ToProviderRegistryConfig())
			gen.Configure(generatorSettings(c))
			s.logger.Info("providers reloaded from config", "default", c.Defaults.LLMProvider)
		})
	}

	s.mu.Lock()
	s.services = &svcctx.Services{
		Registry:       s.registry,
		Generator:      s.generator,
		BrandStore:     store,
		PromptResolver: s.resolver,
		LLMCallStore:   callStore,
		ConfigManager:  s.configMgr,
		Logger:         s.logger,
		Home:           s.home,
	}
	s.mu.Unlock()

	if !s.registry.HasLLM(s.generator.Settings().Provider) {
		s.logger.Warn("default LLM provider not available; quest endpoints will return 503",
			"provider", s.generator.Settings().Provider, "registered", s.registry.ListLLM())
	}
	return nil
}

func generatorSettings(c *config.Config) quest.Settings {
	return quest.Settings{
		Provider:    c.Defaults.LLMProvider,
		Temperature: c.Defaults.Temperature,
		MaxTokens:   c.Defaults.MaxTokens,
		Timeout:     c.Defaults.CallTimeout(),
	}
}

// shutdown stops the HTTP server, then flushes call records and closes storage.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.closeStorage()
	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) closeStorage() {
	if s.recorder != nil {
		s.recorder.Stop()
		s.recorder = nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		}
		s.db = nil
	}
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Registry returns the provider registry.
func (s *Server) Registry() *providers.Registry {
	return s.registry
}

// Generator returns the quest generator.
// Returns nil if the server hasn't started yet.
func (s *Server) Generator() *quest.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}
