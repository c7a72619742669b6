package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coffeequest/internal/config"
	"github.com/jackzampolin/coffeequest/internal/home"
	"github.com/jackzampolin/coffeequest/internal/server"
)

var (
	serveHost string
	servePort string
	logFormat string
	logLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Coffee Quest server",
	Long: `Start the Coffee Quest HTTP server.

Configuration is read from --config, ./config.yaml or {home}/config.yaml,
and COFFEEQUEST_* environment variables override it. Edits to the config
file are picked up without a restart.

The server provides:
  - /health, /status          - Health and provider status
  - /api/experience[...]      - Quest generation
  - /api/brand-config         - Brand configuration
  - /swagger                  - API reference

Examples:
  coffeequest serve                    # Start on 127.0.0.1:5001
  coffeequest serve --port 3000        # Start on custom port
  coffeequest serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger, err := newLogger(logFormat, logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		cfgMgr, err := config.NewManager(cfgFile, h.Path())
		if err != nil {
			return err
		}
		if f := cfgMgr.ConfigFile(); f != "" {
			logger.Info("loaded config", "file", f)
			cfgMgr.WatchConfig()
		} else {
			logger.Info("no config file found, using defaults")
		}

		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: cfgMgr,
			Home:          h,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func newLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: config server.host)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default: config server.port)")
	serveCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
}
