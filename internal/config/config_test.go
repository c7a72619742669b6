package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	groq, ok := cfg.GetLLMProvider("groq")
	if !ok {
		t.Fatal("expected default groq provider")
	}
	if groq.APIKey != "${GROQ_API_KEY}" {
		t.Errorf("expected groq API key placeholder, got %s", groq.APIKey)
	}
	if groq.MaxRetries != 0 {
		t.Errorf("expected no retries by default, got %d", groq.MaxRetries)
	}
	if cfg.Batch.Concurrency != 1 {
		t.Errorf("expected sequential batch by default, got %d", cfg.Batch.Concurrency)
	}
	if cfg.Server.Addr() != "127.0.0.1:5001" {
		t.Errorf("unexpected default addr %s", cfg.Server.Addr())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	enabled := cfg.EnabledLLMProviders()
	if _, ok := enabled["gemini"]; ok {
		t.Error("gemini should be disabled by default")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		t.Setenv("TEST_API_KEY", "secret123")

		if result := ResolveEnvVars("${TEST_API_KEY}"); result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		if result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}"); result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		if result := ResolveEnvVars("literal-value"); result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestConfig_ToProviderRegistryConfig(t *testing.T) {
	t.Setenv("TEST_GROQ_KEY", "gsk-123")

	cfg := DefaultConfig()
	cfg.LLMProviders["groq"] = LLMProviderCfg{
		Type:    "groq",
		APIKey:  "${TEST_GROQ_KEY}",
		Enabled: true,
	}

	reg := cfg.ToProviderRegistryConfig()
	groq := reg.LLMProviders["groq"]
	if groq.APIKey != "gsk-123" {
		t.Errorf("expected resolved key gsk-123, got %s", groq.APIKey)
	}
	if groq.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", groq.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects unknown brand backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Brand.Backend = "postgres"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown backend")
		}
	})

	t.Run("rejects zero concurrency", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Batch.Concurrency = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for zero concurrency")
		}
	})
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
server:
  port: "8080"
batch:
  concurrency: 3
brand:
  backend: sqlite
`)

		mgr, err := NewManager(path)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Server.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Server.Port)
		}
		if cfg.Server.Host != "127.0.0.1" {
			t.Errorf("expected default host to survive partial file, got %s", cfg.Server.Host)
		}
		if cfg.Batch.Concurrency != 3 {
			t.Errorf("expected concurrency 3, got %d", cfg.Batch.Concurrency)
		}
		if cfg.Brand.Backend != BrandBackendSQLite {
			t.Errorf("expected sqlite backend, got %s", cfg.Brand.Backend)
		}
		if mgr.ConfigFile() != path {
			t.Errorf("expected config file %s, got %s", path, mgr.ConfigFile())
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "server:\n  port: \"8080\"\n")
		t.Setenv("COFFEEQUEST_SERVER_PORT", "9090")

		mgr, err := NewManager(path)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}
		if got := mgr.Get().Server.Port; got != "9090" {
			t.Errorf("expected env override 9090, got %s", got)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "brand:\n  backend: mongo\n")
		if _, err := NewManager(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Coffee Quest configuration") {
		t.Error("expected header comment")
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("written default should load: %v", err)
	}
	if mgr.Get().Defaults.LLMProvider != "groq" {
		t.Errorf("expected groq default provider, got %s", mgr.Get().Defaults.LLMProvider)
	}
}

func TestManager_OnChange_Multiple(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, t.TempDir(), "batch:\n  concurrency: 1\n"))
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 3 {
		t.Errorf("expected 3 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, t.TempDir(), "batch:\n  concurrency: 2\n"))
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mgr.Get().Batch.Concurrency
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestManager_WatchConfig(t *testing.T) {
	configFile := writeConfig(t, t.TempDir(), "batch:\n  concurrency: 1\n")

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	var callbackCount atomic.Int32
	var lastValue atomic.Int32

	mgr.OnChange(func(cfg *Config) {
		callbackCount.Add(1)
		lastValue.Store(int32(cfg.Batch.Concurrency))
	})

	mgr.WatchConfig()

	// Give fsnotify time to set up the watcher
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(configFile, []byte("batch:\n  concurrency: 4\n"), 0o644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if callbackCount.Load() > 0 && lastValue.Load() == 4 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if callbackCount.Load() == 0 {
		t.Fatal("callback was not invoked after config file change")
	}
	if got := mgr.Get().Batch.Concurrency; got != 4 {
		t.Errorf("config not updated: expected 4, got %d", got)
	}
	if lastValue.Load() != 4 {
		t.Errorf("callback received wrong value: expected 4, got %d", lastValue.Load())
	}
}
