package providers

import (
	"sync"
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Run("register and get LLM", func(t *testing.T) {
		r := NewRegistry()
		mock := NewMockClient()

		r.RegisterLLM("test-llm", mock)

		client, err := r.GetLLM("test-llm")
		if err != nil {
			t.Fatalf("GetLLM() error = %v", err)
		}
		if client != mock {
			t.Error("got different client than registered")
		}
	})

	t.Run("get nonexistent LLM", func(t *testing.T) {
		r := NewRegistry()

		if _, err := r.GetLLM("nonexistent"); err == nil {
			t.Error("expected error for nonexistent LLM")
		}
	})

	t.Run("list is sorted", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterLLM("b", NewMockClient())
		r.RegisterLLM("a", NewMockClient())

		got := r.ListLLM()
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("ListLLM() = %v, want [a b]", got)
		}
	})

	t.Run("unregister", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterLLM("my-llm", NewMockClient())
		r.UnregisterLLM("my-llm")

		if r.HasLLM("my-llm") {
			t.Error("HasLLM() = true after UnregisterLLM")
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		r := NewRegistry()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				r.RegisterLLM("concurrent-llm", NewMockClient())
			}()
			go func() {
				defer wg.Done()
				_, _ = r.GetLLM("concurrent-llm") // May fail, that's ok
			}()
		}
		wg.Wait()
	})
}

func TestNewRegistryFromConfig(t *testing.T) {
	t.Run("registers providers from config", func(t *testing.T) {
		r := NewRegistryFromConfig(RegistryConfig{
			LLMProviders: map[string]LLMProviderConfig{
				"groq": {
					Type:    GroqName,
					APIKey:  "test-groq-key",
					Enabled: true,
				},
				"openai": {
					Type:    TypeOpenAI,
					Model:   "gpt-4o-mini",
					APIKey:  "test-openai-key",
					Enabled: true,
				},
			},
		}, nil)

		if !r.HasLLM("groq") || !r.HasLLM("openai") {
			t.Fatalf("expected groq and openai, got %v", r.ListLLM())
		}

		client, _ := r.GetLLM("groq")
		oc, ok := client.(*OpenAIClient)
		if !ok {
			t.Fatalf("expected *OpenAIClient, got %T", client)
		}
		if oc.Model() != GroqDefaultModel {
			t.Errorf("Model() = %q, want %q", oc.Model(), GroqDefaultModel)
		}
		if oc.Name() != "groq" {
			t.Errorf("Name() = %q, want groq", oc.Name())
		}
	})

	t.Run("skips disabled providers", func(t *testing.T) {
		r := NewRegistryFromConfig(RegistryConfig{
			LLMProviders: map[string]LLMProviderConfig{
				"groq": {Type: GroqName, APIKey: "test-key", Enabled: false},
			},
		}, nil)

		if r.HasLLM("groq") {
			t.Error("disabled provider should not be registered")
		}
	})

	t.Run("skips providers without API keys", func(t *testing.T) {
		r := NewRegistryFromConfig(RegistryConfig{
			LLMProviders: map[string]LLMProviderConfig{
				"groq": {Type: GroqName, Enabled: true},
			},
		}, nil)

		if r.HasLLM("groq") {
			t.Error("provider without API key should not be registered")
		}
	})

	t.Run("skips unknown types", func(t *testing.T) {
		r := NewRegistryFromConfig(RegistryConfig{
			LLMProviders: map[string]LLMProviderConfig{
				"weird": {Type: "carrier-pigeon", APIKey: "k", Enabled: true},
			},
		}, nil)

		if r.HasLLM("weird") {
			t.Error("unknown provider type should not be registered")
		}
	})
}

func TestRegistry_Reload(t *testing.T) {
	groq := func(key, model string) RegistryConfig {
		return RegistryConfig{
			LLMProviders: map[string]LLMProviderConfig{
				"groq": {Type: GroqName, Model: model, APIKey: key, RateLimit: 30, Enabled: true},
			},
		}
	}

	t.Run("adds new providers on reload", func(t *testing.T) {
		r := NewRegistryFromConfig(RegistryConfig{}, nil)
		if r.HasLLM("groq") {
			t.Error("should start without groq")
		}

		r.Reload(groq("new-key", ""))

		if !r.HasLLM("groq") {
			t.Error("expected groq after reload")
		}
	})

	t.Run("removes providers on reload", func(t *testing.T) {
		r := NewRegistryFromConfig(groq("key", ""), nil)
		r.Reload(RegistryConfig{})

		if r.HasLLM("groq") {
			t.Error("groq should be removed after reload")
		}
	})

	t.Run("keeps manually registered clients", func(t *testing.T) {
		r := NewRegistryFromConfig(groq("key", ""), nil)
		r.RegisterLLM(MockClientName, NewMockClient())
		r.Reload(RegistryConfig{})

		if !r.HasLLM(MockClientName) {
			t.Error("manually registered client should survive reload")
		}
	})

	t.Run("rebuilds providers with changed settings", func(t *testing.T) {
		r := NewRegistryFromConfig(groq("key", "model-a"), nil)
		r.Reload(groq("key", "model-b"))

		client, _ := r.GetLLM("groq")
		if got := client.(*OpenAIClient).Model(); got != "model-b" {
			t.Errorf("Model() = %q, want model-b", got)
		}
	})

	t.Run("keeps providers with unchanged config", func(t *testing.T) {
		r := NewRegistryFromConfig(groq("same-key", "test-model"), nil)
		client1, _ := r.GetLLM("groq")

		r.Reload(groq("same-key", "test-model"))
		client2, _ := r.GetLLM("groq")

		if client1 != client2 {
			t.Error("client should not be replaced when config unchanged")
		}
	})

	t.Run("concurrent reload is safe", func(t *testing.T) {
		r := NewRegistryFromConfig(groq("key", ""), nil)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func(n int) {
				defer wg.Done()
				r.Reload(groq("key-"+string(rune('a'+n)), ""))
			}(i)
			go func() {
				defer wg.Done()
				_, _ = r.GetLLM("groq")
			}()
		}
		wg.Wait()
	})
}
