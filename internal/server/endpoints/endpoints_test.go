package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackzampolin/coffeequest/internal/brand"
	"github.com/jackzampolin/coffeequest/internal/db"
	"github.com/jackzampolin/coffeequest/internal/llmcall"
	"github.com/jackzampolin/coffeequest/internal/prompts"
	"github.com/jackzampolin/coffeequest/internal/providers"
	"github.com/jackzampolin/coffeequest/internal/quest"
	"github.com/jackzampolin/coffeequest/internal/svcctx"
)

const questReply = `{
  "narrative": "The Roastery gates open for you.",
  "challenge": {
    "title": "Pour-Over Trial",
    "description": "Brew one pour-over this week.",
    "successCriteria": "One pour-over order",
    "xpReward": 120,
    "bonusPoints": 80
  },
  "reward": {
    "type": "badge",
    "label": "Pour-Over Adept",
    "description": "A badge for your profile.",
    "conditions": "Earned on completion"
  },
  "progress": {"level": 3, "points": 1280, "streakDays": 4}
}`

type testEnv struct {
	mux   *http.ServeMux
	mock  *providers.MockClient
	store *brand.Store
	calls *llmcall.Store
	gen   *quest.Generator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	mock := providers.NewMockClient()
	mock.ResponseText = questReply
	reg := providers.NewRegistry()
	reg.RegisterLLM(providers.MockClientName, mock)

	resolver := prompts.NewResolver(nil)
	quest.RegisterPrompts(resolver)

	store, err := brand.NewStore(ctx, brand.NewFileBackend(filepath.Join(t.TempDir(), "brand_config.json")), nil)
	if err != nil {
		t.Fatalf("brand store: %v", err)
	}

	gen := quest.NewGenerator(quest.GeneratorConfig{
		Registry: reg,
		Resolver: resolver,
		Brand:    store,
		Settings: quest.Settings{Provider: providers.MockClientName, Timeout: 5 * time.Second},
	})

	svcs := &svcctx.Services{
		Registry:       reg,
		Generator:      gen,
		BrandStore:     store,
		PromptResolver: resolver,
		LLMCallStore:   llmcall.NewStore(conn),
	}

	mux := http.NewServeMux()
	for _, ep := range All() {
		method, path, handler := ep.Route()
		h := handler
		mux.HandleFunc(method+" "+path, func(w http.ResponseWriter, r *http.Request) {
			h(w, r.WithContext(svcctx.WithServices(r.Context(), svcs)))
		})
	}

	return &testEnv{mux: mux, mock: mock, store: store, calls: svcs.LLMCallStore, gen: gen}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode[HealthResponse](t, rec)
	if resp.Status != "ok" || resp.Service != ServiceName {
		t.Errorf("unexpected health response %+v", resp)
	}
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t)

	resp := decode[StatusResponse](t, env.do(t, "GET", "/status", ""))
	if resp.Providers.Default != providers.MockClientName || !resp.Providers.Available {
		t.Errorf("expected mock provider available, got %+v", resp.Providers)
	}
	if resp.SeedUsers != 3 {
		t.Errorf("expected 3 seed users, got %d", resp.SeedUsers)
	}
	if !strings.HasPrefix(resp.Brand.Backend, "file:") {
		t.Errorf("expected file backend, got %q", resp.Brand.Backend)
	}
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)

	list := decode[[]quest.UserProfile](t, env.do(t, "GET", "/api/users", ""))
	if len(list) != 3 || list[0].Name != "Aarav" {
		t.Errorf("unexpected users %+v", list)
	}
}

func TestExperience(t *testing.T) {
	t.Run("seed user", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, "POST", "/api/experience", `{"userId":"u1","goal":"Boost Weekend Orders"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		exp := decode[quest.Experience](t, rec)
		if exp.User.Name != "Aarav" {
			t.Errorf("expected Aarav, got %q", exp.User.Name)
		}
		if exp.Challenge.Title != "Pour-Over Trial" {
			t.Errorf("expected reply challenge, got %q", exp.Challenge.Title)
		}
		if !strings.Contains(env.mock.Requests()[0].Messages[1].Content, "boost-weekend-orders") {
			t.Error("goal should reach the prompt slugged")
		}
	})

	t.Run("unknown user is 404 without provider call", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, "POST", "/api/experience", `{"userId":"nobody"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if resp := decode[ErrorResponse](t, rec); resp.Error != "User not found" {
			t.Errorf("unexpected error %q", resp.Error)
		}
		if env.mock.RequestCount() != 0 {
			t.Error("provider should not be called")
		}
	})

	t.Run("bad body", func(t *testing.T) {
		env := newTestEnv(t)
		if rec := env.do(t, "POST", "/api/experience", `{`); rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if rec := env.do(t, "POST", "/api/experience", `{}`); rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for missing userId, got %d", rec.Code)
		}
	})

	t.Run("unparseable reply is 500", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ResponseText = "the quest is a secret"

		rec := env.do(t, "POST", "/api/experience", `{"userId":"u2"}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if resp := decode[ErrorResponse](t, rec); resp.Error != "failed to generate experience" {
			t.Errorf("unexpected error %q", resp.Error)
		}
	})
}

func TestExperience_ProviderNotConfigured(t *testing.T) {
	env := newTestEnv(t)
	env.gen.Configure(quest.Settings{Provider: "groq"})

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"unknown user", "/api/experience", `{"userId":"nobody"}`, http.StatusNotFound},
		{"seed user", "/api/experience", `{"userId":"u1"}`, http.StatusServiceUnavailable},
		{"custom without name", "/api/experience/custom", `{"user":{}}`, http.StatusBadRequest},
		{"custom", "/api/experience/custom", `{"user":{"name":"Zoya"}}`, http.StatusServiceUnavailable},
		{"empty batch", "/api/experience/batch", `{"users":[]}`, http.StatusBadRequest},
		{"batch", "/api/experience/batch", `{"users":[{"name":"Zoya"}]}`, http.StatusServiceUnavailable},
		{"channel assets without experience", "/api/experience/channel-assets", `{}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := env.do(t, "POST", tt.path, tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
	if env.mock.RequestCount() != 0 {
		t.Error("provider should not be called")
	}
}

func TestCustomExperience(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing name", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/experience/custom", `{"user":{"city":"Pune"}}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("profile with defaults filled", func(t *testing.T) {
		env.mock.ResponseText = `{"challenge":{"title":"Only a title"}}`
		rec := env.do(t, "POST", "/api/experience/custom", `{"user":{"name":"Zoya","loyalty":{"level":2,"points":300,"streakDays":1}}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		exp := decode[quest.Experience](t, rec)
		if exp.Challenge.Title != "Only a title" {
			t.Errorf("expected reply title, got %q", exp.Challenge.Title)
		}
		if exp.Narrative == "" || exp.Reward.Label == "" {
			t.Error("missing fields should be defaulted")
		}
		if exp.Progress.Level != 2 {
			t.Errorf("expected default progress level 2, got %d", exp.Progress.Level)
		}
	})
}

func TestBatchExperience(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		env := newTestEnv(t)
		for _, body := range []string{`{}`, `{"users":[]}`} {
			if rec := env.do(t, "POST", "/api/experience/batch", body); rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", body, rec.Code)
			}
		}
	})

	t.Run("per-item results in order", func(t *testing.T) {
		env := newTestEnv(t)
		body := `{"users":[{"name":"Ana"},{"city":"Goa"},"not a profile",{"name":"Ben"}]}`

		rec := env.do(t, "POST", "/api/experience/batch", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decode[BatchExperienceResponse](t, rec)
		if len(resp.Results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(resp.Results))
		}

		want := []bool{true, false, false, true}
		for i, r := range resp.Results {
			if r.Success != want[i] {
				t.Errorf("result %d: success=%v, want %v (%s)", i, r.Success, want[i], r.Error)
			}
		}
		if resp.Results[0].User.Name != "Ana" || resp.Results[3].User.Name != "Ben" {
			t.Error("results should keep input order")
		}
		if resp.Results[1].Error == "" {
			t.Error("failed item should carry an error")
		}
		if env.mock.RequestCount() != 2 {
			t.Errorf("expected 2 provider calls, got %d", env.mock.RequestCount())
		}
	})
}

func TestChannelAssets(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing experience", func(t *testing.T) {
		if rec := env.do(t, "POST", "/api/experience/channel-assets", `{}`); rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/experience/channel-assets", `{"experience":{"user":{"name":"Ana"}}}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("empty reply uses defaults", func(t *testing.T) {
		env.mock.ResponseText = `{}`
		exp := quest.DefaultExperience(quest.UserProfile{Name: "Ana"})
		body, _ := json.Marshal(ChannelAssetsRequest{Experience: &exp})

		rec := env.do(t, "POST", "/api/experience/channel-assets", string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assets := decode[quest.ChannelAssets](t, rec)
		if want := quest.DefaultChannelAssets(exp); assets.Email.Subject != want.Email.Subject {
			t.Errorf("expected default subject %q, got %q", want.Email.Subject, assets.Email.Subject)
		}
		if assets.InApp.CTALabel != quest.DefaultCTALabel {
			t.Errorf("unexpected CTA %q", assets.InApp.CTALabel)
		}
	})
}

func TestBrandConfig(t *testing.T) {
	env := newTestEnv(t)

	cfg := decode[brand.Config](t, env.do(t, "GET", "/api/brand-config", ""))
	if cfg.BrandName != "Roastery Realm Coffee" {
		t.Errorf("unexpected brand %q", cfg.BrandName)
	}

	t.Run("merge", func(t *testing.T) {
		rec := env.do(t, "PUT", "/api/brand-config", `{"tone":"Bold","primaryObjectives":["retention"],"unknown":1}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		got := decode[brand.Config](t, rec)
		if got.Tone != "Bold" || got.BrandName != "Roastery Realm Coffee" {
			t.Errorf("unexpected merge result %+v", got)
		}
		if len(got.PrimaryObjectives) != 1 {
			t.Errorf("arrays should be replaced, got %v", got.PrimaryObjectives)
		}
		if env.store.Get().Tone != "Bold" {
			t.Error("store should hold the merged config")
		}
	})

	t.Run("rejects non-object", func(t *testing.T) {
		for _, body := range []string{`[1,2]`, `"x"`, `{"tone":5}`} {
			if rec := env.do(t, "PUT", "/api/brand-config", body); rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestPrompts(t *testing.T) {
	env := newTestEnv(t)

	list := decode[PromptsListResponse](t, env.do(t, "GET", "/api/prompts", ""))
	if len(list.Prompts) != 4 {
		t.Errorf("expected 4 prompts, got %d", len(list.Prompts))
	}

	rec := env.do(t, "GET", "/api/prompts/quest.experience.system", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if p := decode[prompts.EmbeddedPrompt](t, rec); p.Hash == "" {
		t.Error("expected prompt hash")
	}

	if rec := env.do(t, "GET", "/api/prompts/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestLLMCalls(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	call := &llmcall.Call{
		ID:        "call-1",
		Timestamp: time.Now().UTC(),
		RequestID: "req-1",
		PromptKey: "quest.experience.user",
		Provider:  "mock",
		Model:     "mock-model",
		Success:   true,
	}
	if err := env.calls.Save(ctx, call); err != nil {
		t.Fatalf("save: %v", err)
	}

	list := decode[LLMCallsResponse](t, env.do(t, "GET", "/api/llmcalls?request_id=req-1&status=ok&since=1h", ""))
	if list.Summary.Calls != 1 || list.Calls[0].ID != "call-1" {
		t.Errorf("unexpected list %+v", list)
	}
	empty := decode[LLMCallsResponse](t, env.do(t, "GET", "/api/llmcalls?request_id=req-2", ""))
	if empty.Calls == nil || len(empty.Calls) != 0 {
		t.Errorf("expected empty call list, got %+v", empty.Calls)
	}

	for _, q := range []string{"limit=abc", "status=maybe", "since=yesterday"} {
		if rec := env.do(t, "GET", "/api/llmcalls?"+q, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}

	got := decode[LLMCallResponse](t, env.do(t, "GET", "/api/llmcalls/call-1", ""))
	if got.Call == nil || got.Call.PromptKey != "quest.experience.user" {
		t.Errorf("unexpected call %+v", got.Call)
	}
	if rec := env.do(t, "GET", "/api/llmcalls/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	counts := decode[LLMCallCountsResponse](t, env.do(t, "GET", "/api/llmcalls/counts?since=1h", ""))
	if counts.Counts["quest.experience.user"] != 1 {
		t.Errorf("unexpected counts %v", counts.Counts)
	}
	if rec := env.do(t, "GET", "/api/llmcalls/counts?since=0s", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero since, got %d", rec.Code)
	}
}

func TestSwagger(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/swagger.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := decode[map[string]any](t, rec)
	paths, _ := doc["paths"].(map[string]any)
	if _, ok := paths["/api/experience"]; !ok {
		t.Error("swagger document should list /api/experience")
	}

	if rec := env.do(t, "GET", "/", ""); rec.Code != http.StatusOK {
		t.Errorf("expected landing page, got %d", rec.Code)
	}
}
