package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/echo":
			body, _ := io.ReadAll(r.Body)
			if len(body) == 0 {
				body = []byte(`{}`)
			}
			w.Write([]byte(`{"method":"` + r.Method + `","body":` + string(body) + `}`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"User not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	ctx := context.Background()

	type echo struct {
		Method string         `json:"method"`
		Body   map[string]any `json:"body"`
	}

	t.Run("get", func(t *testing.T) {
		var resp echo
		if err := client.Get(ctx, "/echo", &resp); err != nil {
			t.Fatalf("Get: %v", err)
		}
		if resp.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", resp.Method)
		}
	})

	t.Run("post and put send json", func(t *testing.T) {
		var resp echo
		if err := client.Post(ctx, "/echo", map[string]string{"userId": "u1"}, &resp); err != nil {
			t.Fatalf("Post: %v", err)
		}
		if resp.Method != http.MethodPost || resp.Body["userId"] != "u1" {
			t.Errorf("unexpected echo %+v", resp)
		}
		if err := client.Put(ctx, "/echo", map[string]string{"tone": "calm"}, &resp); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if resp.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", resp.Method)
		}
	})

	t.Run("error body is surfaced", func(t *testing.T) {
		err := client.Get(ctx, "/missing", nil)
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if se.StatusCode != http.StatusNotFound || se.Message != "User not found" {
			t.Errorf("unexpected error %+v", se)
		}
	})

	t.Run("non-json error", func(t *testing.T) {
		err := client.Get(ctx, "/other", nil)
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Errorf("expected raw body in error, got %v", err)
		}
	})
}

func TestOutputTo(t *testing.T) {
	data := map[string]any{"status": "ok"}

	var buf bytes.Buffer
	if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "status: ok" {
		t.Errorf("unexpected yaml %q", buf.String())
	}

	buf.Reset()
	if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil || decoded["status"] != "ok" {
		t.Errorf("unexpected json %q", buf.String())
	}

	if err := OutputTo(&buf, "xml", data); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestOutputToFile(t *testing.T) {
	SetOutputFormat("yaml")
	defer SetOutputFormat("yaml")

	path := filepath.Join(t.TempDir(), "spec.json")
	if err := OutputToFile(map[string]string{"openapi": "2.0"}, path); err != nil {
		t.Fatalf("OutputToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Errorf(".json file should be JSON, got %q", data)
	}
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if GetOutputFormat() != OutputFormatJSON {
		t.Error("expected json")
	}
	SetOutputFormat("toml")
	if GetOutputFormat() != OutputFormatYAML {
		t.Error("unknown format should fall back to yaml")
	}
}

type fakeEndpoint struct {
	path     string
	llm      bool
	withCmd  bool
	hitCount int
}

func (e *fakeEndpoint) Route() (string, string, http.HandlerFunc) {
	return http.MethodGet, e.path, func(w http.ResponseWriter, r *http.Request) {
		e.hitCount++
		w.WriteHeader(http.StatusOK)
	}
}

func (e *fakeEndpoint) RequiresLLM() bool { return e.llm }

func (e *fakeEndpoint) Command(func() string) *cobra.Command {
	if !e.withCmd {
		return nil
	}
	return &cobra.Command{Use: strings.Trim(e.path, "/")}
}

func TestRegistry(t *testing.T) {
	open := &fakeEndpoint{path: "/open", withCmd: true}
	gated := &fakeEndpoint{path: "/gated", llm: true}

	reg := NewRegistry()
	reg.Register(open, gated)

	mux := http.NewServeMux()
	reg.RegisterRoutes(mux, func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})

	for path, want := range map[string]int{"/open": http.StatusOK, "/gated": http.StatusServiceUnavailable} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Errorf("%s: expected %d, got %d", path, want, rec.Code)
		}
	}
	if gated.hitCount != 0 {
		t.Error("gated handler should not run")
	}

	cmds := reg.Commands(func() string { return "" })
	if len(cmds) != 1 || cmds[0].Use != "open" {
		t.Errorf("expected only the open command, got %d", len(cmds))
	}
}
