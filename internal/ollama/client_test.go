package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:9999")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.baseURL != "http://localhost:9999" {
		t.Errorf("baseURL = %q, want %q", client.baseURL, "http://localhost:9999")
	}
	if client.client == nil {
		t.Error("HTTP client is nil")
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
}

func TestModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Method = %q, want GET", r.Method)
		}
		if r.URL.Path != "/api/tags" {
			t.Errorf("Path = %q, want /api/tags", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[{"name":"llama3:8b","modified_at":"2024-05-01T00:00:00Z","size":123},{"name":"qwen2.5-coder:7b"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	names, err := client.Models(context.Background())
	if err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("len(names) = %d, want 2", len(names))
	}
	if names[0] != "llama3:8b" || names[1] != "qwen2.5-coder:7b" {
		t.Errorf("names = %v", names)
	}
}

func TestModelsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Models(context.Background()); err == nil {
		t.Error("Models() should return error for HTTP 500")
	}
}

func TestGenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("Path = %q, want /api/generate", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", r.Header.Get("Content-Type"))
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Request.Model = %q, want test-model", req.Model)
		}
		if req.Prompt != "fix this" {
			t.Errorf("Request.Prompt = %q, want %q", req.Prompt, "fix this")
		}
		if req.System != "you are a patch fixer" {
			t.Errorf("Request.System = %q", req.System)
		}
		if req.Stream {
			t.Error("Request.Stream = true, want false")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GenerateResponse{
			Model:    "test-model",
			Response: "here is the fix",
			Done:     true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Generate(context.Background(), "test-model", "fix this", "you are a patch fixer")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "here is the fix" {
		t.Errorf("Generate() = %q, want %q", got, "here is the fix")
	}
}

func TestGenerateRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(GenerateResponse{Response: "eventually", Done: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Generate(context.Background(), "m", "p", "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "eventually" {
		t.Errorf("Generate() = %q, want %q", got, "eventually")
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Generate(context.Background(), "missing", "p", ""); err == nil {
		t.Error("Generate() should return error for HTTP 404")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Generate(context.Background(), "m", "p", ""); err == nil {
		t.Error("Generate() should return error for invalid JSON response")
	}
}

func TestGenerateContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Generate(ctx, "m", "p", ""); err == nil {
		t.Error("Generate() should return error when context is cancelled")
	}
}
