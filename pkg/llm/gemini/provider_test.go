package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"modern-assistant-be/pkg/llm"
)

func newTestProvider(ts *httptest.Server) *GeminiProvider {
	p := NewGeminiProvider("test-key", "gemini-1.5-flash")
	p.BaseURL = ts.URL
	p.Client = ts.Client()
	return p
}

func TestChatSuccess(t *testing.T) {
	var gotRequest geminiChatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiChatResponse{
			Candidates: []geminiCandidate{
				{Content: &geminiContent{Parts: []geminiPart{{Text: "hello there"}}}},
			},
		})
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hey"},
	}, llm.WithMaxTokens(128))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "hello there" {
		t.Errorf("Chat() = %q, want %q", reply, "hello there")
	}

	if len(gotRequest.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(gotRequest.Contents))
	}
	wantRoles := []string{"user", "user", "model"}
	for i, want := range wantRoles {
		if gotRequest.Contents[i].Role != want {
			t.Errorf("contents[%d].Role = %q, want %q", i, gotRequest.Contents[i].Role, want)
		}
	}
	if gotRequest.GenerationConfig == nil || gotRequest.GenerationConfig.MaxOutputTokens != 128 {
		t.Error("max output tokens not forwarded")
	}
}

func TestChatRateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestChatServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream melted", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestChatClientErrorIsPlain(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected an error for status 400")
	}
	if errors.Is(err, llm.ErrRateLimited) || errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("status 400 must not map to a taxonomy sentinel: %v", err)
	}
}

func TestChatTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	p := NewGeminiProvider("test-key", "gemini-1.5-flash")
	p.BaseURL = ts.URL

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Errorf("transport failure should map to ErrUnavailable, got %v", err)
	}
}

func TestChatEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiChatResponse{})
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	reply, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("empty candidates should not error: %v", err)
	}
	if reply != "" {
		t.Errorf("expected empty reply, got %q", reply)
	}
}

func TestGenerateWrapsSingleTurn(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) != 1 || req.Contents[0].Role != "user" {
			t.Errorf("Generate must send a single user turn, got %+v", req.Contents)
		}
		json.NewEncoder(w).Encode(geminiChatResponse{
			Candidates: []geminiCandidate{
				{Content: &geminiContent{Parts: []geminiPart{{Text: "ok"}}}},
			},
		})
	}))
	defer ts.Close()

	p := newTestProvider(ts)
	reply, err := p.Generate(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if reply != "ok" {
		t.Errorf("Generate() = %q, want %q", reply, "ok")
	}
}
