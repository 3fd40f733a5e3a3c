package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClaude(serverURL string) *ClaudeProvider {
	return &ClaudeProvider{apiKey: "test-key", client: newTestClient(serverURL)}
}

func TestClaudeProvider_Name(t *testing.T) {
	p := &ClaudeProvider{apiKey: "k", client: &http.Client{}}
	if p.Name() != "claude" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestClaudeProvider_Complete(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotBody) //nolint:errcheck

		resp := claudeResponse{
			ID:    "msg_1",
			Model: claudeDefaultModel,
		}
		resp.Content = []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{{Type: "text", Text: "One day at a time."}}
		resp.Usage.InputTokens = 10
		resp.Usage.OutputTokens = 5

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	p := newTestClaude(server.URL)
	req := NewRequest("How's my week?")
	req.System = "You are a coach."
	resp, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if resp.Content != "One day at a time." {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Usage.PromptTokens != 10 || resp.Usage.CompletionTokens != 5 || resp.Usage.TotalTokens != 15 {
		t.Errorf("Usage = %+v", resp.Usage)
	}
	if gotHeaders.Get("x-api-key") != "test-key" {
		t.Error("api key header not set")
	}
	if gotHeaders.Get("anthropic-version") != claudeAPIVersion {
		t.Error("version header not set")
	}
	if gotBody["system"] != "You are a coach." {
		t.Errorf("system = %v", gotBody["system"])
	}
	if gotBody["stream"] != false {
		t.Errorf("stream = %v", gotBody["stream"])
	}
}

func TestClaudeProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`)
	}))
	defer server.Close()

	p := newTestClaude(server.URL)
	_, err := p.Complete(context.Background(), NewRequest("hi"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid x-api-key") {
		t.Errorf("error should carry API message: %v", err)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "claude" {
		t.Errorf("expected ProviderError from claude, got %T", err)
	}
}

func TestClaudeProvider_Stream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: message_start\n")
		fmt.Fprint(w, `data: {"type":"message_start"}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"Keep "}}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"content_block_delta","delta":{"type":"text_delta","text":"going."}}`+"\n\n")
		fmt.Fprint(w, `data: {"type":"message_stop"}`+"\n\n")
	}))
	defer server.Close()

	p := newTestClaude(server.URL)
	var out bytes.Buffer
	if err := p.Stream(context.Background(), NewRequest("hi"), &out); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if out.String() != "Keep going." {
		t.Errorf("streamed %q", out.String())
	}
}

func TestClaudeProvider_BuildRequest_Defaults(t *testing.T) {
	p := &ClaudeProvider{apiKey: "k"}
	req := &Request{Prompt: "hi"}
	built := p.buildRequest(req, false)

	if built["model"] != claudeDefaultModel {
		t.Errorf("model = %v", built["model"])
	}
	if built["max_tokens"] != claudeMaxTokens {
		t.Errorf("max_tokens = %v", built["max_tokens"])
	}
	if _, ok := built["temperature"]; ok {
		t.Error("zero temperature should be omitted")
	}
	if _, ok := built["system"]; ok {
		t.Error("empty system should be omitted")
	}
}
