// Package ai provides the coaching backend: a small provider abstraction
// over hosted LLM APIs, with Gemini as the default.
package ai

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Provider is the interface all AI providers implement.
type Provider interface {
	// Name returns the provider name (e.g., "gemini", "claude").
	Name() string

	// Complete sends a prompt and returns the complete response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Stream sends a prompt and writes response text to w as it arrives.
	Stream(ctx context.Context, req *Request, w io.Writer) error
}

// Request is an AI completion request.
type Request struct {
	// Prompt is the user's input text.
	Prompt string

	// System is an optional system message to set context.
	System string

	// Model overrides the provider default when non-empty.
	Model string

	// MaxTokens caps the generated output.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// Validate checks that the request can be sent.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

// Response is an AI completion response.
type Response struct {
	// Content is the generated text.
	Content string

	// Model is the model that actually served the request.
	Model string

	// Usage contains token counts.
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a request with sensible defaults.
func NewRequest(prompt string) *Request {
	return &Request{
		Prompt:      prompt,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// ProviderError wraps provider-specific failures with the provider name.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
