package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	geminiAPIBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel = "gemini-2.5-flash"
	geminiTimeout      = 120 * time.Second
)

// GeminiProvider implements the Provider interface for Google's Gemini.
type GeminiProvider struct {
	apiKey       string
	defaultModel string
	client       *http.Client
}

func init() {
	Register("gemini", func(apiKey string) (Provider, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("API key required for Gemini provider")
		}
		return &GeminiProvider{
			apiKey:       apiKey,
			defaultModel: geminiDefaultModel,
			client:       &http.Client{Timeout: geminiTimeout},
		}, nil
	})
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := g.model(req)
	body, err := json.Marshal(g.buildRequest(req))
	if err != nil {
		return nil, err
	}

	// Gemini authenticates via a query parameter.
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		geminiAPIBaseURL, model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Message: "sending request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{
			Provider: "gemini",
			Message:  fmt.Sprintf("API error (status %d): %s", resp.StatusCode, string(body)),
		}
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &ProviderError{Provider: "gemini", Message: "decoding response", Err: err}
	}

	usage := Usage{}
	if apiResp.UsageMetadata != nil {
		usage.PromptTokens = apiResp.UsageMetadata.PromptTokenCount
		usage.CompletionTokens = apiResp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = apiResp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content: apiResp.text(),
		Model:   model,
		Usage:   usage,
	}, nil
}

func (g *GeminiProvider) Stream(ctx context.Context, req *Request, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	model := g.model(req)
	body, err := json.Marshal(g.buildRequest(req))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?key=%s&alt=sse",
		geminiAPIBaseURL, model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return &ProviderError{Provider: "gemini", Message: "sending request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &ProviderError{
			Provider: "gemini",
			Message:  fmt.Sprintf("API error (status %d): %s", resp.StatusCode, string(body)),
		}
	}

	// The SSE stream arrives as "data: {json}" lines.
	var buffer []byte
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := resp.Body.Read(buf)
		if n > 0 {
			buffer = append(buffer, buf[:n]...)
			for {
				idx := bytes.IndexByte(buffer, '\n')
				if idx == -1 {
					break
				}
				line := string(bytes.TrimSpace(buffer[:idx]))
				buffer = buffer[idx+1:]
				if err := writeGeminiEvent(line, w); err != nil {
					return err
				}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	// A final event may not be newline-terminated.
	if len(buffer) > 0 {
		if err := writeGeminiEvent(string(bytes.TrimSpace(buffer)), w); err != nil {
			return err
		}
	}
	return nil
}

// writeGeminiEvent parses one SSE line and writes its text delta, if any.
func writeGeminiEvent(line string, w io.Writer) error {
	if !strings.HasPrefix(line, "data: ") {
		return nil
	}
	data := strings.TrimPrefix(line, "data: ")

	var event geminiResponse
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil // skip malformed events
	}
	if text := event.text(); text != "" {
		if _, err := w.Write([]byte(text)); err != nil {
			return err
		}
	}
	return nil
}

func (g *GeminiProvider) model(req *Request) string {
	if req.Model != "" {
		return req.Model
	}
	return g.defaultModel
}

func (g *GeminiProvider) buildRequest(req *Request) geminiRequest {
	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.System != "" {
		apiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}
	return apiReq
}

// Gemini API types
type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata,omitempty"`
}

func (r *geminiResponse) text() string {
	if len(r.Candidates) > 0 && len(r.Candidates[0].Content.Parts) > 0 {
		return r.Candidates[0].Content.Parts[0].Text
	}
	return ""
}
