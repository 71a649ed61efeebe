// Package gemini provides Google Gemini LLM provider integration.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

// Provider implements the Provider interface for Google Gemini
type Provider struct {
	providers.BaseProvider
	model    string
	baseURL  string
	apiKey   string
	defaults providers.ProviderDefaults
}

// NewProvider creates a new Gemini provider
func NewProvider(id, model, baseURL string, defaults providers.ProviderDefaults) *Provider {
	base, apiKey := providers.NewBaseProviderWithAPIKey(id, "GEMINI_API_KEY", "GOOGLE_API_KEY")

	return &Provider{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     defaults,
	}
}

// Gemini generateContent request/response structures
type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiAPIError   `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Chat sends a chat request to the Gemini generateContent API
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	start := time.Now()

	contents := make([]geminiContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	geminiReq := geminiRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.System != "" {
		geminiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(p.baseURL, "/"), p.model, p.apiKey)

	headers := providers.RequestHeaders{
		"Content-Type": "application/json",
	}

	logger.LLMCall(p.ID(), "chat", len(contents), "model", p.model)

	respBytes, err := p.MakeJSONRequest(ctx, url, geminiReq, headers, p.ID())
	if err != nil {
		return providers.ChatResponse{Latency: time.Since(start)}, err
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBytes, &geminiResp); err != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if geminiResp.Error != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("gemini API error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("gemini response contained no candidates")
	}

	return providers.ChatResponse{
		Content: geminiResp.Candidates[0].Content.Parts[0].Text,
		Latency: time.Since(start),
		Raw:     respBytes,
	}, nil
}
