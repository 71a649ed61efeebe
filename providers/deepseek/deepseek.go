// Package deepseek provides DeepSeek LLM provider integration.
//
// DeepSeek exposes an OpenAI-compatible chat completions API.
package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

// Provider implements the Provider interface for DeepSeek
type Provider struct {
	providers.BaseProvider
	model    string
	baseURL  string
	apiKey   string
	defaults providers.ProviderDefaults
}

// NewProvider creates a new DeepSeek provider
func NewProvider(id, model, baseURL string, defaults providers.ProviderDefaults) *Provider {
	base, apiKey := providers.NewBaseProviderWithAPIKey(id, "DEEPSEEK_API_KEY", "")

	return &Provider{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     defaults,
	}
}

type deepSeekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepSeekMessage `json:"messages"`
	Temperature float32           `json:"temperature,omitempty"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Stream      bool              `json:"stream"`
}

type deepSeekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepSeekResponse struct {
	Choices []deepSeekChoice `json:"choices"`
	Error   *deepSeekError   `json:"error,omitempty"`
}

type deepSeekChoice struct {
	Message deepSeekMessage `json:"message"`
}

type deepSeekError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Chat sends a chat request to DeepSeek
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	start := time.Now()

	messages := make([]deepSeekMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, deepSeekMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, deepSeekMessage{Role: msg.Role, Content: msg.Content})
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.defaults.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.defaults.MaxTokens
	}

	dsReq := deepSeekRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	headers := providers.RequestHeaders{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + p.apiKey,
	}

	logger.LLMCall(p.ID(), "chat", len(messages), "model", p.model)

	respBytes, err := p.MakeJSONRequest(ctx, p.baseURL+"/chat/completions", dsReq, headers, p.ID())
	if err != nil {
		return providers.ChatResponse{Latency: time.Since(start)}, err
	}

	var dsResp deepSeekResponse
	if err := json.Unmarshal(respBytes, &dsResp); err != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if dsResp.Error != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("deepseek API error: %s", dsResp.Error.Message)
	}
	if len(dsResp.Choices) == 0 {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("deepseek response contained no choices")
	}

	return providers.ChatResponse{
		Content: dsResp.Choices[0].Message.Content,
		Latency: time.Since(start),
		Raw:     respBytes,
	}, nil
}
