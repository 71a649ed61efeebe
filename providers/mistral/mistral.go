// Package mistral provides Mistral AI LLM provider integration.
//
// Mistral exposes an OpenAI-compatible chat completions API.
package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

// Provider implements the Provider interface for Mistral
type Provider struct {
	providers.BaseProvider
	model    string
	baseURL  string
	apiKey   string
	defaults providers.ProviderDefaults
}

// NewProvider creates a new Mistral provider
func NewProvider(id, model, baseURL string, defaults providers.ProviderDefaults) *Provider {
	base, apiKey := providers.NewBaseProviderWithAPIKey(id, "MISTRAL_API_KEY", "")

	return &Provider{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     defaults,
	}
}

type mistralRequest struct {
	Model       string           `json:"model"`
	Messages    []mistralMessage `json:"messages"`
	Temperature float32          `json:"temperature,omitempty"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

type mistralMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type mistralResponse struct {
	Choices []mistralChoice `json:"choices"`
	Error   *mistralError   `json:"error,omitempty"`
}

type mistralChoice struct {
	Message mistralMessage `json:"message"`
}

type mistralError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Chat sends a chat request to Mistral
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	start := time.Now()

	messages := make([]mistralMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, mistralMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, mistralMessage{Role: msg.Role, Content: msg.Content})
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.defaults.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.defaults.MaxTokens
	}

	mReq := mistralRequest{
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

	respBytes, err := p.MakeJSONRequest(ctx, p.baseURL+"/chat/completions", mReq, headers, p.ID())
	if err != nil {
		return providers.ChatResponse{Latency: time.Since(start)}, err
	}

	var mResp mistralResponse
	if err := json.Unmarshal(respBytes, &mResp); err != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if mResp.Error != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("mistral API error: %s", mResp.Error.Message)
	}
	if len(mResp.Choices) == 0 {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("mistral response contained no choices")
	}

	return providers.ChatResponse{
		Content: mResp.Choices[0].Message.Content,
		Latency: time.Since(start),
		Raw:     respBytes,
	}, nil
}
