// Package openai provides OpenAI ChatGPT LLM provider integration.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

// Provider implements the Provider interface for OpenAI
type Provider struct {
	providers.BaseProvider
	model    string
	baseURL  string
	apiKey   string
	defaults providers.ProviderDefaults
}

// NewProvider creates a new OpenAI provider
func NewProvider(id, model, baseURL string, defaults providers.ProviderDefaults) *Provider {
	base, apiKey := providers.NewBaseProviderWithAPIKey(id, "OPENAI_API_KEY", "OPENAI_TOKEN")

	return &Provider{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     defaults,
	}
}

// OpenAI API request/response structures
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []openAIChoice `json:"choices"`
	Error   *openAIError   `json:"error,omitempty"`
}

type openAIChoice struct {
	Index        int           `json:"index"`
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Chat sends a chat request to OpenAI
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	start := time.Now()

	messages := make([]openAIMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openAIMessage{Role: msg.Role, Content: msg.Content})
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.defaults.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.defaults.MaxTokens
	}

	openAIReq := openAIRequest{
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

	respBytes, err := p.MakeJSONRequest(ctx, p.baseURL+"/chat/completions", openAIReq, headers, p.ID())
	if err != nil {
		return providers.ChatResponse{Latency: time.Since(start)}, err
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(respBytes, &openAIResp); err != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if openAIResp.Error != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("openai API error: %s", openAIResp.Error.Message)
	}
	if len(openAIResp.Choices) == 0 {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("openai response contained no choices")
	}

	return providers.ChatResponse{
		Content: openAIResp.Choices[0].Message.Content,
		Latency: time.Since(start),
		Raw:     respBytes,
	}, nil
}
