// Package claude provides Anthropic Claude LLM provider integration.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

const (
	anthropicVersionKey   = "Anthropic-Version"
	anthropicVersionValue = "2023-06-01"

	defaultMaxTokens = 1024
)

// Provider implements the Provider interface for Anthropic Claude
type Provider struct {
	providers.BaseProvider
	model    string
	baseURL  string
	apiKey   string
	defaults providers.ProviderDefaults
}

// NewProvider creates a new Claude provider
func NewProvider(id, model, baseURL string, defaults providers.ProviderDefaults) *Provider {
	base, apiKey := providers.NewBaseProviderWithAPIKey(id, "ANTHROPIC_API_KEY", "CLAUDE_API_KEY")

	return &Provider{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     defaults,
	}
}

// Anthropic Messages API request/response structures
type claudeRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float32         `json:"temperature,omitempty"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	ID      string         `json:"id"`
	Content []claudeBlock  `json:"content"`
	Error   *claudeAPIFail `json:"error,omitempty"`
}

type claudeBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeAPIFail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Chat sends a chat request to the Anthropic Messages API
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest) (providers.ChatResponse, error) {
	start := time.Now()

	// Anthropic takes the system prompt as a top-level field, and messages
	// must alternate starting with a user role.
	messages := make([]claudeMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "system" {
			role = "user"
		}
		messages = append(messages, claudeMessage{Role: role, Content: msg.Content})
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.defaults.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	claudeReq := claudeRequest{
		Model:       p.model,
		System:      req.System,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	headers := providers.RequestHeaders{
		"Content-Type":      "application/json",
		"x-api-key":         p.apiKey,
		anthropicVersionKey: anthropicVersionValue,
	}

	logger.LLMCall(p.ID(), "chat", len(messages), "model", p.model)

	respBytes, err := p.MakeJSONRequest(ctx, p.baseURL+"/messages", claudeReq, headers, p.ID())
	if err != nil {
		return providers.ChatResponse{Latency: time.Since(start)}, err
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(respBytes, &claudeResp); err != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if claudeResp.Error != nil {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("claude API error: %s", claudeResp.Error.Message)
	}
	if len(claudeResp.Content) == 0 {
		return providers.ChatResponse{Latency: time.Since(start), Raw: respBytes},
			fmt.Errorf("claude response contained no content blocks")
	}

	return providers.ChatResponse{
		Content: claudeResp.Content[0].Text,
		Latency: time.Since(start),
		Raw:     respBytes,
	}, nil
}
