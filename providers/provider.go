// Package providers implements multi-LLM provider support with unified interfaces.
//
// This package provides a common abstraction for chat-based LLM providers
// including OpenAI, Anthropic Claude, Google Gemini, DeepSeek and Mistral.
// It handles:
//   - Chat completion requests with per-call latency measurement
//   - API key discovery from the environment
//   - Shared HTTP plumbing and error handling
//
// All providers implement the Provider interface. Concrete implementations
// live in subpackages (providers/openai, providers/claude, ...) and register
// themselves through factory functions; import providers/all to make every
// implementation available to CreateProviderFromSpec.
package providers

import (
	"context"
	"time"

	"github.com/safwanpaleri/roundtable/types"
)

// ChatRequest represents a request to a chat provider
type ChatRequest struct {
	System      string          `json:"system"`
	Messages    []types.Message `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

// ChatResponse represents a response from a chat provider
type ChatResponse struct {
	Content string        `json:"content"`
	Latency time.Duration `json:"latency"`
	Raw     []byte        `json:"raw,omitempty"`
}

// ProviderDefaults holds default parameters for providers
type ProviderDefaults struct {
	Temperature float32
	MaxTokens   int
}

// Provider interface defines the contract for chat providers
type Provider interface {
	ID() string
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	Close() error // Close cleans up provider resources (e.g., HTTP connections)
}
