package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	id     string
	closed bool
}

func (s *stubProvider) ID() string { return s.id }

func (s *stubProvider) Chat(context.Context, ChatRequest) (ChatResponse, error) {
	return ChatResponse{Content: "stub"}, nil
}

func (s *stubProvider) Close() error {
	s.closed = true
	return nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubProvider{id: "alpha"})
	registry.Register(&stubProvider{id: "beta"})

	provider, exists := registry.Get("alpha")
	require.True(t, exists)
	assert.Equal(t, "alpha", provider.ID())

	_, exists = registry.Get("missing")
	assert.False(t, exists)

	assert.ElementsMatch(t, []string{"alpha", "beta"}, registry.List())
}

func TestRegistryClose(t *testing.T) {
	registry := NewRegistry()
	stub := &stubProvider{id: "alpha"}
	registry.Register(stub)

	require.NoError(t, registry.Close())
	assert.True(t, stub.closed)
}

func TestCreateProviderFromSpecUnsupportedType(t *testing.T) {
	_, err := CreateProviderFromSpec(ProviderSpec{ID: "x", Type: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestCreateProviderFromSpecAppliesDefaultBaseURL(t *testing.T) {
	var gotSpec ProviderSpec
	RegisterProviderFactory("capture", func(spec ProviderSpec) (Provider, error) {
		gotSpec = spec
		return &stubProvider{id: spec.ID}, nil
	})

	tests := []struct {
		specType string
		wantURL  string
	}{
		{"openai", "https://api.openai.com/v1"},
		{"claude", "https://api.anthropic.com/v1"},
		{"gemini", "https://generativelanguage.googleapis.com"},
		{"deepseek", "https://api.deepseek.com/v1"},
		{"mistral", "https://api.mistral.ai/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.specType, func(t *testing.T) {
			spec := ProviderSpec{ID: "p", Type: tt.specType}
			// Reuse the capture factory for every type under test.
			providerFactories[tt.specType] = providerFactories["capture"]

			_, err := CreateProviderFromSpec(spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, gotSpec.BaseURL)
		})
	}

	// An explicit base URL is never overridden.
	providerFactories["openai"] = providerFactories["capture"]
	_, err := CreateProviderFromSpec(ProviderSpec{ID: "p", Type: "openai", BaseURL: "http://localhost:9999"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", gotSpec.BaseURL)
}
