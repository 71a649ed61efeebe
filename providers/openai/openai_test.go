package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safwanpaleri/roundtable/providers"
	"github.com/safwanpaleri/roundtable/types"
)

func TestChat(t *testing.T) {
	var gotReq openAIRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := openAIResponse{
			Choices: []openAIChoice{
				{Message: openAIMessage{Role: "assistant", Content: "Say happy: hello there"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	provider := NewProvider("gpt", "gpt-4o-mini", server.URL, providers.ProviderDefaults{Temperature: 0.7, MaxTokens: 256})

	resp, err := provider.Chat(context.Background(), providers.ChatRequest{
		System: "act as a historian",
		Messages: []types.Message{
			{Role: "user", Content: "Mod : welcome"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Say happy: hello there", resp.Content)
	assert.Greater(t, resp.Latency.Nanoseconds(), int64(0))
	assert.Equal(t, "Bearer test-key", gotAuth)

	// System text becomes the leading system message.
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "act as a historian", gotReq.Messages[0].Content)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, float32(0.7), gotReq.Temperature)
	assert.Equal(t, 256, gotReq.MaxTokens)
}

func TestChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openAIResponse{
			Error: &openAIError{Message: "quota exceeded", Type: "insufficient_quota"},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	provider := NewProvider("gpt", "gpt-4o-mini", server.URL, providers.ProviderDefaults{})

	_, err := provider.Chat(context.Background(), providers.ChatRequest{
		Messages: []types.Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestChatHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	provider := NewProvider("gpt", "gpt-4o-mini", server.URL, providers.ProviderDefaults{})

	_, err := provider.Chat(context.Background(), providers.ChatRequest{
		Messages: []types.Message{{Role: "user", Content: "hi"}},
	})
	assert.Error(t, err)
}
