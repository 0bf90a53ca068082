package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompleteSendsChatRequest(t *testing.T) {
	var got ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "Aldi is cheapest."}}},
			Usage:   Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		})
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"}, zap.NewNop())

	reply, err := client.Complete(context.Background(), "be helpful", "cheapest store?")
	require.NoError(t, err)
	assert.Equal(t, "Aldi is cheapest.", reply)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestCompleteSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "sys", "user")
	assert.ErrorContains(t, err, "API error 503")
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, zap.NewNop())

	_, err := client.Complete(context.Background(), "sys", "user")
	assert.ErrorContains(t, err, "no response choices")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{}, zap.NewNop())
	assert.Equal(t, DefaultBaseURL, client.opts.BaseURL)
	assert.Equal(t, DefaultModel, client.opts.Model)
}
