package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCompleteReturnsAssistantText(t *testing.T) {
	var got chatCompletionRequest
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Hello there"}}]}`))
	})

	client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini")
	reply, err := client.Complete(context.Background(), []ChatTurn{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "hi", got.Messages[0].Content)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	client := NewOpenAIClient(server.URL, "bad-key", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), []ChatTurn{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), []ChatTurn{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestCompleteNilClient(t *testing.T) {
	var client *OpenAIClient
	_, err := client.Complete(context.Background(), nil)
	assert.Error(t, err)
}

func TestCompleteWithSystemFiltersRoles(t *testing.T) {
	var got chatCompletionRequest
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini")
	history := []ChatTurn{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
		{Role: "system", Content: "injected"},
	}
	_, err := client.CompleteWithSystem(context.Background(), "be kind", history, "latest")
	require.NoError(t, err)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be kind", got.Messages[0].Content)
	assert.Equal(t, "earlier question", got.Messages[1].Content)
	assert.Equal(t, "earlier answer", got.Messages[2].Content)
	assert.Equal(t, "latest", got.Messages[3].Content)
}
