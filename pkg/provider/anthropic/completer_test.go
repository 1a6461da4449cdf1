package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/provider/anthropic"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var body map[string]any
	var path, key string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("X-Api-Key")

		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5",
			"stop_reason": "end_turn",
			"content": [{"type": "text", "text": "Lantern-lit library, warm amber haze"}],
			"usage": {"input_tokens": 20, "output_tokens": 9}
		}`))
	}))
	defer server.Close()

	c, err := anthropic.NewCompleter(server.URL, "", anthropic.WithToken("sk-ant"))
	require.NoError(t, err)

	temperature := 0.7

	result, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("be vivid"),
		provider.UserMessage("a quiet study"),
	}, &provider.CompleteOptions{
		Temperature: &temperature,
	})

	require.NoError(t, err)
	require.Equal(t, "Lantern-lit library, warm amber haze", result.Text())
	require.Equal(t, 9, result.Usage.OutputTokens)

	require.Equal(t, "/v1/messages", path)
	require.Equal(t, "sk-ant", key)
	require.Equal(t, 0.7, body["temperature"])
	require.Len(t, body["system"], 1)
	require.Len(t, body["messages"], 1)
}

func TestCompleteMissingToken(t *testing.T) {
	c, err := anthropic.NewCompleter("http://127.0.0.1:1", "")
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)
	require.True(t, provider.IsConfigurationError(err))

	require.True(t, provider.IsConfigurationError(c.Probe(context.Background())))
}

func TestProbeUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
	}))
	defer server.Close()

	c, err := anthropic.NewCompleter(server.URL, "", anthropic.WithToken("sk-bad"))
	require.NoError(t, err)

	var transport *provider.TransportError
	require.ErrorAs(t, c.Probe(context.Background()), &transport)
	require.Equal(t, http.StatusUnauthorized, transport.StatusCode)
}
