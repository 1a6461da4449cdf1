package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/flowgenius/config"
	"github.com/adrianliechti/flowgenius/pkg/auth"
	"github.com/adrianliechti/flowgenius/pkg/auth/static"
	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/validator"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
	"github.com/adrianliechti/flowgenius/server"

	"github.com/stretchr/testify/require"
)

type prompter struct{}

func (prompter) Prompt(ctx context.Context, input string) (string, error) {
	return "a quiet harbor at dusk", nil
}

type renderer struct {
	err error
}

func (r renderer) Render(ctx context.Context, prompt string) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	return "https://img/x.png", nil
}

func newServer(t *testing.T, r renderer, authorizers ...auth.Provider) *httptest.Server {
	t.Helper()

	v := validator.New(validator.Service{ID: "chat", Name: "OpenAI"})

	cfg := &config.Config{
		Authorizers: authorizers,

		Engine:    workflow.New(prompter{}, r, workflow.WithValidator(v)),
		Validator: v,
	}

	s, err := server.New(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return ts
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestBackground(t *testing.T) {
	ts := newServer(t, renderer{})

	resp := post(t, ts.URL+"/v1/backgrounds", "application/json", `{"content": "# Harbor\n\nBoats at rest."}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Prompt string `json:"prompt"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.ID)
	require.Equal(t, "https://img/x.png", result.URL)
	require.Equal(t, "a quiet harbor at dusk", result.Prompt)

	state, err := http.Get(ts.URL + "/v1/state")
	require.NoError(t, err)
	defer state.Body.Close()

	var snapshot workflow.State
	require.NoError(t, json.NewDecoder(state.Body).Decode(&snapshot))
	require.Equal(t, workflow.PhaseComplete, snapshot.Phase)
	require.Equal(t, "Harbor\n\nBoats at rest.", snapshot.Content)

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/v1/state", nil)
	reset, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	reset.Body.Close()
	require.Equal(t, http.StatusNoContent, reset.StatusCode)
}

func TestBackgroundPlainText(t *testing.T) {
	ts := newServer(t, renderer{})

	resp := post(t, ts.URL+"/v1/backgrounds", "text/plain", "some notes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBackgroundErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
		code int
	}{
		{"empty", nil, `{"content": ""}`, http.StatusBadRequest},
		{"malformed", nil, `{`, http.StatusBadRequest},
		{"transport", &provider.TransportError{Service: "Replicate", StatusCode: 500, Message: "boom"}, `{"content": "x"}`, http.StatusBadGateway},
		{"failed", &job.FailedError{ID: "abc", Message: "nsfw"}, `{"content": "x"}`, http.StatusBadGateway},
		{"timeout", job.ErrTimeout, `{"content": "x"}`, http.StatusGatewayTimeout},
		{"configuration", &provider.ConfigurationError{Service: "Replicate"}, `{"content": "x"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, renderer{err: tt.err})

			resp := post(t, ts.URL+"/v1/backgrounds", "application/json", tt.body)
			require.Equal(t, tt.code, resp.StatusCode)

			var body struct {
				Error string `json:"error"`
			}

			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestValidate(t *testing.T) {
	ts := newServer(t, renderer{})

	resp, err := http.Get(ts.URL + "/v1/validate")
	require.NoError(t, err)
	defer resp.Body.Close()

	var result validator.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.False(t, result.Valid)
	require.Equal(t, []string{"OpenAI API key not configured"}, result.Errors)
}

func TestAuth(t *testing.T) {
	a, _ := static.New("secret")
	ts := newServer(t, renderer{}, a)

	resp, err := http.Get(ts.URL + "/v1/state")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/state", nil)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	require.Equal(t, http.StatusOK, health.StatusCode)
}
