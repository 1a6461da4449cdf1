package replicate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/provider/replicate"

	"github.com/stretchr/testify/require"
)

type fakeReplicate struct {
	mu sync.Mutex

	submitStatus int
	statuses     []string

	auth   string
	body   map[string]any
	polls  int
	listed int
}

func (f *fakeReplicate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.auth = r.Header.Get("Authorization")

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/predictions":
		json.NewDecoder(r.Body).Decode(&f.body)

		if f.submitStatus != 0 {
			w.WriteHeader(f.submitStatus)
			w.Write([]byte(`{"title": "Internal Server Error", "detail": "model crashed", "status": 500}`))
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "p1", "status": "starting", "version": "v1", "input": {}, "urls": {}}`))

	case r.Method == http.MethodGet && r.URL.Path == "/predictions/p1":
		status := "processing"

		if f.polls < len(f.statuses) {
			status = f.statuses[f.polls]
		}

		f.polls++

		switch status {
		case "succeeded":
			w.Write([]byte(`{"id": "p1", "status": "succeeded", "output": ["https://img/x.png"]}`))
		case "failed":
			w.Write([]byte(`{"id": "p1", "status": "failed", "error": "CUDA out of memory"}`))
		default:
			w.Write([]byte(`{"id": "p1", "status": "` + status + `"}`))
		}

	case r.Method == http.MethodGet && r.URL.Path == "/predictions":
		f.listed++

		if !strings.HasSuffix(f.auth, "r8_valid") {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"title": "Unauthenticated", "detail": "You did not pass a valid authentication token", "status": 401}`))
			return
		}

		w.Write([]byte(`{"results": [], "next": null, "previous": null}`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestSubmit(t *testing.T) {
	f := &fakeReplicate{}

	server := httptest.NewServer(f)
	defer server.Close()

	c, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)

	handle, err := c.Submit(context.Background(), "a misty forest")
	require.NoError(t, err)

	require.Equal(t, "p1", handle.ID)
	require.Equal(t, job.StatusQueued, handle.Status)

	require.Equal(t, "Bearer r8_valid", f.auth)
	require.Equal(t, replicate.DefaultVersion, f.body["version"])

	input := f.body["input"].(map[string]any)
	require.Equal(t, "a misty forest", input["prompt"])
	require.Equal(t, float64(1024), input["width"])
	require.Equal(t, float64(768), input["height"])
	require.Equal(t, "K_EULER", input["scheduler"])
	require.Equal(t, float64(25), input["num_inference_steps"])
	require.Equal(t, 7.5, input["guidance_scale"])
	require.Equal(t, replicate.DefaultInput.NegativePrompt, input["negative_prompt"])
}

func TestSubmitServerError(t *testing.T) {
	f := &fakeReplicate{submitStatus: http.StatusInternalServerError}

	server := httptest.NewServer(f)
	defer server.Close()

	c, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "prompt")

	var transport *provider.TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, http.StatusInternalServerError, transport.StatusCode)
}

func TestStatus(t *testing.T) {
	f := &fakeReplicate{
		statuses: []string{"starting", "processing", "succeeded"},
	}

	server := httptest.NewServer(f)
	defer server.Close()

	c, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)

	ctx := context.Background()

	first, err := c.Status(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, job.StatusQueued, first.Status)

	second, err := c.Status(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, job.StatusProcessing, second.Status)

	third, err := c.Status(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, job.StatusSucceeded, third.Status)
	require.Equal(t, []string{"https://img/x.png"}, third.Output)
}

func TestStatusFailed(t *testing.T) {
	f := &fakeReplicate{
		statuses: []string{"failed"},
	}

	server := httptest.NewServer(f)
	defer server.Close()

	c, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)

	handle, err := c.Status(context.Background(), "p1")
	require.NoError(t, err)

	require.Equal(t, job.StatusFailed, handle.Status)
	require.Equal(t, "CUDA out of memory", handle.Error)
}

func TestStatusCanceled(t *testing.T) {
	f := &fakeReplicate{
		statuses: []string{"canceled"},
	}

	server := httptest.NewServer(f)
	defer server.Close()

	c, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)

	handle, err := c.Status(context.Background(), "p1")
	require.NoError(t, err)

	require.Equal(t, job.StatusFailed, handle.Status)
	require.Equal(t, "canceled", handle.Error)
}

func TestMissingToken(t *testing.T) {
	c, err := replicate.New(replicate.WithURL("http://127.0.0.1:1"))
	require.NoError(t, err)

	ctx := context.Background()

	_, err = c.Submit(ctx, "prompt")
	require.EqualError(t, err, "Replicate API key not configured")

	_, err = c.Status(ctx, "p1")
	require.True(t, provider.IsConfigurationError(err))

	require.True(t, provider.IsConfigurationError(c.Probe(ctx)))
}

func TestProbe(t *testing.T) {
	f := &fakeReplicate{}

	server := httptest.NewServer(f)
	defer server.Close()

	valid, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_valid"))
	require.NoError(t, err)
	require.NoError(t, valid.Probe(context.Background()))

	invalid, err := replicate.New(replicate.WithURL(server.URL), replicate.WithToken("r8_invalid"))
	require.NoError(t, err)
	require.True(t, provider.IsTransportError(invalid.Probe(context.Background())))

	require.Equal(t, 2, f.listed)
}
