package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/source"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
)

const maxBodySize = 1 << 20

func (h *Handler) handleBackground(w http.ResponseWriter, r *http.Request) {
	src, err := readSource(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Engine.Run(r.Context(), src, nil)

	if err != nil {
		writeError(w, statusCode(err), err)
		return
	}

	writeJson(w, BackgroundResponse{
		ID: result.ID,

		URL:    result.URL,
		Prompt: result.Prompt,
	})
}

// readSource accepts a JSON body with a content field, or the raw note as
// text/plain or text/markdown.
func readSource(r *http.Request) (workflow.Source, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))

	if err != nil {
		return nil, err
	}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch contentType {
	case "text/markdown":
		return source.Markdown(data), nil

	case "text/plain":
		return source.Text(data), nil
	}

	var req BackgroundRequest

	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}

	return source.Markdown(req.Content), nil
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, workflow.ErrContentUnavailable):
		return http.StatusBadRequest

	case errors.Is(err, workflow.ErrBusy):
		return http.StatusConflict

	case errors.Is(err, job.ErrTimeout):
		return http.StatusGatewayTimeout

	case provider.IsConfigurationError(err):
		return http.StatusInternalServerError
	}

	var failed *job.FailedError

	if provider.IsTransportError(err) || errors.As(err, &failed) || errors.Is(err, job.ErrNoOutput) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
