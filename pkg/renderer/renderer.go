// Package renderer turns an image prompt into a rendered image reference by
// submitting a job to an inference service and waiting for it to finish.
package renderer

import (
	"context"
	"log/slog"

	"github.com/adrianliechti/flowgenius/pkg/job"
)

type Renderer struct {
	service job.Service
	poller  *job.Poller
}

type Option func(*Renderer)

func WithPoller(poller *job.Poller) Option {
	return func(r *Renderer) {
		r.poller = poller
	}
}

func New(service job.Service, options ...Option) *Renderer {
	r := &Renderer{
		service: service,
	}

	for _, option := range options {
		option(r)
	}

	if r.poller == nil {
		r.poller = job.NewPoller()
	}

	return r
}

// Render submits the prompt and returns the first output of the finished
// job. Submission is attempted once.
func (r *Renderer) Render(ctx context.Context, prompt string) (string, error) {
	handle, err := r.service.Submit(ctx, prompt)

	if err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "job submitted", "id", handle.ID, "status", handle.Status)

	result, err := r.poller.Poll(ctx, handle.ID, r.service.Status)

	if err != nil {
		return "", err
	}

	if len(result.Output) == 0 || result.Output[0] == "" {
		return "", job.ErrNoOutput
	}

	return result.Output[0], nil
}
