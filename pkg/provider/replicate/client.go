package replicate

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"

	"github.com/replicate/replicate-go"
)

var (
	_ job.Service     = (*Client)(nil)
	_ provider.Prober = (*Client)(nil)
)

type Client struct {
	*Config
	client *replicate.Client
}

func New(options ...Option) (*Client, error) {
	cfg := &Config{
		version: DefaultVersion,
		input:   DefaultInput,
	}

	for _, option := range options {
		option(cfg)
	}

	c := &Client{
		Config: cfg,
	}

	// without a token the client stays unset and every call reports the
	// missing credential
	if cfg.token == "" {
		return c, nil
	}

	client, err := replicate.NewClient(cfg.Options()...)

	if err != nil {
		return nil, err
	}

	c.client = client

	return c, nil
}

func (c *Client) Submit(ctx context.Context, prompt string) (*job.Handle, error) {
	if c.client == nil {
		return nil, &provider.ConfigurationError{Service: ServiceName}
	}

	input := replicate.PredictionInput(c.input.prediction(prompt))

	prediction, err := c.client.CreatePrediction(ctx, c.version, input, nil, false)

	if err != nil {
		return nil, convertError(err)
	}

	if prediction.ID == "" {
		return nil, &provider.TransportError{
			Service: ServiceName,
			Message: "prediction without id",
		}
	}

	return toHandle(prediction), nil
}

func (c *Client) Status(ctx context.Context, id string) (*job.Handle, error) {
	if c.client == nil {
		return nil, &provider.ConfigurationError{Service: ServiceName}
	}

	prediction, err := c.client.GetPrediction(ctx, id)

	if err != nil {
		return nil, convertError(err)
	}

	return toHandle(prediction), nil
}

// Probe lists predictions, which only succeeds with a valid token.
func (c *Client) Probe(ctx context.Context) error {
	if c.client == nil {
		return &provider.ConfigurationError{Service: ServiceName}
	}

	_, err := c.client.ListPredictions(ctx)

	return convertError(err)
}

func toHandle(p *replicate.Prediction) *job.Handle {
	message := toText(p.Error)

	if message == "" && p.Status == "canceled" {
		message = "canceled"
	}

	return &job.Handle{
		ID:     p.ID,
		Status: toStatus(string(p.Status)),

		Output: toOutput(p.Output),
		Error:  message,
	}
}

func toStatus(status string) job.Status {
	switch status {
	case "succeeded":
		return job.StatusSucceeded

	case "failed", "canceled":
		return job.StatusFailed

	case "processing":
		return job.StatusProcessing

	default:
		return job.StatusQueued
	}
}

func toOutput(output any) []string {
	switch v := output.(type) {
	case string:
		return []string{v}

	case []string:
		return v

	case []any:
		var result []string

		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}

		return result
	}

	return nil
}

func toText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""

	case string:
		return v

	case *string:
		if v == nil {
			return ""
		}

		return *v

	case error:
		return v.Error()
	}

	return fmt.Sprint(v)
}

func convertError(err error) error {
	if err == nil {
		return nil
	}

	var apierr *replicate.APIError

	if errors.As(err, &apierr) {
		return &provider.TransportError{
			Service: ServiceName,

			StatusCode: apierr.Status,
			Message:    apierr.Detail,

			Err: err,
		}
	}

	return &provider.TransportError{
		Service: ServiceName,
		Err:     err,
	}
}
