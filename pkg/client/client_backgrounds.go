package client

import (
	"context"
	"net/http"
)

type BackgroundService struct {
	Options []RequestOption
}

func NewBackgroundService(opts ...RequestOption) BackgroundService {
	return BackgroundService{
		Options: opts,
	}
}

type BackgroundRequest struct {
	Content string `json:"content"`
}

type Background struct {
	ID string `json:"id"`

	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// New runs the workflow on the server for the given note content.
func (s *BackgroundService) New(ctx context.Context, input BackgroundRequest, opts ...RequestOption) (*Background, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result Background

	if err := c.do(ctx, http.MethodPost, "/v1/backgrounds", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
