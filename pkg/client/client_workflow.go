package client

import (
	"context"
	"net/http"

	"github.com/adrianliechti/flowgenius/pkg/validator"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
)

type WorkflowService struct {
	Options []RequestOption
}

func NewWorkflowService(opts ...RequestOption) WorkflowService {
	return WorkflowService{
		Options: opts,
	}
}

type State = workflow.State

type Validation = validator.Result

func (s *WorkflowService) Validate(ctx context.Context, opts ...RequestOption) (*Validation, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result Validation

	if err := c.do(ctx, http.MethodGet, "/v1/validate", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *WorkflowService) State(ctx context.Context, opts ...RequestOption) (*State, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result State

	if err := c.do(ctx, http.MethodGet, "/v1/state", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *WorkflowService) Reset(ctx context.Context, opts ...RequestOption) error {
	c := newRequestConfig(append(s.Options, opts...)...)

	return c.do(ctx, http.MethodDelete, "/v1/state", nil, nil)
}
