package openai

import (
	"errors"

	"github.com/adrianliechti/flowgenius/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	if err == nil {
		return nil
	}

	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.TransportError{
			Service: ServiceName,

			StatusCode: apierr.StatusCode,
			Message:    apierr.Message,

			Err: err,
		}
	}

	return &provider.TransportError{
		Service: ServiceName,
		Err:     err,
	}
}
