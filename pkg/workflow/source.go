package workflow

import (
	"context"
)

// Source provides the text to visualize.
type Source interface {
	Content(ctx context.Context) (string, error)
}

type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Content(ctx context.Context) (string, error) {
	return f(ctx)
}
