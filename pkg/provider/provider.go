package provider

import (
	"context"
	"errors"
)

type Provider = any

type Model struct {
	ID string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Prober is implemented by clients that can check their credential with a
// minimal authenticated request.
type Prober interface {
	Probe(ctx context.Context) error
}

// ErrCheckUnsupported is returned by decorators whose wrapped client cannot
// check its credential.
var ErrCheckUnsupported = errors.New("credential check not supported")
