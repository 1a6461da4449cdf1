// Package job models asynchronous rendering jobs and the bounded polling
// loop used to wait for them.
package job

import (
	"context"
)

type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further status change is expected.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Handle is a snapshot of a submitted job. It lives only as long as the
// request that created it.
type Handle struct {
	ID     string
	Status Status

	Output []string

	Error string
}

// Service is an inference backend that accepts jobs and reports their status.
type Service interface {
	Submit(ctx context.Context, prompt string) (*Handle, error)
	Status(ctx context.Context, id string) (*Handle, error)
}
