package job

import (
	"errors"
)

var (
	ErrTimeout  = errors.New("image generation timed out")
	ErrNoOutput = errors.New("image generation returned no output")
)

// FailedError is returned when the service reports a terminal failure for
// the job.
type FailedError struct {
	ID      string
	Message string
}

func (e *FailedError) Error() string {
	return "image generation failed: " + e.Message
}
