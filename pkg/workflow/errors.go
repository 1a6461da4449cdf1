package workflow

import (
	"errors"
)

var (
	ErrContentUnavailable = errors.New("no content available")
	ErrBusy               = errors.New("workflow is already running")
)
