package job

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultInterval = 1000 * time.Millisecond
	DefaultAttempts = 60
)

// Sleeper pauses between two status requests.
type Sleeper func(ctx context.Context, d time.Duration) error

// Fetcher returns the current state of the job with the given id.
type Fetcher func(ctx context.Context, id string) (*Handle, error)

type Poller struct {
	interval time.Duration
	attempts int

	sleep Sleeper
}

type PollerOption func(*Poller)

func WithSleeper(sleep Sleeper) PollerOption {
	return func(p *Poller) {
		p.sleep = sleep
	}
}

func NewPoller(options ...PollerOption) *Poller {
	p := &Poller{
		interval: DefaultInterval,
		attempts: DefaultAttempts,

		sleep: Sleep,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Poll fetches the job status until it is terminal. It issues at most
// p.attempts requests and pauses p.interval between two of them.
//
// A succeeded job is returned as is. A failed job yields a *FailedError.
// When the attempts are exhausted ErrTimeout is returned. Fetch errors end
// polling immediately, and so does a fetch without a handle.
func (p *Poller) Poll(ctx context.Context, id string, fetch Fetcher) (*Handle, error) {
	for attempt := 1; attempt <= p.attempts; attempt++ {
		handle, err := fetch(ctx, id)

		if err != nil {
			return nil, err
		}

		if handle == nil {
			return nil, ErrNoOutput
		}

		slog.DebugContext(ctx, "job status", "id", id, "attempt", attempt, "status", handle.Status)

		switch handle.Status {
		case StatusSucceeded:
			return handle, nil

		case StatusFailed:
			return nil, &FailedError{
				ID:      id,
				Message: handle.Error,
			}
		}

		if attempt == p.attempts {
			break
		}

		if err := p.sleep(ctx, p.interval); err != nil {
			return nil, err
		}
	}

	return nil, ErrTimeout
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		return nil
	}
}
