package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrianliechti/flowgenius/pkg/job"

	"github.com/stretchr/testify/require"
)

type script struct {
	statuses []job.Handle
	calls    int
}

func (s *script) fetch(ctx context.Context, id string) (*job.Handle, error) {
	s.calls++

	if s.calls > len(s.statuses) {
		return &job.Handle{ID: id, Status: job.StatusProcessing}, nil
	}

	h := s.statuses[s.calls-1]
	h.ID = id

	return &h, nil
}

type fakeClock struct {
	sleeps []time.Duration
}

func (c *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	return nil
}

func pending(n int) []job.Handle {
	var result []job.Handle

	for i := range n {
		status := job.StatusProcessing

		if i == 0 {
			status = job.StatusQueued
		}

		result = append(result, job.Handle{Status: status})
	}

	return result
}

func TestPollSucceeded(t *testing.T) {
	for _, k := range []int{1, 3, 60} {
		clock := &fakeClock{}
		s := &script{
			statuses: append(pending(k-1), job.Handle{Status: job.StatusSucceeded, Output: []string{"https://img/x.png"}}),
		}

		p := job.NewPoller(job.WithSleeper(clock.sleep))

		handle, err := p.Poll(context.Background(), "abc", s.fetch)
		require.NoError(t, err)

		require.Equal(t, k, s.calls)
		require.Len(t, clock.sleeps, k-1)
		require.Equal(t, "https://img/x.png", handle.Output[0])
	}
}

func TestPollFailed(t *testing.T) {
	clock := &fakeClock{}
	s := &script{
		statuses: append(pending(4), job.Handle{Status: job.StatusFailed, Error: "NSFW content detected"}),
	}

	p := job.NewPoller(job.WithSleeper(clock.sleep))

	_, err := p.Poll(context.Background(), "abc", s.fetch)

	var failed *job.FailedError
	require.ErrorAs(t, err, &failed)
	require.Equal(t, "NSFW content detected", failed.Message)
	require.Equal(t, "abc", failed.ID)

	require.Equal(t, 5, s.calls)
}

func TestPollTimeout(t *testing.T) {
	clock := &fakeClock{}
	s := &script{}

	p := job.NewPoller(job.WithSleeper(clock.sleep))

	_, err := p.Poll(context.Background(), "abc", s.fetch)
	require.ErrorIs(t, err, job.ErrTimeout)

	require.Equal(t, job.DefaultAttempts, s.calls)
	require.Len(t, clock.sleeps, job.DefaultAttempts-1)

	for _, d := range clock.sleeps {
		require.Equal(t, time.Second, d)
	}
}

func TestPollFetchError(t *testing.T) {
	clock := &fakeClock{}

	calls := 0
	boom := errors.New("connection reset")

	fetch := func(ctx context.Context, id string) (*job.Handle, error) {
		calls++

		if calls == 2 {
			return nil, boom
		}

		return &job.Handle{ID: id, Status: job.StatusProcessing}, nil
	}

	p := job.NewPoller(job.WithSleeper(clock.sleep))

	_, err := p.Poll(context.Background(), "abc", fetch)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}

func TestPollCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &script{}

	p := job.NewPoller()

	_, err := p.Poll(ctx, "abc", s.fetch)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, s.calls)
}

func TestStatusTerminal(t *testing.T) {
	require.True(t, job.StatusSucceeded.Terminal())
	require.True(t, job.StatusFailed.Terminal())
	require.False(t, job.StatusQueued.Terminal())
	require.False(t, job.StatusProcessing.Terminal())
}

func TestPollMissingHandle(t *testing.T) {
	clock := &fakeClock{}
	calls := 0

	fetch := func(ctx context.Context, id string) (*job.Handle, error) {
		calls++
		return nil, nil
	}

	p := job.NewPoller(job.WithSleeper(clock.sleep))

	handle, err := p.Poll(context.Background(), "abc", fetch)
	require.ErrorIs(t, err, job.ErrNoOutput)
	require.Nil(t, handle)

	require.Equal(t, 1, calls)
	require.Empty(t, clock.sleeps)
}
