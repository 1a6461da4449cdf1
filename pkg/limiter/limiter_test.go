package limiter_test

import (
	"context"
	"testing"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/limiter"
	"github.com/adrianliechti/flowgenius/pkg/provider"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type completer struct {
	calls int
}

func (c *completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls++

	return &provider.Completion{
		Message: &provider.Message{Role: provider.MessageRoleAssistant, Content: "ok"},
	}, nil
}

type service struct {
	checked bool
}

func (s *service) Submit(ctx context.Context, prompt string) (*job.Handle, error) {
	return &job.Handle{ID: "abc", Status: job.StatusQueued}, nil
}

func (s *service) Status(ctx context.Context, id string) (*job.Handle, error) {
	return &job.Handle{ID: id, Status: job.StatusSucceeded}, nil
}

func (s *service) Probe(ctx context.Context) error {
	s.checked = true
	return nil
}

func TestNew(t *testing.T) {
	require.Nil(t, limiter.New(nil))

	zero := 0
	require.Nil(t, limiter.New(&zero))

	five := 5
	l := limiter.New(&five)
	require.NotNil(t, l)
	require.Equal(t, rate.Limit(5), l.Limit())
	require.Equal(t, 5, l.Burst())
}

func TestCompleter(t *testing.T) {
	c := &completer{}
	limited := limiter.NewCompleter(nil, c)

	result, err := limited.Complete(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "ok", result.Text())
	require.Equal(t, 1, c.calls)

	require.NoError(t, limited.Probe(context.Background()))
}

func TestCompleterCanceled(t *testing.T) {
	c := &completer{}

	l := rate.NewLimiter(rate.Limit(0.001), 1)
	l.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := limiter.NewCompleter(l, c).Complete(ctx, nil, nil)
	require.Error(t, err)
	require.Zero(t, c.calls)
}

func TestService(t *testing.T) {
	s := &service{}

	limit := 100
	limited := limiter.NewService(limiter.New(&limit), s)

	handle, err := limited.Submit(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "abc", handle.ID)

	handle, err = limited.Status(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, job.StatusSucceeded, handle.Status)

	require.NoError(t, limited.Probe(context.Background()))
	require.True(t, s.checked)
}

func TestCredentialCheckUnsupported(t *testing.T) {
	err := limiter.NewCompleter(nil, &completer{}).Probe(context.Background())
	require.ErrorIs(t, err, provider.ErrCheckUnsupported)
}

func TestCredentialCheckLimited(t *testing.T) {
	s := &service{}

	l := rate.NewLimiter(rate.Limit(0.001), 1)
	l.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, limiter.NewService(l, s).Probe(ctx))
	require.False(t, s.checked)
}
