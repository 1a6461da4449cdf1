package limiter

import (
	"context"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"

	"golang.org/x/time/rate"
)

type Service interface {
	Limiter
	job.Service
	provider.Prober
}

type limitedService struct {
	limiter *rate.Limiter
	service job.Service
}

// NewService throttles submissions and status checks of s. Both draw from the
// same limiter so polling cannot starve new jobs.
func NewService(l *rate.Limiter, s job.Service) Service {
	return &limitedService{
		limiter: l,
		service: s,
	}
}

func (s *limitedService) limiterSetup() {
}

func (s *limitedService) Submit(ctx context.Context, prompt string) (*job.Handle, error) {
	if err := wait(ctx, s.limiter); err != nil {
		return nil, err
	}

	return s.service.Submit(ctx, prompt)
}

func (s *limitedService) Status(ctx context.Context, id string) (*job.Handle, error) {
	if err := wait(ctx, s.limiter); err != nil {
		return nil, err
	}

	return s.service.Status(ctx, id)
}

func (s *limitedService) Probe(ctx context.Context) error {
	prober, ok := s.service.(provider.Prober)

	if !ok {
		return provider.ErrCheckUnsupported
	}

	if err := wait(ctx, s.limiter); err != nil {
		return err
	}

	return prober.Probe(ctx)
}
