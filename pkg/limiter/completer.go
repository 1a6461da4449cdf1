package limiter

import (
	"context"

	"github.com/adrianliechti/flowgenius/pkg/provider"

	"golang.org/x/time/rate"
)

type Completer interface {
	Limiter
	provider.Completer
	provider.Prober
}

type limitedCompleter struct {
	limiter  *rate.Limiter
	provider provider.Completer
}

func NewCompleter(l *rate.Limiter, p provider.Completer) Completer {
	return &limitedCompleter{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedCompleter) limiterSetup() {
}

func (p *limitedCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if err := wait(ctx, p.limiter); err != nil {
		return nil, err
	}

	return p.provider.Complete(ctx, messages, options)
}

func (p *limitedCompleter) Probe(ctx context.Context) error {
	prober, ok := p.provider.(provider.Prober)

	if !ok {
		return provider.ErrCheckUnsupported
	}

	if err := wait(ctx, p.limiter); err != nil {
		return err
	}

	return prober.Probe(ctx)
}
