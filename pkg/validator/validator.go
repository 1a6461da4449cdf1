// Package validator checks the credentials of the external services with
// minimal authenticated requests.
package validator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/flowgenius/pkg/provider"
)

// Service is one credential-protected backend.
type Service struct {
	ID   string
	Name string

	// Configured reports whether a credential is present.
	Configured bool

	Prober provider.Prober
}

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type Validator struct {
	services []Service
}

func New(services ...Service) *Validator {
	return &Validator{
		services: services,
	}
}

// Validate probes the service with the given id. Any failure, including a
// panic inside the probe, counts as invalid.
func (v *Validator) Validate(ctx context.Context, id string) bool {
	for _, s := range v.services {
		if s.ID == id {
			return probe(ctx, s)
		}
	}

	return false
}

// Check verifies presence and validity of every credential in order and
// collects a message per problem.
func (v *Validator) Check(ctx context.Context) Result {
	errors := []string{}

	for _, s := range v.services {
		if !s.Configured {
			errors = append(errors, fmt.Sprintf("%s API key not configured", s.Name))
			continue
		}

		if !probe(ctx, s) {
			errors = append(errors, fmt.Sprintf("Invalid %s API key", s.Name))
		}
	}

	return Result{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func probe(ctx context.Context, s Service) (ok bool) {
	if s.Prober == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "credential probe panicked", "service", s.ID, "panic", r)
			ok = false
		}
	}()

	if err := s.Prober.Probe(ctx); err != nil {
		slog.DebugContext(ctx, "credential probe failed", "service", s.ID, "error", err)
		return false
	}

	return true
}
