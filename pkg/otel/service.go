package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Service interface {
	Observable
	job.Service
	provider.Prober
}

type observableService struct {
	model    string
	provider string

	service job.Service

	operationDurationMetric genaiconv.ClientOperationDuration
}

// NewService traces submissions and status checks of an inference service.
// The operation duration covers the submission round trip only.
func NewService(provider, model string, s job.Service) Service {
	meter := otel.Meter(instrumentationName)

	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observableService{
		service: s,

		model:    model,
		provider: provider,

		operationDurationMetric: operationDurationMetric,
	}
}

func (s *observableService) otelSetup() {
}

func (s *observableService) Submit(ctx context.Context, prompt string) (*job.Handle, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "generate_content "+s.model)
	defer span.End()

	timestamp := time.Now()

	result, err := s.service.Submit(ctx, prompt)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("job.id", result.ID))

	s.operationDurationMetric.Record(ctx, time.Since(timestamp).Seconds(),
		genaiconv.OperationNameGenerateContent,
		genaiconv.ProviderNameAttr(s.provider),
		KeyValues([]KeyValue{
			s.operationDurationMetric.AttrRequestModel(s.model),
		}, EndUserAttrs(ctx))...,
	)

	return result, nil
}

func (s *observableService) Status(ctx context.Context, id string) (*job.Handle, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "job status")
	defer span.End()

	span.SetAttributes(attribute.String("job.id", id))

	result, err := s.service.Status(ctx, id)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("job.status", string(result.Status)))

	return result, nil
}

func (s *observableService) Probe(ctx context.Context) error {
	prober, ok := s.service.(provider.Prober)

	if !ok {
		return provider.ErrCheckUnsupported
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "validate "+s.provider)
	defer span.End()

	err := prober.Probe(ctx)
	recordError(span, err)

	return err
}
