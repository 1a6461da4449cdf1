package config

import (
	"cmp"
	"errors"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/job"
	"github.com/adrianliechti/flowgenius/pkg/limiter"
	"github.com/adrianliechti/flowgenius/pkg/otel"
	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/provider/anthropic"
	"github.com/adrianliechti/flowgenius/pkg/provider/openai"
	"github.com/adrianliechti/flowgenius/pkg/provider/replicate"
	"github.com/adrianliechti/flowgenius/pkg/validator"
)

type providersConfig struct {
	Chat  chatConfig  `yaml:"chat"`
	Image imageConfig `yaml:"image"`
}

type chatConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`
	Limit *int   `yaml:"limit"`
}

type imageConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Version string `yaml:"version"`
	Limit   *int   `yaml:"limit"`
}

// createCompleter returns the decorated chat backend and the validator entry
// for its credential.
func createCompleter(cfg chatConfig) (provider.Completer, validator.Service, error) {
	var name string
	var model string

	var completer provider.Completer

	switch strings.ToLower(cfg.Type) {
	case "", "openai":
		c, err := openai.NewCompleter(cfg.URL, cfg.Model, openai.WithToken(cfg.Token))

		if err != nil {
			return nil, validator.Service{}, err
		}

		name = openai.ServiceName
		model = cmp.Or(cfg.Model, openai.DefaultModel)
		completer = c

	case "anthropic":
		c, err := anthropic.NewCompleter(cfg.URL, cfg.Model, anthropic.WithToken(cfg.Token))

		if err != nil {
			return nil, validator.Service{}, err
		}

		name = anthropic.ServiceName
		model = cmp.Or(cfg.Model, anthropic.DefaultModel)
		completer = c

	default:
		return nil, validator.Service{}, errors.New("invalid chat provider type: " + cfg.Type)
	}

	observed := otel.NewCompleter(strings.ToLower(name), model, limiter.NewCompleter(limiter.New(cfg.Limit), completer))

	// credential checks share the limiter and tracing of completions
	service := validator.Service{
		ID:   "chat",
		Name: name,

		Configured: cfg.Token != "",

		Prober: observed,
	}

	return observed, service, nil
}

func createJobService(cfg imageConfig) (job.Service, validator.Service, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "replicate":
	default:
		return nil, validator.Service{}, errors.New("invalid image provider type: " + cfg.Type)
	}

	options := []replicate.Option{
		replicate.WithToken(cfg.Token),
	}

	if cfg.URL != "" {
		options = append(options, replicate.WithURL(cfg.URL))
	}

	if cfg.Version != "" {
		options = append(options, replicate.WithVersion(cfg.Version))
	}

	client, err := replicate.New(options...)

	if err != nil {
		return nil, validator.Service{}, err
	}

	observed := otel.NewService("replicate", cmp.Or(cfg.Version, replicate.DefaultVersion), limiter.NewService(limiter.New(cfg.Limit), client))

	service := validator.Service{
		ID:   "image",
		Name: replicate.ServiceName,

		Configured: cfg.Token != "",

		Prober: observed,
	}

	return observed, service, nil
}
