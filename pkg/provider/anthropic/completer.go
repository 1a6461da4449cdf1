package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var (
	_ provider.Completer = (*Completer)(nil)
	_ provider.Prober    = (*Completer)(nil)
)

const DefaultModel = "claude-sonnet-4-5"

type Completer struct {
	*Config
	client anthropic.Client
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	if model == "" {
		model = DefaultModel
	}

	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
		client: anthropic.NewClient(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if c.token == "" {
		return nil, &provider.ConfigurationError{Service: ServiceName}
	}

	req, err := c.convertMessageRequest(messages, options)

	if err != nil {
		return nil, err
	}

	message, err := c.client.Messages.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	var parts []string

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}

	if len(parts) == 0 {
		return nil, &provider.TransportError{
			Service: ServiceName,
			Message: "response contains no text",
		}
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: string(message.Model),

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: strings.Join(parts, "\n\n"),
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func (c *Completer) Probe(ctx context.Context) error {
	if c.token == "" {
		return &provider.ConfigurationError{Service: ServiceName}
	}

	_, err := c.client.Models.List(ctx, anthropic.ModelListParams{})

	return convertError(err)
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) (*anthropic.MessageNewParams, error) {
	req := &anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1024,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(*options.Temperature)
	}

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.System = append(req.System, anthropic.TextBlockParam{Text: m.Content})

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))

		default:
			return nil, errors.New("unsupported message role: " + string(m.Role))
		}
	}

	return req, nil
}

func convertError(err error) error {
	if err == nil {
		return nil
	}

	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		return &provider.TransportError{
			Service: ServiceName,

			StatusCode: apierr.StatusCode,

			Err: err,
		}
	}

	return &provider.TransportError{
		Service: ServiceName,
		Err:     err,
	}
}
