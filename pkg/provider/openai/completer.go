package openai

import (
	"context"
	"errors"

	"github.com/adrianliechti/flowgenius/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var (
	_ provider.Completer = (*Completer)(nil)
	_ provider.Prober    = (*Completer)(nil)
)

const DefaultModel = "gpt-4-turbo-preview"

type Completer struct {
	*Config
	client openai.Client
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
		client: openai.NewClient(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if c.token == "" {
		return nil, &provider.ConfigurationError{Service: ServiceName}
	}

	req, err := c.convertCompletionRequest(messages, options)

	if err != nil {
		return nil, err
	}

	completion, err := c.client.Chat.Completions.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, &provider.TransportError{
			Service: ServiceName,
			Message: "response contains no choices",
		}
	}

	choice := completion.Choices[0]

	return &provider.Completion{
		ID:    completion.ID,
		Model: completion.Model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: choice.Message.Content,
		},

		Usage: &provider.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

// Probe lists the available models, which only succeeds with a valid key.
func (c *Completer) Probe(ctx context.Context) error {
	if c.token == "" {
		return &provider.ConfigurationError{Service: ServiceName}
	}

	_, err := c.client.Models.List(ctx)

	return convertError(err)
}

func (c *Completer) convertCompletionRequest(messages []provider.Message, options *provider.CompleteOptions) (*openai.ChatCompletionNewParams, error) {
	req := &openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
	}

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.Messages = append(req.Messages, openai.SystemMessage(m.Content))

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, openai.UserMessage(m.Content))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, openai.AssistantMessage(m.Content))

		default:
			return nil, errors.New("unsupported message role: " + string(m.Role))
		}
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(*options.Temperature)
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	return req, nil
}
