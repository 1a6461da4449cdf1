// Package prompter derives image generation prompts from note content with a
// chat completion service.
package prompter

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/provider"
)

var ErrEmptyPrompt = errors.New("completion returned an empty prompt")

const DefaultInstruction = `You are an expert at creating detailed, atmospheric image generation prompts.
Your prompts should be vivid, specific, and optimized for AI image generation.
Focus on creating immersive, non-distracting backgrounds suitable for a writing environment.
Include details about lighting, atmosphere, color palette, and composition.`

// Provider turns prepared content into an image prompt.
type Provider interface {
	Prompt(ctx context.Context, input string) (string, error)
}

var _ Provider = (*Prompter)(nil)

// Prompter issues a single completion request per prompt.
type Prompter struct {
	completer provider.Completer

	instruction string

	temperature float64
	maxTokens   int
}

type Option func(*Prompter)

func WithInstruction(instruction string) Option {
	return func(p *Prompter) {
		p.instruction = instruction
	}
}

func New(completer provider.Completer, options ...Option) *Prompter {
	p := &Prompter{
		completer: completer,

		instruction: DefaultInstruction,

		temperature: 0.8,
		maxTokens:   300,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

func (p *Prompter) Prompt(ctx context.Context, input string) (string, error) {
	messages := []provider.Message{
		provider.SystemMessage(p.instruction),
		provider.UserMessage(input),
	}

	return complete(ctx, p.completer, messages, p.temperature, p.maxTokens)
}

func complete(ctx context.Context, completer provider.Completer, messages []provider.Message, temperature float64, maxTokens int) (string, error) {
	completion, err := completer.Complete(ctx, messages, &provider.CompleteOptions{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})

	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(completion.Text())

	if text == "" {
		return "", ErrEmptyPrompt
	}

	return text, nil
}
