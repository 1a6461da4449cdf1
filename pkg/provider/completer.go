package provider

import (
	"context"
)

type Completer interface {
	Complete(ctx context.Context, messages []Message, options *CompleteOptions) (*Completion, error)
}

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Message struct {
	Role MessageRole

	Content string
}

func SystemMessage(content string) Message {
	return Message{
		Role:    MessageRoleSystem,
		Content: content,
	}
}

func UserMessage(content string) Message {
	return Message{
		Role:    MessageRoleUser,
		Content: content,
	}
}

func AssistantMessage(content string) Message {
	return Message{
		Role:    MessageRoleAssistant,
		Content: content,
	}
}

type CompleteOptions struct {
	MaxTokens   *int
	Temperature *float64
}

type Completion struct {
	ID    string
	Model string

	Message *Message

	Usage *Usage
}

func (c *Completion) Text() string {
	if c == nil || c.Message == nil {
		return ""
	}

	return c.Message.Content
}
