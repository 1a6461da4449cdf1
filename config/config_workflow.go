package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/prompter"
	"github.com/adrianliechti/flowgenius/pkg/provider"
	"github.com/adrianliechti/flowgenius/pkg/renderer"
	"github.com/adrianliechti/flowgenius/pkg/validator"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
)

type workflowConfig struct {
	Style        string `yaml:"style"`
	Instructions string `yaml:"instructions"`

	Prompter    string `yaml:"prompter"`
	Instruction string `yaml:"instruction"`

	MaxContent *int `yaml:"max_content"`
}

func (c *Config) registerWorkflow(f *configFile) error {
	completer, chat, err := createCompleter(f.Providers.Chat)

	if err != nil {
		return err
	}

	service, image, err := createJobService(f.Providers.Image)

	if err != nil {
		return err
	}

	p, err := createPrompter(f.Workflow, completer)

	if err != nil {
		return err
	}

	c.Validator = validator.New(chat, image)

	options := []workflow.Option{
		workflow.WithValidator(c.Validator),
		workflow.WithInstructions(f.Workflow.Instructions),
	}

	if f.Workflow.Style != "" {
		options = append(options, workflow.WithStyle(f.Workflow.Style))
	}

	if f.Workflow.MaxContent != nil {
		options = append(options, workflow.WithMaxContent(*f.Workflow.MaxContent))
	}

	c.Engine = workflow.New(p, renderer.New(service), options...)

	return nil
}

func createPrompter(cfg workflowConfig, completer provider.Completer) (prompter.Provider, error) {
	switch strings.ToLower(cfg.Prompter) {
	case "", "simple":
		var options []prompter.Option

		if cfg.Instruction != "" {
			options = append(options, prompter.WithInstruction(cfg.Instruction))
		}

		return prompter.New(completer, options...), nil

	case "smart":
		return prompter.NewSmart(completer), nil

	default:
		return nil, errors.New("invalid prompter type: " + cfg.Prompter)
	}
}
