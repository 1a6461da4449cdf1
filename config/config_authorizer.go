package config

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/auth"
	"github.com/adrianliechti/flowgenius/pkg/auth/header"
	"github.com/adrianliechti/flowgenius/pkg/auth/oidc"
	"github.com/adrianliechti/flowgenius/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`

	UserHeader  string `yaml:"user_header"`
	EmailHeader string `yaml:"email_header"`
}

func (c *Config) registerAuthorizer(ctx context.Context, f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(ctx, a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(ctx context.Context, cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "header":
		return header.New(
			header.WithUserHeader(cfg.UserHeader),
			header.WithEmailHeader(cfg.EmailHeader),
		)

	case "static":
		return static.New(cfg.Token)

	case "oidc":
		return oidc.New(ctx, cfg.Issuer, cfg.Audience)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}
